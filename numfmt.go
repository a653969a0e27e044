package gridpaint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter is a Formatter covering the FormatSpec knobs: decimals,
// percent and currency for numbers, Excel serial or time.Time dates, and
// TRUE/FALSE booleans. The Pattern field is ignored. Values it does not
// recognise fall back to Stringify.
type NumberFormatter struct {
	Locale     language.Tag
	DateLayout string
	Date1904   bool // serial dates use the 1904 epoch
}

// NewNumberFormatter returns an English formatter with ISO dates.
func NewNumberFormatter() *NumberFormatter {
	return &NumberFormatter{Locale: language.English, DateLayout: "2006-01-02"}
}

func (f *NumberFormatter) Format(value any, datatype Datatype, opts FormatOptions) (string, error) {
	if value == nil {
		return "", nil
	}
	switch datatype {
	case Date:
		return f.formatDate(value)
	case Boolean:
		return formatBool(value), nil
	}
	v, ok := toFloat(value)
	if !ok || !(opts.Percent || opts.Currency || opts.Decimals != nil) {
		s, _ := Stringify(value)
		return s, nil
	}
	p := message.NewPrinter(f.Locale)
	switch {
	case opts.Percent:
		return p.Sprint(decimal(v*100, opts.Decimals, 0)) + "%", nil
	case opts.Currency:
		symbol := opts.CurrencySymbol
		if symbol == "" {
			symbol = "$"
		}
		sign := ""
		if v < 0 {
			sign, v = "-", -v
		}
		return sign + symbol + p.Sprint(decimal(v, opts.Decimals, 2)), nil
	default:
		return p.Sprint(decimal(v, opts.Decimals, 0)), nil
	}
}

func decimal(v float64, decimals *int, def int) number.Formatter {
	d := def
	if decimals != nil && *decimals >= 0 {
		d = *decimals
	}
	return number.Decimal(v, number.MinFractionDigits(d), number.MaxFractionDigits(d))
}

func (f *NumberFormatter) formatDate(value any) (string, error) {
	layout := f.DateLayout
	if layout == "" {
		layout = "2006-01-02"
	}
	if t, ok := value.(time.Time); ok {
		return t.Format(layout), nil
	}
	serial, ok := toFloat(value)
	if !ok {
		s, _ := Stringify(value)
		return s, nil
	}
	t, err := excelize.ExcelDateToTime(serial, f.Date1904)
	if err != nil {
		return "", fmt.Errorf("convert serial date %v: %w", serial, err)
	}
	return t.Format(layout), nil
}

func formatBool(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return formatBool(b)
		}
	}
	if n, ok := toFloat(value); ok {
		return formatBool(n != 0)
	}
	s, _ := Stringify(value)
	return s
}

// toFloat converts numeric values and numeric strings to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, !math.IsNaN(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
