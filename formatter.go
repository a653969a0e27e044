package gridpaint

import (
	"fmt"
	"strconv"
	"time"
)

// FormatOptions is handed to a Formatter unchanged from the cell's FormatSpec.
type FormatOptions struct {
	Decimals       *int
	Percent        bool
	Currency       bool
	CurrencySymbol string
	Pattern        string
}

// Formatter turns a raw cell value into display text. An error is returned
// to the caller of Resolve/Render as is; the host decides what to do with
// the cell.
type Formatter interface {
	Format(value any, datatype Datatype, opts FormatOptions) (string, error)
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(value any, datatype Datatype, opts FormatOptions) (string, error)

func (f FormatterFunc) Format(value any, datatype Datatype, opts FormatOptions) (string, error) {
	return f(value, datatype, opts)
}

func formatOptions(spec FormatSpec) FormatOptions {
	return FormatOptions{
		Decimals:       spec.Decimals,
		Percent:        spec.Percent,
		Currency:       spec.Currency,
		CurrencySymbol: spec.CurrencySymbol,
		Pattern:        spec.Pattern,
	}
}

// Stringify is the fallback used when no Formatter is configured. It reports
// false when there is nothing to draw (nil value or empty text).
func Stringify(value any) (string, bool) {
	var s string
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		s = v
	case bool:
		s = strconv.FormatBool(v)
	case int:
		s = strconv.Itoa(v)
	case int8:
		s = strconv.FormatInt(int64(v), 10)
	case int16:
		s = strconv.FormatInt(int64(v), 10)
	case int32:
		s = strconv.FormatInt(int64(v), 10)
	case int64:
		s = strconv.FormatInt(v, 10)
	case uint:
		s = strconv.FormatUint(uint64(v), 10)
	case uint8:
		s = strconv.FormatUint(uint64(v), 10)
	case uint16:
		s = strconv.FormatUint(uint64(v), 10)
	case uint32:
		s = strconv.FormatUint(uint64(v), 10)
	case uint64:
		s = strconv.FormatUint(v, 10)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		s = v.Format(time.RFC3339)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	return s, s != ""
}
