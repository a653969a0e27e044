package gridpaint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func intp(n int) *int { return &n }

func TestNumberFormatter_Decimals(t *testing.T) {
	f := NewNumberFormatter()
	s, err := f.Format(1234.5, Number, FormatOptions{Decimals: intp(2)})
	require.NoError(t, err)
	assert.Equal(t, "1,234.50", s)

	s, err = f.Format(1234567, Number, FormatOptions{Decimals: intp(0)})
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", s)
}

func TestNumberFormatter_Percent(t *testing.T) {
	f := NewNumberFormatter()
	s, err := f.Format(0.25, Number, FormatOptions{Percent: true})
	require.NoError(t, err)
	assert.Equal(t, "25%", s)

	s, err = f.Format(0.1234, Number, FormatOptions{Percent: true, Decimals: intp(1)})
	require.NoError(t, err)
	assert.Equal(t, "12.3%", s)
}

func TestNumberFormatter_Currency(t *testing.T) {
	f := NewNumberFormatter()
	s, err := f.Format(-5, Number, FormatOptions{Currency: true})
	require.NoError(t, err)
	assert.Equal(t, "-$5.00", s)

	s, err = f.Format("1234", Number, FormatOptions{Currency: true, CurrencySymbol: "€"})
	require.NoError(t, err)
	assert.Equal(t, "€1,234.00", s)
}

func TestNumberFormatter_Locale(t *testing.T) {
	f := &NumberFormatter{Locale: language.German}
	s, err := f.Format(1234.5, Number, FormatOptions{Decimals: intp(2)})
	require.NoError(t, err)
	assert.Equal(t, "1.234,50", s)
}

func TestNumberFormatter_PlainValues(t *testing.T) {
	f := NewNumberFormatter()
	for in, want := range map[any]string{42: "42", 3.5: "3.5", "abc": "abc"} {
		s, err := f.Format(in, Number, FormatOptions{})
		require.NoError(t, err)
		assert.Equal(t, want, s)
	}
	s, err := f.Format(nil, Number, FormatOptions{Decimals: intp(2)})
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestNumberFormatter_Dates(t *testing.T) {
	f := NewNumberFormatter()
	s, err := f.Format(45000.0, Date, FormatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "2023-03-15", s)

	s, err = f.Format(time.Date(2024, 2, 29, 13, 0, 0, 0, time.UTC), Date, FormatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", s)

	s, err = f.Format("tomorrow", Date, FormatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "tomorrow", s)
}

func TestNumberFormatter_Booleans(t *testing.T) {
	f := NewNumberFormatter()
	for in, want := range map[any]string{true: "TRUE", false: "FALSE", 1: "TRUE", 0.0: "FALSE", "true": "TRUE"} {
		s, err := f.Format(in, Boolean, FormatOptions{})
		require.NoError(t, err)
		assert.Equal(t, want, s, "%v", in)
	}
}
