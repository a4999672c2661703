// Package money parses and formats the compact deal-value strings sales
// people type into the dashboard ("$850K", "$1.2M", "€62.3B"). Parsing and
// formatting live here so every aggregation uses the same rules.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a tagged currency value. The zero value is not a valid amount.
type Amount struct {
	Currency string
	Value    decimal.Decimal
}

// ErrInvalidAmount indicates the input could not be parsed as a money string.
var ErrInvalidAmount = errors.New("invalid amount")

// Symbol prefixes are matched as strings: the euro and pound signs are
// multi-byte in UTF-8.
var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
}

var scaleSuffixes = map[byte]int64{
	'K': 1_000,
	'M': 1_000_000,
	'B': 1_000_000_000,
}

// Parse converts a compact display string into an Amount. A leading currency
// symbol selects the currency (default USD); a trailing K, M or B scales the
// numeric part. Thousands separators are ignored.
func Parse(input string) (Amount, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Amount{}, ErrInvalidAmount
	}

	currency := "USD"
	for _, cs := range currencySymbols {
		if strings.HasPrefix(s, cs.symbol) {
			currency = cs.code
			s = strings.TrimSpace(s[len(cs.symbol):])
			break
		}
	}

	scale := int64(1)
	if len(s) > 0 {
		if mult, ok := scaleSuffixes[upperByte(s[len(s)-1])]; ok {
			scale = mult
			s = strings.TrimSpace(s[:len(s)-1])
		}
	}

	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return Amount{}, ErrInvalidAmount
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}

	return Amount{
		Currency: currency,
		Value:    value.Mul(decimal.NewFromInt(scale)),
	}, nil
}

// FormatCompact renders a dollar total the way the dashboard displays
// pipeline value: millions with one decimal, thousands without decimals,
// small amounts as plain dollars.
func FormatCompact(total decimal.Decimal) string {
	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)

	switch {
	case total.GreaterThanOrEqual(million):
		return "$" + total.Div(million).StringFixed(1) + "M"
	case total.GreaterThanOrEqual(thousand):
		return "$" + total.Div(thousand).StringFixed(0) + "K"
	default:
		return "$" + total.StringFixed(0)
	}
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
