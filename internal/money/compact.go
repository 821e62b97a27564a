// Package money renders decimal amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// FormatCompact abbreviates an amount for space-constrained displays:
// millions as "$3.5 Mill", thousands as "$1.5 K", anything smaller as a
// plain 0-fraction currency string. A trailing ".0" is stripped, and the
// sign goes before the currency symbol ("-$2 K").
//
// Rounding is half away from zero (decimal.Round semantics).
func FormatCompact(value decimal.Decimal, symbol string) string {
	sign := ""
	if value.IsNegative() {
		sign = "-"
	}
	abs := value.Abs()

	switch {
	case abs.GreaterThanOrEqual(million):
		return sign + symbol + trimTrailingZero(abs.Div(million).Round(1)) + " Mill"
	case abs.GreaterThanOrEqual(thousand):
		return sign + symbol + trimTrailingZero(abs.Div(thousand).Round(1)) + " K"
	default:
		return sign + symbol + abs.Round(0).String()
	}
}

func trimTrailingZero(d decimal.Decimal) string {
	return strings.TrimSuffix(d.StringFixed(1), ".0")
}
