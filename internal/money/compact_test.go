package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCompact(t *testing.T) {
	cases := []struct {
		name  string
		value decimal.Decimal
		want  string
	}{
		{"exact_million_strips_point_zero", decimal.NewFromInt(1_000_000), "$1 Mill"},
		{"million_with_fraction", decimal.NewFromInt(3_500_000), "$3.5 Mill"},
		{"hundred_thousand", decimal.NewFromInt(100_000), "$100 K"},
		{"thousand_with_fraction", decimal.NewFromInt(1_500), "$1.5 K"},
		{"below_thousand", decimal.NewFromInt(500), "$500"},
		{"negative_sign_before_symbol", decimal.NewFromInt(-2_000), "-$2 K"},
		{"negative_million", decimal.NewFromInt(-4_250_000), "-$4.3 Mill"},
		{"exact_thousand", decimal.NewFromInt(1_000), "$1 K"},
		{"zero", decimal.Zero, "$0"},
		// Rounding is half away from zero: 1,250,000/1e6 = 1.25 -> 1.3.
		{"rounds_half_away_from_zero", decimal.NewFromInt(1_250_000), "$1.3 Mill"},
		{"small_amount_drops_fraction", decimal.NewFromFloat(725.50), "$726"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatCompact(tc.value, "$"); got != tc.want {
				t.Errorf("FormatCompact(%s): expected %q, got %q", tc.value, tc.want, got)
			}
		})
	}

	t.Run("custom_symbol", func(t *testing.T) {
		if got := FormatCompact(decimal.NewFromInt(2_000_000), "€"); got != "€2 Mill" {
			t.Errorf("expected %q, got %q", "€2 Mill", got)
		}
	})
}
