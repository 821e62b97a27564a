package cycle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"centavo/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func assertRange(t *testing.T, r Range, wantStart, wantEnd time.Time) {
	t.Helper()
	if !r.Start.Equal(wantStart) {
		t.Errorf("start: expected %v, got %v", wantStart, r.Start)
	}
	if !r.End.Equal(wantEnd) {
		t.Errorf("end: expected %v, got %v", wantEnd, r.End)
	}
}

func TestCurrentRange(t *testing.T) {
	t.Run("reference_after_start_day", func(t *testing.T) {
		// Day 20 >= start day 15, so the cycle began this month.
		r := CurrentRange(15, date(2026, time.March, 20))
		assertRange(t, r,
			date(2026, time.March, 15),
			time.Date(2026, time.April, 14, 23, 59, 59, 0, time.UTC),
		)
	})

	t.Run("reference_before_start_day", func(t *testing.T) {
		r := CurrentRange(15, date(2026, time.February, 10))
		assertRange(t, r,
			date(2026, time.January, 15),
			time.Date(2026, time.February, 14, 23, 59, 59, 0, time.UTC),
		)
	})

	t.Run("reference_exactly_on_start_day", func(t *testing.T) {
		// "On or after": the cycle starts this month, not the previous one.
		r := CurrentRange(15, date(2026, time.March, 15))
		if !r.Start.Equal(date(2026, time.March, 15)) {
			t.Errorf("expected cycle to start 2026-03-15, got %v", r.Start)
		}
	})

	t.Run("start_day_one_spans_calendar_month", func(t *testing.T) {
		r := CurrentRange(1, date(2026, time.April, 17))
		assertRange(t, r,
			date(2026, time.April, 1),
			time.Date(2026, time.April, 30, 23, 59, 59, 0, time.UTC),
		)
	})

	t.Run("year_boundary_rollover", func(t *testing.T) {
		// Previous month of January 2026 is December 2025.
		r := CurrentRange(15, date(2026, time.January, 10))
		assertRange(t, r,
			date(2025, time.December, 15),
			time.Date(2026, time.January, 14, 23, 59, 59, 0, time.UTC),
		)
	})

	t.Run("start_day_31_february_reference", func(t *testing.T) {
		// Day 20 < 31 puts the start in January (31 days, no clamp needed).
		// The next start is Jan 31 + 1 month, which clamps to Feb 28 in
		// 2026, so the cycle ends Feb 27 at end of day.
		r := CurrentRange(31, date(2026, time.February, 20))
		assertRange(t, r,
			date(2026, time.January, 31),
			time.Date(2026, time.February, 27, 23, 59, 59, 0, time.UTC),
		)
	})

	t.Run("start_day_31_clamps_in_short_month", func(t *testing.T) {
		// Start lands in April (30 days), so day 31 clamps to 30. The
		// next start keeps the clamped day: Apr 30 + 1 month = May 30.
		r := CurrentRange(31, date(2026, time.May, 15))
		assertRange(t, r,
			date(2026, time.April, 30),
			time.Date(2026, time.May, 29, 23, 59, 59, 0, time.UTC),
		)
	})

	t.Run("start_day_31_leap_february", func(t *testing.T) {
		r := CurrentRange(31, date(2028, time.February, 20))
		assertRange(t, r,
			date(2028, time.January, 31),
			time.Date(2028, time.February, 28, 23, 59, 59, 0, time.UTC),
		)
	})

	t.Run("preserves_reference_location", func(t *testing.T) {
		bogota := time.FixedZone("COT", -5*60*60)
		r := CurrentRange(15, time.Date(2026, time.March, 20, 12, 0, 0, 0, bogota))
		if r.Start.Location() != bogota {
			t.Errorf("expected start in reference location, got %v", r.Start.Location())
		}
	})

	t.Run("invalid_start_day_degenerates", func(t *testing.T) {
		ref := date(2026, time.March, 20)
		for _, day := range []int{0, -1, 32} {
			r := CurrentRange(day, ref)
			if !r.Start.Equal(ref) || !r.End.Equal(ref) {
				t.Errorf("start day %d: expected degenerate range {ref, ref}, got %v", day, r)
			}
		}
	})
}

// A cycle is always about a month long, whatever the start day and
// reference date.
func TestCurrentRangeLengthProperty(t *testing.T) {
	for startDay := 1; startDay <= 31; startDay++ {
		for month := time.January; month <= time.December; month++ {
			for _, refDay := range []int{1, 15, 28} {
				r := CurrentRange(startDay, date(2026, month, refDay))
				if r.End.Before(r.Start) {
					t.Fatalf("startDay=%d ref=2026-%02d-%02d: end %v before start %v",
						startDay, month, refDay, r.End, r.Start)
				}
				length := r.End.Sub(r.Start)
				if length < 27*24*time.Hour || length >= 31*24*time.Hour {
					t.Errorf("startDay=%d ref=2026-%02d-%02d: cycle length %v outside [27d, 31d)",
						startDay, month, refDay, length)
				}
			}
		}
	}
}

func tx(day time.Time) models.Transaction {
	return models.Transaction{
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(100),
		Date:   day,
	}
}

func TestFilter(t *testing.T) {
	r := Range{
		Start: date(2026, time.January, 15),
		End:   time.Date(2026, time.February, 14, 23, 59, 59, 0, time.UTC),
	}

	t.Run("inclusive_on_both_ends", func(t *testing.T) {
		input := []models.Transaction{
			tx(date(2026, time.January, 14)),                               // before
			tx(r.Start),                                                    // exactly at start
			tx(date(2026, time.February, 1)),                               // inside
			tx(r.End),                                                      // exactly at end
			tx(time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)),  // after
		}
		got := Filter(input, r)
		if len(got) != 3 {
			t.Fatalf("expected 3 transactions in range, got %d", len(got))
		}
	})

	t.Run("preserves_input_order", func(t *testing.T) {
		input := []models.Transaction{
			tx(date(2026, time.February, 10)),
			tx(date(2026, time.January, 20)),
			tx(date(2026, time.February, 1)),
		}
		got := Filter(input, r)
		for i := range input {
			if !got[i].Date.Equal(input[i].Date) {
				t.Errorf("position %d: expected %v, got %v", i, input[i].Date, got[i].Date)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		input := []models.Transaction{
			tx(date(2026, time.January, 10)),
			tx(date(2026, time.January, 20)),
			tx(date(2026, time.February, 20)),
		}
		once := Filter(input, r)
		twice := Filter(once, r)
		if len(once) != len(twice) {
			t.Fatalf("expected idempotent filter, got %d then %d", len(once), len(twice))
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		if got := Filter(nil, r); len(got) != 0 {
			t.Errorf("expected empty result, got %d items", len(got))
		}
	})

	t.Run("nothing_in_range", func(t *testing.T) {
		input := []models.Transaction{tx(date(2025, time.June, 1))}
		if got := Filter(input, r); len(got) != 0 {
			t.Errorf("expected empty result, got %d items", len(got))
		}
	})
}

func TestLabel(t *testing.T) {
	r := CurrentRange(15, date(2026, time.February, 10))

	t.Run("default_spanish", func(t *testing.T) {
		if got := r.Label(EsCO); got != "15 Ene - 14 Feb" {
			t.Errorf("expected %q, got %q", "15 Ene - 14 Feb", got)
		}
	})

	t.Run("english", func(t *testing.T) {
		if got := r.Label(EnUS); got != "15 Jan - 14 Feb" {
			t.Errorf("expected %q, got %q", "15 Jan - 14 Feb", got)
		}
	})

	t.Run("locale_does_not_change_arithmetic", func(t *testing.T) {
		if !r.Start.Equal(date(2026, time.January, 15)) {
			t.Errorf("label locale must not affect the computed range")
		}
	})
}
