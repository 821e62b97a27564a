// Package cycle computes the user-defined financial month.
//
// A cycle begins on the user's configured start day (1-31) and runs until
// the day before the next cycle starts. Start days past the end of a month
// clamp to that month's last day, matching how banks roll statement dates.
package cycle

import (
	"time"

	"centavo/internal/models"
)

// Range is one financial cycle as a closed interval. Start is the first
// instant of the cycle (00:00:00) and End the last (23:59:59), so a
// timestamp belongs to the cycle when Start <= t <= End.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range, inclusive on both ends.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// CurrentRange returns the cycle that the reference date falls into for the
// given start day.
//
// If the reference day-of-month is on or after startDay, the cycle started
// this month; otherwise it started the previous month. In either case the
// nominal start day is clamped to the length of the month the cycle starts
// in. The end is the day before the next cycle start, where the next start
// is the start date plus one calendar month with the same clamping (January
// 31 plus one month is February 28, not March 3).
//
// A startDay outside 1-31 yields the degenerate range {ref, ref}; the cycle
// drives a display and must never panic on bad preference data.
func CurrentRange(startDay int, ref time.Time) Range {
	if startDay < 1 || startDay > 31 {
		return Range{Start: ref, End: ref}
	}

	loc := ref.Location()
	year, month := ref.Year(), ref.Month()
	if ref.Day() < startDay {
		year, month = prevMonth(year, month)
	}

	day := clampDay(startDay, year, month)
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)

	nextStart := addMonthClamped(start)
	lastDay := nextStart.AddDate(0, 0, -1)
	end := time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), 23, 59, 59, 0, loc)

	return Range{Start: start, End: end}
}

// Filter returns the transactions whose date falls inside r, preserving the
// input order. Filtering an already-filtered slice by the same range is a
// no-op.
func Filter(transactions []models.Transaction, r Range) []models.Transaction {
	result := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if r.Contains(tx.Date) {
			result = append(result, tx)
		}
	}
	return result
}

// addMonthClamped advances t by one calendar month, clamping the day to the
// target month's length. time.Time.AddDate normalizes overflow instead
// (Jan 31 + 1 month = Mar 2/3), which is the wrong behavior for statement
// dates.
func addMonthClamped(t time.Time) time.Time {
	year, month := nextMonth(t.Year(), t.Month())
	day := clampDay(t.Day(), year, month)
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func clampDay(day, year int, month time.Month) int {
	if last := daysIn(year, month); day > last {
		return last
	}
	return day
}

// daysIn returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
