// Package analytics derives the dashboard projections from an in-memory
// snapshot of cases and tasks. Everything in this package is pure: no clocks,
// no I/O, no mutation of inputs. The reference date ("today") is computed once
// by the caller and threaded through every age computation so a single pass
// cannot drift across midnight.
//
// All calendar dates are YYYY-MM-DD strings interpreted as UTC midnight.
package analytics

import "time"

// DayFormat is the wire format for all calendar dates.
const DayFormat = "2006-01-02"

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), t.UTC().Month(), t.UTC().Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string as UTC midnight. The second return is
// false for empty or malformed input.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDay renders t as a YYYY-MM-DD string.
func FormatDay(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// DaysSince returns the whole days elapsed from dateStr to today, negative if
// dateStr is in the future. Fails closed: empty or malformed input yields 0.
func DaysSince(today time.Time, dateStr string) int {
	d, ok := ParseDay(dateStr)
	if !ok {
		return 0
	}
	// both endpoints sit on UTC midnight, so the difference is an exact
	// multiple of 24h and integer division never truncates
	return int(Day(today).Sub(d) / (24 * time.Hour))
}

// DaysInCalendarMonth enumerates every day of the given month from the 1st to
// the last, ascending. Pure function of (year, month).
func DaysInCalendarMonth(year int, month time.Month) []time.Time {
	days := []time.Time{}
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
