// Package dates provides calendar-date helpers. Dates are plain
// "YYYY-MM-DD" strings in the user's local timezone; lexicographic order on
// these strings matches chronological order, which the stores rely on for
// range scans.
package dates

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

func Format(t time.Time) string {
	return t.Format(Layout)
}

func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// AddDays shifts a date by n calendar days (n may be negative).
func AddDays(s string, n int) string {
	t, err := Parse(s)
	if err != nil {
		return s
	}
	return Format(t.AddDate(0, 0, n))
}

// Range returns every date from start through end inclusive, in
// chronological order. Returns nil when either bound is invalid or
// start is after end.
func Range(start, end string) []string {
	from, err := Parse(start)
	if err != nil {
		return nil
	}
	to, err := Parse(end)
	if err != nil {
		return nil
	}
	var out []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, Format(d))
	}
	return out
}

// LastN returns the n dates ending at end inclusive, chronological.
func LastN(end string, n int) []string {
	if n <= 0 {
		return nil
	}
	return Range(AddDays(end, -(n-1)), end)
}

func Weekday(s string) time.Weekday {
	t, err := Parse(s)
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}

func MonthYear(s string) (time.Month, int) {
	t, err := Parse(s)
	if err != nil {
		return 0, 0
	}
	return t.Month(), t.Year()
}
