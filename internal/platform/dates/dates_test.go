package dates_test

import (
	"testing"
	"time"

	"trainlog/internal/platform/dates"
)

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()
	day := time.Date(2024, 3, 9, 23, 59, 0, 0, time.Local)
	s := dates.Format(day)
	if s != "2024-03-09" {
		t.Fatalf("unexpected format: %s", s)
	}
	parsed, err := dates.Parse(s)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.March || parsed.Day() != 9 {
		t.Fatalf("parse mismatch: %v", parsed)
	}
}

func TestAddDaysCrossesMonthAndYearBoundaries(t *testing.T) {
	t.Parallel()
	if got := dates.AddDays("2024-03-01", -1); got != "2024-02-29" {
		t.Fatalf("leap day expected, got %s", got)
	}
	if got := dates.AddDays("2023-12-31", 1); got != "2024-01-01" {
		t.Fatalf("year rollover expected, got %s", got)
	}
}

func TestRangeInclusiveBounds(t *testing.T) {
	t.Parallel()
	days := dates.Range("2024-01-30", "2024-02-02")
	want := []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("day %d: expected %s, got %s", i, want[i], days[i])
		}
	}
	if dates.Range("2024-02-02", "2024-01-30") != nil {
		t.Fatalf("inverted range must be nil")
	}
}

func TestLastNEndsAtAnchor(t *testing.T) {
	t.Parallel()
	days := dates.LastN("2024-06-10", 30)
	if len(days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(days))
	}
	if days[0] != "2024-05-12" || days[29] != "2024-06-10" {
		t.Fatalf("unexpected window: %s .. %s", days[0], days[29])
	}
}

func TestLexicographicOrderMatchesChronology(t *testing.T) {
	t.Parallel()
	if !("2024-09-30" < "2024-10-01") {
		t.Fatalf("string order must match date order")
	}
}
