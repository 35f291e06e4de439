package domain

import (
	"math"
	"sort"
	"time"

	"trainlog/internal/platform/dates"
)

// Day is the per-date completion summary the statistics run on. It is a
// reduced view of an activity record: counts and the completion flag only.
type Day struct {
	Date         string
	Total        int
	Completed    int
	AllCompleted bool
}

// Done trusts a fresh count comparison over the stored flag, same as the
// record it was reduced from.
func (d Day) Done() bool {
	if d.Total > 0 && d.Completed == d.Total {
		return true
	}
	return d.AllCompleted
}

// Summary bundles the headline statistics for one snapshot.
type Summary struct {
	TotalDays      int
	CurrentStreak  int
	LongestStreak  int
	CompletionRate int
	ThisMonthDays  int
}

func doneSet(days []Day) map[string]bool {
	set := make(map[string]bool, len(days))
	for _, d := range days {
		if d.Done() {
			set[d.Date] = true
		}
	}
	return set
}

// CurrentStreak counts consecutive completed days ending at today, walking
// backward at most a year. An incomplete today does not break the streak;
// the walk just continues from yesterday. Any other gap ends it.
func CurrentStreak(days []Day, today string) int {
	done := doneSet(days)
	streak := 0
	for i := 0; i < 365; i++ {
		date := dates.AddDays(today, -i)
		if done[date] {
			streak++
		} else if date != today {
			break
		}
	}
	return streak
}

// LongestStreak scans the trailing-year window (365 days back through
// today) for the longest run of consecutive completed days.
func LongestStreak(days []Day, today string) int {
	done := doneSet(days)
	longest, run := 0, 0
	for _, date := range dates.Range(dates.AddDays(today, -365), today) {
		if done[date] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// CompletionRate30 is the percentage of the last 30 days (ending today)
// that were fully completed, rounded to the nearest whole percent.
func CompletionRate30(days []Day, today string) int {
	done := doneSet(days)
	completed := 0
	for _, date := range dates.LastN(today, 30) {
		if done[date] {
			completed++
		}
	}
	return int(math.Round(float64(completed) / 30 * 100))
}

func TotalDays(days []Day) int {
	total := 0
	for _, d := range days {
		if d.Done() {
			total++
		}
	}
	return total
}

// ThisMonthCount counts completed days in today's calendar month.
func ThisMonthCount(days []Day, today string) int {
	month, year := dates.MonthYear(today)
	count := 0
	for _, d := range days {
		if !d.Done() {
			continue
		}
		if m, y := dates.MonthYear(d.Date); m == month && y == year {
			count++
		}
	}
	return count
}

func Summarize(days []Day, today string) Summary {
	return Summary{
		TotalDays:      TotalDays(days),
		CurrentStreak:  CurrentStreak(days, today),
		LongestStreak:  LongestStreak(days, today),
		CompletionRate: CompletionRate30(days, today),
		ThisMonthDays:  ThisMonthCount(days, today),
	}
}

// HeatmapCell is one day square in the year heatmap.
type HeatmapCell struct {
	Date      string
	Completed bool
	IsToday   bool
	IsFuture  bool
}

// BuildHeatmap lays out the trailing year as 53 week columns of 7 days.
// The grid starts on the Sunday on or before today-364, so the final
// column may run past today; those cells are flagged future and never
// completed.
func BuildHeatmap(days []Day, today string) [][]HeatmapCell {
	done := doneSet(days)
	start := dates.AddDays(today, -364)
	gridStart := dates.AddDays(start, -int(dates.Weekday(start)))

	grid := make([][]HeatmapCell, 0, 53)
	week := make([]HeatmapCell, 0, 7)
	for i := 0; i < 371; i++ {
		date := dates.AddDays(gridStart, i)
		future := date > today
		week = append(week, HeatmapCell{
			Date:      date,
			Completed: !future && done[date],
			IsToday:   date == today,
			IsFuture:  future,
		})
		if len(week) == 7 {
			grid = append(grid, week)
			week = make([]HeatmapCell, 0, 7)
		}
	}
	return grid
}

// WeekDay is one entry of the seven-day progress strip.
type WeekDay struct {
	Date      string
	DayName   string
	Completed bool
	IsToday   bool
}

// WeekStrip returns the last seven days in chronological order, today last.
func WeekStrip(days []Day, today string) []WeekDay {
	done := doneSet(days)
	strip := make([]WeekDay, 0, 7)
	for _, date := range dates.LastN(today, 7) {
		strip = append(strip, WeekDay{
			Date:      date,
			DayName:   dates.Weekday(date).String()[:3],
			Completed: done[date],
			IsToday:   date == today,
		})
	}
	return strip
}

// MonthlyDigest returns the completed days of one calendar month, newest
// first.
func MonthlyDigest(days []Day, year int, month time.Month) []Day {
	var out []Day
	for _, d := range days {
		if !d.Done() {
			continue
		}
		if m, y := dates.MonthYear(d.Date); m == month && y == year {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
