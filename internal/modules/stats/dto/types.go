package dto

type SummaryOutput struct {
	TotalDays      int
	CurrentStreak  int
	LongestStreak  int
	CompletionRate int
	ThisMonthDays  int
}

type HeatmapCell struct {
	Date      string
	Completed bool
	IsToday   bool
	IsFuture  bool
}

type WeekDayOutput struct {
	Date      string
	DayName   string
	Completed bool
	IsToday   bool
}

type DigestEntry struct {
	Date      string
	Total     int
	Completed int
}
