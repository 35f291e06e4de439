package dto

type ExerciseOutput struct {
	ID          string
	Name        string
	Duration    string
	Description string
	Category    string
	Done        bool
}

type RecordOutput struct {
	Date           string
	Exercises      []ExerciseOutput
	CompletedCount int
	TotalCount     int
	AllCompleted   bool
}

type TodayOutput struct {
	PlanName        string
	PlanDescription string
	Record          RecordOutput
}

type ToggleOutput struct {
	Record        RecordOutput
	JustCompleted bool
}
