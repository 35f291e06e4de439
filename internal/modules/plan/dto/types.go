package dto

type OptionOutput struct {
	Value string
	Label string
	Emoji string
}

type QuestionOutput struct {
	ID      string
	Prompt  string
	Options []OptionOutput
}

// OnboardingInput carries the questionnaire answers keyed by question id.
type OnboardingInput struct {
	Answers map[string]string
}

type ExerciseOutput struct {
	ID          string
	Name        string
	Duration    string
	Description string
	Category    string
}

type PlanOutput struct {
	ID          string
	Name        string
	Description string
	Exercises   []ExerciseOutput
	CreatedAt   string
}

type ProfileOutput struct {
	Habit      string
	Goal       string
	TimeBudget string
	Equipment  string
	Limitation string
	TimeOfDay  string
	CreatedAt  string
}
