package domain

import (
	"fmt"
	"time"

	apperrors "trainlog/internal/platform/errors"
)

// UserProfile holds the onboarding answers keyed by question id. The JSON
// shape matches exported backups from earlier releases.
type UserProfile struct {
	Habit      string `json:"q1"`
	Goal       string `json:"q2"`
	TimeBudget string `json:"q3"`
	Equipment  string `json:"q4"`
	Limitation string `json:"q5"`
	TimeOfDay  string `json:"q6"`
	CreatedAt  string `json:"createdAt"`
}

// Validate checks every question is answered with one of its known option
// values.
func (p UserProfile) Validate() error {
	answers := map[string]string{
		"q1": p.Habit,
		"q2": p.Goal,
		"q3": p.TimeBudget,
		"q4": p.Equipment,
		"q5": p.Limitation,
		"q6": p.TimeOfDay,
	}
	for _, q := range Questions() {
		answer, ok := answers[q.ID]
		if !ok || answer == "" {
			return fmt.Errorf("%w: question %s unanswered", apperrors.ErrInvalidInput, q.ID)
		}
		if !q.hasOption(answer) {
			return fmt.Errorf("%w: question %s has no option %q", apperrors.ErrInvalidInput, q.ID, answer)
		}
	}
	return nil
}

type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type TrainingPlan struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Exercises   []Exercise  `json:"exercises"`
	CreatedAt   string      `json:"createdAt"`
	Profile     UserProfile `json:"userProfile"`
}

// Generate derives a training plan from the profile. The rule table is
// deterministic: same answers, same exercises. Warm-up and cool-down bracket
// every plan; the core block depends on goal, equipment and impact limits.
func Generate(profile UserProfile, planID string, now time.Time) TrainingPlan {
	beginner := profile.Habit == "none" || profile.Habit == "light"
	hasEquipment := profile.Equipment == "dumbbell" || profile.Equipment == "gym"
	lowImpact := profile.Limitation == "low-impact"

	exercises := []Exercise{{
		ID:          "warmup",
		Name:        "Warm-up",
		Duration:    "3 min",
		Description: "Light stretching and dynamic joint preparation",
		Category:    "warmup",
	}}

	switch {
	case profile.Goal == "health" || beginner:
		if lowImpact {
			exercises = append(exercises, Exercise{
				ID:          "ex1",
				Name:        "Wall Sit",
				Duration:    "30 sec × 3 sets",
				Description: "Hold sitting position against wall. Low knee impact",
				Category:    "lower",
			})
		} else {
			exercises = append(exercises, Exercise{
				ID:          "ex1",
				Name:        "Squats",
				Duration:    "10 reps × 3 sets",
				Description: "Basic lower body training. Keep knees behind toes",
				Category:    "lower",
			})
		}
		exercises = append(exercises,
			Exercise{
				ID:          "ex2",
				Name:        "Plank",
				Duration:    "20 sec × 3 sets",
				Description: "Core strengthening fundamental exercise",
				Category:    "core",
			},
			Exercise{
				ID:          "ex3",
				Name:        "Push-ups (knee variation OK)",
				Duration:    "8 reps × 3 sets",
				Description: "Upper body foundation strength training",
				Category:    "upper",
			})
	case profile.Goal == "weight":
		if lowImpact {
			exercises = append(exercises, Exercise{
				ID:          "ex1",
				Name:        "Mountain Climbers",
				Duration:    "20 sec × 3 sets",
				Description: "Cardio and core strengthening combined",
				Category:    "cardio",
			})
		} else {
			exercises = append(exercises, Exercise{
				ID:          "ex1",
				Name:        "Burpees",
				Duration:    "10 reps × 3 sets",
				Description: "Full-body cardio exercise. High fat-burning effect",
				Category:    "cardio",
			})
		}
		exercises = append(exercises,
			Exercise{
				ID:          "ex2",
				Name:        "Jumping Jacks",
				Duration:    "30 sec × 3 sets",
				Description: "Raise heart rate for fat burning",
				Category:    "cardio",
			},
			Exercise{
				ID:          "ex3",
				Name:        "Plank",
				Duration:    "30 sec × 3 sets",
				Description: "Strengthen core for increased metabolism",
				Category:    "core",
			},
			Exercise{
				ID:          "ex4",
				Name:        "Squat Jumps",
				Duration:    "10 reps × 3 sets",
				Description: "Strengthen lower body and cardio simultaneously",
				Category:    "cardio",
			})
	case profile.Goal == "muscle":
		if hasEquipment {
			exercises = append(exercises,
				Exercise{
					ID:          "ex1",
					Name:        "Dumbbell Squats",
					Duration:    "12 reps × 4 sets",
					Description: "Squats with dumbbells. Increase load for muscle growth",
					Category:    "lower",
				},
				Exercise{
					ID:          "ex2",
					Name:        "Dumbbell Bench Press",
					Duration:    "10 reps × 4 sets",
					Description: "Target chest muscles intensively",
					Category:    "upper",
				},
				Exercise{
					ID:          "ex3",
					Name:        "Dumbbell Rows",
					Duration:    "12 reps × 4 sets",
					Description: "Strengthen back muscles",
					Category:    "upper",
				})
		} else {
			exercises = append(exercises,
				Exercise{
					ID:          "ex1",
					Name:        "Push-ups",
					Duration:    "15 reps × 4 sets",
					Description: "Train chest, shoulders, and arms - fundamental exercise",
					Category:    "upper",
				},
				Exercise{
					ID:          "ex2",
					Name:        "Bulgarian Split Squats",
					Duration:    "12 reps × 3 sets (each leg)",
					Description: "High-load single-leg squats",
					Category:    "lower",
				},
				Exercise{
					ID:          "ex3",
					Name:        "Pike Push-ups",
					Duration:    "10 reps × 3 sets",
					Description: "Focus on shoulder development",
					Category:    "upper",
				})
		}
		exercises = append(exercises, Exercise{
			ID:          "ex4",
			Name:        "Plank",
			Duration:    "45 sec × 3 sets",
			Description: "Improve core stability",
			Category:    "core",
		})
	}

	exercises = append(exercises, Exercise{
		ID:          "cooldown",
		Name:        "Cool Down",
		Duration:    "3 min",
		Description: "Stretch muscles and promote recovery",
		Category:    "cooldown",
	})

	return TrainingPlan{
		ID:          planID,
		Name:        planName(profile.Goal),
		Description: planDescription(profile.Goal, profile.TimeBudget),
		Exercises:   exercises,
		CreatedAt:   now.Format(time.RFC3339),
		Profile:     profile,
	}
}

func planName(goal string) string {
	switch goal {
	case "health":
		return "Health & Fitness Foundation Plan"
	case "weight":
		return "Fat Burning Exercise Program"
	case "muscle":
		return "Strength Building Training"
	case "other":
		return "Custom Training Plan"
	}
	return "Personalized Plan"
}

func planDescription(goal, timeBudget string) string {
	timeText := map[string]string{
		"5-10":   "Quick",
		"10-20":  "Efficient",
		"20-30":  "Thorough",
		"30plus": "Comprehensive",
	}[timeBudget]

	goalText := map[string]string{
		"health": "program aimed at healthy body building and basic fitness improvement",
		"weight": "program aimed at fat burning and body toning",
		"muscle": "program aimed at strength building and muscle growth",
		"other":  "program to support your goal achievement",
	}[goal]

	return fmt.Sprintf("%s %s. Consistent practice yields steady results!", timeText, goalText)
}
