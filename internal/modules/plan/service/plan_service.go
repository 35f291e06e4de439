package service

import (
	"time"

	"trainlog/internal/modules/plan/domain"
	"trainlog/internal/platform/clock"
	"trainlog/internal/platform/id"
)

// PlanService owns profile validation and plan generation. It is pure apart
// from the injected clock and id generator, which keeps generation testable.
type PlanService struct {
	clock clock.Clock
	ids   id.Generator
}

func NewPlanService(clk clock.Clock, ids id.Generator) *PlanService {
	return &PlanService{clock: clk, ids: ids}
}

// BuildProfile validates answers and stamps the profile with creation time.
func (s *PlanService) BuildProfile(answers map[string]string) (domain.UserProfile, error) {
	profile := domain.UserProfile{
		Habit:      answers["q1"],
		Goal:       answers["q2"],
		TimeBudget: answers["q3"],
		Equipment:  answers["q4"],
		Limitation: answers["q5"],
		TimeOfDay:  answers["q6"],
	}
	if err := profile.Validate(); err != nil {
		return domain.UserProfile{}, err
	}
	profile.CreatedAt = s.clock.Now().Format(time.RFC3339)
	return profile, nil
}

func (s *PlanService) Generate(profile domain.UserProfile) domain.TrainingPlan {
	return domain.Generate(profile, "plan-"+s.ids.New(), s.clock.Now())
}
