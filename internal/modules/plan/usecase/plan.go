package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"trainlog/internal/modules/plan/domain"
	"trainlog/internal/modules/plan/dto"
	"trainlog/internal/modules/plan/service"
	settingsdomain "trainlog/internal/modules/settings/domain"
	settingsin "trainlog/internal/modules/settings/port/in"
	apperrors "trainlog/internal/platform/errors"
)

// Interactor persists profiles and plans through the settings module; they
// live alongside the flags so a single backup snapshot captures everything.
type Interactor struct {
	svc      *service.PlanService
	settings settingsin.Usecase
	logger   *logrus.Logger
}

func NewInteractor(svc *service.PlanService, settings settingsin.Usecase, logger *logrus.Logger) *Interactor {
	return &Interactor{svc: svc, settings: settings, logger: logger}
}

func (i *Interactor) Questions(ctx context.Context) []dto.QuestionOutput {
	qs := domain.Questions()
	out := make([]dto.QuestionOutput, 0, len(qs))
	for _, q := range qs {
		opts := make([]dto.OptionOutput, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, dto.OptionOutput{Value: o.Value, Label: o.Label, Emoji: o.Emoji})
		}
		out = append(out, dto.QuestionOutput{ID: q.ID, Prompt: q.Prompt, Options: opts})
	}
	return out
}

func (i *Interactor) CompleteOnboarding(ctx context.Context, input dto.OnboardingInput) (dto.PlanOutput, error) {
	profile, err := i.svc.BuildProfile(input.Answers)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	plan := i.svc.Generate(profile)

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return dto.PlanOutput{}, fmt.Errorf("encode profile: %w", err)
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return dto.PlanOutput{}, fmt.Errorf("encode plan: %w", err)
	}

	if !i.settings.Set(ctx, settingsdomain.KeyUserProfile.Name, profileJSON) {
		return dto.PlanOutput{}, fmt.Errorf("store user profile")
	}
	if !i.settings.Set(ctx, settingsdomain.KeyTrainingPlan.Name, planJSON) {
		return dto.PlanOutput{}, fmt.Errorf("store training plan")
	}
	if !i.settings.SetOnboardingComplete(ctx, true) {
		i.logger.Warn("plan stored but onboarding flag not persisted")
	}
	return toPlanOutput(plan), nil
}

func (i *Interactor) Active(ctx context.Context) (dto.PlanOutput, error) {
	raw, found := i.settings.Get(ctx, settingsdomain.KeyTrainingPlan.Name)
	if !found {
		return dto.PlanOutput{}, apperrors.ErrNoPlan
	}
	var plan domain.TrainingPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		i.logger.WithError(err).Warn("stored training plan is unreadable")
		return dto.PlanOutput{}, apperrors.ErrNoPlan
	}
	return toPlanOutput(plan), nil
}

func (i *Interactor) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	raw, found := i.settings.Get(ctx, settingsdomain.KeyUserProfile.Name)
	if !found {
		return dto.ProfileOutput{}, apperrors.ErrOnboardingIncomplete
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		i.logger.WithError(err).Warn("stored user profile is unreadable")
		return dto.ProfileOutput{}, apperrors.ErrOnboardingIncomplete
	}
	return dto.ProfileOutput{
		Habit:      profile.Habit,
		Goal:       profile.Goal,
		TimeBudget: profile.TimeBudget,
		Equipment:  profile.Equipment,
		Limitation: profile.Limitation,
		TimeOfDay:  profile.TimeOfDay,
		CreatedAt:  profile.CreatedAt,
	}, nil
}

func toPlanOutput(plan domain.TrainingPlan) dto.PlanOutput {
	exercises := make([]dto.ExerciseOutput, 0, len(plan.Exercises))
	for _, ex := range plan.Exercises {
		exercises = append(exercises, dto.ExerciseOutput{
			ID:          ex.ID,
			Name:        ex.Name,
			Duration:    ex.Duration,
			Description: ex.Description,
			Category:    ex.Category,
		})
	}
	return dto.PlanOutput{
		ID:          plan.ID,
		Name:        plan.Name,
		Description: plan.Description,
		Exercises:   exercises,
		CreatedAt:   plan.CreatedAt,
	}
}
