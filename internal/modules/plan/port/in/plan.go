package in

import (
	"context"

	"trainlog/internal/modules/plan/dto"
)

type Usecase interface {
	Questions(ctx context.Context) []dto.QuestionOutput
	// CompleteOnboarding validates the answers, generates a plan, persists
	// profile and plan, and marks onboarding done.
	CompleteOnboarding(ctx context.Context, input dto.OnboardingInput) (dto.PlanOutput, error)
	// Active returns the stored plan or apperrors.ErrNoPlan.
	Active(ctx context.Context) (dto.PlanOutput, error)
	// Profile returns the stored onboarding answers, or
	// apperrors.ErrOnboardingIncomplete when onboarding never stored any.
	Profile(ctx context.Context) (dto.ProfileOutput, error)
}
