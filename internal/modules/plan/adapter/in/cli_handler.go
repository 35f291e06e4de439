package in

import (
	"context"

	"trainlog/internal/modules/plan/dto"
	planin "trainlog/internal/modules/plan/port/in"
)

type CLIHandler struct {
	usecase planin.Usecase
}

func NewCLIHandler(usecase planin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Questions(ctx context.Context) []dto.QuestionOutput {
	return h.usecase.Questions(ctx)
}

func (h CLIHandler) CompleteOnboarding(ctx context.Context, answers map[string]string) (dto.PlanOutput, error) {
	return h.usecase.CompleteOnboarding(ctx, dto.OnboardingInput{Answers: answers})
}

func (h CLIHandler) Active(ctx context.Context) (dto.PlanOutput, error) {
	return h.usecase.Active(ctx)
}

func (h CLIHandler) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.Profile(ctx)
}
