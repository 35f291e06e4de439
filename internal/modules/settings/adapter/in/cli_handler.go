package in

import (
	"context"

	settingsin "trainlog/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) DarkMode(ctx context.Context) bool {
	return h.usecase.DarkMode(ctx)
}

func (h CLIHandler) SetDarkMode(ctx context.Context, enabled bool) bool {
	return h.usecase.SetDarkMode(ctx, enabled)
}

func (h CLIHandler) OnboardingComplete(ctx context.Context) bool {
	return h.usecase.OnboardingComplete(ctx)
}
