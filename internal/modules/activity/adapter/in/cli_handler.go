package in

import (
	"context"

	"trainlog/internal/modules/activity/dto"
	activityin "trainlog/internal/modules/activity/port/in"
)

type CLIHandler struct {
	usecase activityin.Usecase
}

func NewCLIHandler(usecase activityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Today(ctx context.Context) (dto.TodayOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Toggle(ctx context.Context, exerciseID string) (dto.ToggleOutput, error) {
	return h.usecase.Toggle(ctx, exerciseID)
}

func (h CLIHandler) Get(ctx context.Context, date string) (dto.RecordOutput, bool, error) {
	return h.usecase.Get(ctx, date)
}

func (h CLIHandler) Delete(ctx context.Context, date string) (bool, error) {
	return h.usecase.Delete(ctx, date)
}

func (h CLIHandler) History(ctx context.Context, startDate, endDate string) ([]dto.RecordOutput, error) {
	return h.usecase.History(ctx, startDate, endDate)
}
