package in

import (
	"context"

	"trainlog/internal/modules/activity/dto"
)

type Usecase interface {
	// Today lazily creates today's record from the active plan on first
	// visit. Returns apperrors.ErrNoPlan when onboarding never produced one.
	Today(ctx context.Context) (dto.TodayOutput, error)
	Toggle(ctx context.Context, exerciseID string) (dto.ToggleOutput, error)
	Get(ctx context.Context, date string) (dto.RecordOutput, bool, error)
	Delete(ctx context.Context, date string) (bool, error)
	History(ctx context.Context, startDate, endDate string) ([]dto.RecordOutput, error)
}
