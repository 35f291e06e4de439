package in

import (
	"context"
	"time"

	"trainlog/internal/modules/stats/dto"
)

// Usecase never fails: an unreadable record store surfaces as zeroed
// statistics, not an error.
type Usecase interface {
	Summary(ctx context.Context) dto.SummaryOutput
	Heatmap(ctx context.Context) [][]dto.HeatmapCell
	Week(ctx context.Context) []dto.WeekDayOutput
	MonthlyDigest(ctx context.Context, year int, month time.Month) []dto.DigestEntry
}
