package in

import (
	"context"
	"time"

	"trainlog/internal/modules/stats/dto"
	statsin "trainlog/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context) dto.SummaryOutput {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) Heatmap(ctx context.Context) [][]dto.HeatmapCell {
	return h.usecase.Heatmap(ctx)
}

func (h CLIHandler) Week(ctx context.Context) []dto.WeekDayOutput {
	return h.usecase.Week(ctx)
}

func (h CLIHandler) MonthlyDigest(ctx context.Context, year int, month time.Month) []dto.DigestEntry {
	return h.usecase.MonthlyDigest(ctx, year, month)
}
