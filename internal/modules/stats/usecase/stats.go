package usecase

import (
	"context"
	"time"

	"trainlog/internal/modules/stats/dto"
	"trainlog/internal/modules/stats/service"
)

type Interactor struct {
	svc *service.StatsService
}

func NewInteractor(svc *service.StatsService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Summary(ctx context.Context) dto.SummaryOutput {
	s := i.svc.Summary(ctx)
	return dto.SummaryOutput{
		TotalDays:      s.TotalDays,
		CurrentStreak:  s.CurrentStreak,
		LongestStreak:  s.LongestStreak,
		CompletionRate: s.CompletionRate,
		ThisMonthDays:  s.ThisMonthDays,
	}
}

func (i *Interactor) Heatmap(ctx context.Context) [][]dto.HeatmapCell {
	grid := i.svc.Heatmap(ctx)
	out := make([][]dto.HeatmapCell, 0, len(grid))
	for _, week := range grid {
		cells := make([]dto.HeatmapCell, 0, len(week))
		for _, c := range week {
			cells = append(cells, dto.HeatmapCell{
				Date:      c.Date,
				Completed: c.Completed,
				IsToday:   c.IsToday,
				IsFuture:  c.IsFuture,
			})
		}
		out = append(out, cells)
	}
	return out
}

func (i *Interactor) Week(ctx context.Context) []dto.WeekDayOutput {
	strip := i.svc.Week(ctx)
	out := make([]dto.WeekDayOutput, 0, len(strip))
	for _, d := range strip {
		out = append(out, dto.WeekDayOutput{
			Date:      d.Date,
			DayName:   d.DayName,
			Completed: d.Completed,
			IsToday:   d.IsToday,
		})
	}
	return out
}

func (i *Interactor) MonthlyDigest(ctx context.Context, year int, month time.Month) []dto.DigestEntry {
	days := i.svc.MonthlyDigest(ctx, year, month)
	out := make([]dto.DigestEntry, 0, len(days))
	for _, d := range days {
		out = append(out, dto.DigestEntry{Date: d.Date, Total: d.Total, Completed: d.Completed})
	}
	return out
}
