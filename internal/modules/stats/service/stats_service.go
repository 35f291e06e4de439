package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"trainlog/internal/modules/stats/domain"
	statsout "trainlog/internal/modules/stats/port/out"
	"trainlog/internal/platform/clock"
	"trainlog/internal/platform/dates"
)

// StatsService computes statistics over a snapshot of day summaries. A
// failing source degrades to the empty snapshot with a logged warning, so
// statistics screens render zeros instead of erroring.
type StatsService struct {
	clock  clock.Clock
	source statsout.RecordSource
	logger *logrus.Logger
}

func NewStatsService(clk clock.Clock, source statsout.RecordSource, logger *logrus.Logger) *StatsService {
	return &StatsService{clock: clk, source: source, logger: logger}
}

func (s *StatsService) snapshot(ctx context.Context) []domain.Day {
	days, err := s.source.Snapshot(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("statistics snapshot failed")
		return nil
	}
	return days
}

func (s *StatsService) today() string {
	return dates.Format(s.clock.Now())
}

func (s *StatsService) Summary(ctx context.Context) domain.Summary {
	return domain.Summarize(s.snapshot(ctx), s.today())
}

func (s *StatsService) Heatmap(ctx context.Context) [][]domain.HeatmapCell {
	return domain.BuildHeatmap(s.snapshot(ctx), s.today())
}

func (s *StatsService) Week(ctx context.Context) []domain.WeekDay {
	return domain.WeekStrip(s.snapshot(ctx), s.today())
}

func (s *StatsService) MonthlyDigest(ctx context.Context, year int, month time.Month) []domain.Day {
	return domain.MonthlyDigest(s.snapshot(ctx), year, month)
}
