package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trainlog/internal/modules/stats/domain"
	"trainlog/internal/platform/logging"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeSource struct {
	days []domain.Day
	err  error
}

func (f fakeSource) Snapshot(context.Context) ([]domain.Day, error) {
	return f.days, f.err
}

func TestSummaryComputesFromSnapshot(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(
		fakeClock{now: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)},
		fakeSource{days: []domain.Day{
			{Date: "2026-08-30", Total: 2, Completed: 2, AllCompleted: true},
			{Date: "2026-08-31", Total: 2, Completed: 2, AllCompleted: true},
		}},
		logging.Discard(),
	)

	summary := svc.Summary(context.Background())
	if summary.CurrentStreak != 2 || summary.TotalDays != 2 {
		t.Fatalf("Summary = %+v", summary)
	}
}

func TestFailingSourceDegradesToZeros(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(
		fakeClock{now: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)},
		fakeSource{err: errors.New("disk gone")},
		logging.Discard(),
	)
	ctx := context.Background()

	if summary := svc.Summary(ctx); summary != (domain.Summary{}) {
		t.Errorf("Summary on failing source = %+v, want zeros", summary)
	}
	if grid := svc.Heatmap(ctx); len(grid) != 53 {
		t.Errorf("Heatmap on failing source has %d weeks, want full empty grid", len(grid))
	}
	if strip := svc.Week(ctx); len(strip) != 7 {
		t.Errorf("Week on failing source has %d entries, want 7", len(strip))
	}
	if digest := svc.MonthlyDigest(ctx, 2026, time.August); len(digest) != 0 {
		t.Errorf("MonthlyDigest on failing source = %v, want empty", digest)
	}
}
