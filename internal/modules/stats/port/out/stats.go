package out

import (
	"context"

	"trainlog/internal/modules/stats/domain"
)

// RecordSource supplies the per-day completion summaries statistics run on.
type RecordSource interface {
	Snapshot(ctx context.Context) ([]domain.Day, error)
}
