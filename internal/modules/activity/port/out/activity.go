package out

import (
	"context"

	"trainlog/internal/modules/activity/domain"
)

// RecordStore is durable keyed persistence for activity records, one per
// calendar date. Get returns apperrors.ErrNotFound for absent dates. Put is
// a wholesale upsert keyed by record date. ImportAll upserts sequentially
// and is deliberately not transactional: a failure partway leaves earlier
// records committed.
type RecordStore interface {
	Init(ctx context.Context) error
	Get(ctx context.Context, date string) (domain.Record, error)
	Put(ctx context.Context, record domain.Record) error
	GetAll(ctx context.Context) ([]domain.Record, error)
	GetRange(ctx context.Context, startDate, endDate string) ([]domain.Record, error)
	Delete(ctx context.Context, date string) error
	ClearAll(ctx context.Context) error
	ExportAll(ctx context.Context) ([]domain.Record, error)
	ImportAll(ctx context.Context, records []domain.Record) error
}
