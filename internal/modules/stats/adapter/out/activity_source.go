package out

import (
	"context"

	activityout "trainlog/internal/modules/activity/port/out"
	"trainlog/internal/modules/stats/domain"
)

// ActivitySource reduces full activity records to the day summaries the
// statistics functions need.
type ActivitySource struct {
	store activityout.RecordStore
}

func NewActivitySource(store activityout.RecordStore) *ActivitySource {
	return &ActivitySource{store: store}
}

func (s *ActivitySource) Snapshot(ctx context.Context) ([]domain.Day, error) {
	records, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	days := make([]domain.Day, 0, len(records))
	for _, r := range records {
		days = append(days, domain.Day{
			Date:         r.Date,
			Total:        len(r.Exercises),
			Completed:    len(r.Completed),
			AllCompleted: r.AllCompleted,
		})
	}
	return days, nil
}
