package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"trainlog/internal/modules/activity/domain"
	activityout "trainlog/internal/modules/activity/port/out"
	"trainlog/internal/platform/clock"
	"trainlog/internal/platform/dates"
	apperrors "trainlog/internal/platform/errors"
)

// ActivityService wraps the record store with the fail-closed contract the
// UI relies on: reads degrade to absent/empty with a logged warning, plain
// writes report a boolean. Only the backup operations surface real errors.
type ActivityService struct {
	clock  clock.Clock
	store  activityout.RecordStore
	logger *logrus.Logger
}

func NewActivityService(clk clock.Clock, store activityout.RecordStore, logger *logrus.Logger) *ActivityService {
	return &ActivityService{clock: clk, store: store, logger: logger}
}

func (s *ActivityService) Today() string {
	return dates.Format(s.clock.Now())
}

func (s *ActivityService) Get(ctx context.Context, date string) (domain.Record, bool) {
	record, err := s.store.Get(ctx, date)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.Record{}, false
	}
	if err != nil {
		s.logger.WithError(err).WithField("date", date).Warn("activity read failed")
		return domain.Record{}, false
	}
	return record, true
}

func (s *ActivityService) Put(ctx context.Context, record domain.Record) bool {
	if err := record.Validate(); err != nil {
		s.logger.WithError(err).Warn("refusing to store invalid activity record")
		return false
	}
	if err := s.store.Put(ctx, record); err != nil {
		s.logger.WithError(err).WithField("date", record.Date).Warn("activity write failed")
		return false
	}
	return true
}

func (s *ActivityService) All(ctx context.Context) []domain.Record {
	records, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("activity scan failed")
		return nil
	}
	return records
}

func (s *ActivityService) Range(ctx context.Context, startDate, endDate string) []domain.Record {
	records, err := s.store.GetRange(ctx, startDate, endDate)
	if err != nil {
		s.logger.WithError(err).Warn("activity range read failed")
		return nil
	}
	return records
}

func (s *ActivityService) Delete(ctx context.Context, date string) bool {
	if err := s.store.Delete(ctx, date); err != nil {
		s.logger.WithError(err).WithField("date", date).Warn("activity delete failed")
		return false
	}
	return true
}

// EnsureToday returns today's record, lazily seeding it from the supplied
// plan exercises on first visit. The seeded record is returned even when
// the persist fails, so the UI can still render a checklist.
func (s *ActivityService) EnsureToday(ctx context.Context, exercises []domain.Exercise) domain.Record {
	today := s.Today()
	if record, found := s.Get(ctx, today); found {
		return record
	}
	record := domain.NewForDate(today, exercises)
	s.Put(ctx, record)
	return record
}

// Toggle flips one exercise on today's record and persists the result in a
// single wholesale upsert. justCompleted reports the transition into the
// fully-completed state, which the UI celebrates.
func (s *ActivityService) Toggle(ctx context.Context, exerciseID string) (domain.Record, bool, error) {
	today := s.Today()
	record, found := s.Get(ctx, today)
	if !found {
		return domain.Record{}, false, apperrors.ErrNotFound
	}
	if !record.HasExercise(exerciseID) {
		return domain.Record{}, false, fmt.Errorf("%w: unknown exercise %q", apperrors.ErrInvalidInput, exerciseID)
	}
	wasCompleted := record.Done()
	record.Toggle(exerciseID, s.clock.Now())
	if !s.Put(ctx, record) {
		return record, false, nil
	}
	return record, record.AllCompleted && !wasCompleted, nil
}

// ExportAll and ImportAll back the backup coordinator and propagate real
// errors; backup failures must be visible, not silently degraded.
func (s *ActivityService) ExportAll(ctx context.Context) ([]domain.Record, error) {
	return s.store.ExportAll(ctx)
}

func (s *ActivityService) ImportAll(ctx context.Context, records []domain.Record) error {
	return s.store.ImportAll(ctx, records)
}

func (s *ActivityService) ClearAll(ctx context.Context) error {
	return s.store.ClearAll(ctx)
}
