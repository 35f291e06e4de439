package usecase

import (
	"context"
	"fmt"

	activitydomain "trainlog/internal/modules/activity/domain"
	"trainlog/internal/modules/activity/dto"
	"trainlog/internal/modules/activity/service"
	plandto "trainlog/internal/modules/plan/dto"
	planin "trainlog/internal/modules/plan/port/in"
	"trainlog/internal/platform/dates"
	apperrors "trainlog/internal/platform/errors"
)

type Interactor struct {
	svc  *service.ActivityService
	plan planin.Usecase
}

func NewInteractor(svc *service.ActivityService, plan planin.Usecase) *Interactor {
	return &Interactor{svc: svc, plan: plan}
}

// Today resolves the active plan and lazily creates today's record from its
// exercises on first visit of the day.
func (i *Interactor) Today(ctx context.Context) (dto.TodayOutput, error) {
	plan, err := i.plan.Active(ctx)
	if err != nil {
		return dto.TodayOutput{}, err
	}
	record := i.svc.EnsureToday(ctx, planExercises(plan))
	return dto.TodayOutput{
		PlanName:        plan.Name,
		PlanDescription: plan.Description,
		Record:          toRecordOutput(record),
	}, nil
}

func (i *Interactor) Toggle(ctx context.Context, exerciseID string) (dto.ToggleOutput, error) {
	record, justCompleted, err := i.svc.Toggle(ctx, exerciseID)
	if err != nil {
		return dto.ToggleOutput{}, err
	}
	return dto.ToggleOutput{Record: toRecordOutput(record), JustCompleted: justCompleted}, nil
}

func (i *Interactor) Get(ctx context.Context, date string) (dto.RecordOutput, bool, error) {
	if !dates.IsValid(date) {
		return dto.RecordOutput{}, false, fmt.Errorf("%w: bad date %q", apperrors.ErrInvalidInput, date)
	}
	record, found := i.svc.Get(ctx, date)
	if !found {
		return dto.RecordOutput{}, false, nil
	}
	return toRecordOutput(record), true, nil
}

func (i *Interactor) Delete(ctx context.Context, date string) (bool, error) {
	if !dates.IsValid(date) {
		return false, fmt.Errorf("%w: bad date %q", apperrors.ErrInvalidInput, date)
	}
	if _, found := i.svc.Get(ctx, date); !found {
		return false, nil
	}
	return i.svc.Delete(ctx, date), nil
}

func (i *Interactor) History(ctx context.Context, startDate, endDate string) ([]dto.RecordOutput, error) {
	if !dates.IsValid(startDate) || !dates.IsValid(endDate) {
		return nil, fmt.Errorf("%w: bad range %q..%q", apperrors.ErrInvalidInput, startDate, endDate)
	}
	records := i.svc.Range(ctx, startDate, endDate)
	out := make([]dto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordOutput(r))
	}
	return out, nil
}

func planExercises(plan plandto.PlanOutput) []activitydomain.Exercise {
	exercises := make([]activitydomain.Exercise, 0, len(plan.Exercises))
	for _, ex := range plan.Exercises {
		exercises = append(exercises, activitydomain.Exercise{
			ID:          ex.ID,
			Name:        ex.Name,
			Duration:    ex.Duration,
			Description: ex.Description,
			Category:    ex.Category,
		})
	}
	return exercises
}

func toRecordOutput(record activitydomain.Record) dto.RecordOutput {
	exercises := make([]dto.ExerciseOutput, 0, len(record.Exercises))
	for _, ex := range record.Exercises {
		exercises = append(exercises, dto.ExerciseOutput{
			ID:          ex.ID,
			Name:        ex.Name,
			Duration:    ex.Duration,
			Description: ex.Description,
			Category:    ex.Category,
			Done:        record.IsCompleted(ex.ID),
		})
	}
	return dto.RecordOutput{
		Date:           record.Date,
		Exercises:      exercises,
		CompletedCount: len(record.Completed),
		TotalCount:     len(record.Exercises),
		AllCompleted:   record.Done(),
	}
}
