package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	adapterout "trainlog/internal/modules/activity/adapter/out"
	"trainlog/internal/modules/activity/service"
	plandto "trainlog/internal/modules/plan/dto"
	apperrors "trainlog/internal/platform/errors"
	"trainlog/internal/platform/logging"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakePlan struct {
	plan plandto.PlanOutput
	err  error
}

func (f *fakePlan) Questions(context.Context) []plandto.QuestionOutput { return nil }

func (f *fakePlan) CompleteOnboarding(context.Context, plandto.OnboardingInput) (plandto.PlanOutput, error) {
	return f.plan, f.err
}

func (f *fakePlan) Active(context.Context) (plandto.PlanOutput, error) {
	return f.plan, f.err
}

func (f *fakePlan) Profile(context.Context) (plandto.ProfileOutput, error) {
	return plandto.ProfileOutput{}, f.err
}

func twoExercisePlan() plandto.PlanOutput {
	return plandto.PlanOutput{
		ID:   "plan-1",
		Name: "Health & Fitness Foundation Plan",
		Exercises: []plandto.ExerciseOutput{
			{ID: "warmup", Name: "Warm-up", Duration: "3 min", Category: "warmup"},
			{ID: "ex1", Name: "Squats", Duration: "10 reps × 3 sets", Category: "lower"},
		},
	}
}

func newInteractor(t *testing.T, clk *fakeClock, plan *fakePlan) *Interactor {
	t.Helper()
	store, err := adapterout.NewSQLiteRecordStore(filepath.Join(t.TempDir(), "activities.db"))
	if err != nil {
		t.Fatalf("open record store: %v", err)
	}
	svc := service.NewActivityService(clk, store, logging.Discard())
	return NewInteractor(svc, plan)
}

func TestTodaySeedsRecordOnFirstVisit(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{now: time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)}
	interactor := newInteractor(t, clk, &fakePlan{plan: twoExercisePlan()})
	ctx := context.Background()

	out, err := interactor.Today(ctx)
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}
	if out.Record.Date != "2026-08-31" {
		t.Errorf("Date = %q, want 2026-08-31", out.Record.Date)
	}
	if out.Record.TotalCount != 2 || out.Record.CompletedCount != 0 {
		t.Errorf("counts = %d/%d, want 0/2", out.Record.CompletedCount, out.Record.TotalCount)
	}
	if out.PlanName != "Health & Fitness Foundation Plan" {
		t.Errorf("PlanName = %q", out.PlanName)
	}

	// Second visit returns the persisted record, not a fresh seed.
	if _, err := interactor.Toggle(ctx, "warmup"); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	out, err = interactor.Today(ctx)
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}
	if out.Record.CompletedCount != 1 {
		t.Errorf("CompletedCount after toggle = %d, want 1", out.Record.CompletedCount)
	}
}

func TestTodayWithoutPlan(t *testing.T) {
	t.Parallel()

	interactor := newInteractor(t, &fakeClock{now: time.Now()}, &fakePlan{err: apperrors.ErrNoPlan})
	if _, err := interactor.Today(context.Background()); !errors.Is(err, apperrors.ErrNoPlan) {
		t.Fatalf("Today() = %v, want ErrNoPlan", err)
	}
}

func TestToggleReportsCompletionTransition(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{now: time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)}
	interactor := newInteractor(t, clk, &fakePlan{plan: twoExercisePlan()})
	ctx := context.Background()

	if _, err := interactor.Today(ctx); err != nil {
		t.Fatalf("Today() error = %v", err)
	}

	out, err := interactor.Toggle(ctx, "warmup")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if out.JustCompleted {
		t.Error("JustCompleted after first of two, want false")
	}

	out, err = interactor.Toggle(ctx, "ex1")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !out.JustCompleted || !out.Record.AllCompleted {
		t.Errorf("final toggle = %+v, want JustCompleted and AllCompleted", out)
	}

	// Untoggling and re-completing celebrates again.
	if _, err := interactor.Toggle(ctx, "ex1"); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	out, err = interactor.Toggle(ctx, "ex1")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !out.JustCompleted {
		t.Error("re-completing the day should report JustCompleted")
	}
}

func TestToggleUnknownExercise(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{now: time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)}
	interactor := newInteractor(t, clk, &fakePlan{plan: twoExercisePlan()})
	ctx := context.Background()

	if _, err := interactor.Today(ctx); err != nil {
		t.Fatalf("Today() error = %v", err)
	}
	if _, err := interactor.Toggle(ctx, "nope"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("Toggle(unknown) = %v, want ErrInvalidInput", err)
	}
}

func TestToggleBeforeTodayRecordExists(t *testing.T) {
	t.Parallel()

	interactor := newInteractor(t, &fakeClock{now: time.Now()}, &fakePlan{plan: twoExercisePlan()})
	if _, err := interactor.Toggle(context.Background(), "warmup"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Toggle() without today record = %v, want ErrNotFound", err)
	}
}

func TestHistoryRangeAndDelete(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{now: time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)}
	interactor := newInteractor(t, clk, &fakePlan{plan: twoExercisePlan()})
	ctx := context.Background()

	// Create records across three days by advancing the clock.
	for _, day := range []int{29, 30, 31} {
		clk.now = time.Date(2026, 8, day, 8, 0, 0, 0, time.UTC)
		if _, err := interactor.Today(ctx); err != nil {
			t.Fatalf("Today() error = %v", err)
		}
	}

	records, err := interactor.History(ctx, "2026-08-29", "2026-08-30")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("History() returned %d records, want 2", len(records))
	}
	if records[0].Date != "2026-08-29" || records[1].Date != "2026-08-30" {
		t.Errorf("History() order = %s, %s", records[0].Date, records[1].Date)
	}

	deleted, err := interactor.Delete(ctx, "2026-08-30")
	if err != nil || !deleted {
		t.Fatalf("Delete() = %v, %v", deleted, err)
	}
	deleted, err = interactor.Delete(ctx, "2026-08-30")
	if err != nil || deleted {
		t.Fatalf("second Delete() = %v, %v, want false, nil", deleted, err)
	}

	if _, err := interactor.History(ctx, "2026-08-31", "2026-08-29"); err != nil {
		t.Fatalf("inverted range should be empty, not an error: %v", err)
	}
}

func TestGetValidatesDate(t *testing.T) {
	t.Parallel()

	interactor := newInteractor(t, &fakeClock{now: time.Now()}, &fakePlan{plan: twoExercisePlan()})
	if _, _, err := interactor.Get(context.Background(), "31-08-2026"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("Get(bad date) = %v, want ErrInvalidInput", err)
	}
}
