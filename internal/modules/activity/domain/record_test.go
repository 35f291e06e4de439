package domain_test

import (
	"testing"
	"time"

	"trainlog/internal/modules/activity/domain"
)

func exercises(ids ...string) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Exercise{ID: id, Name: id})
	}
	return out
}

func TestToggleMaintainsSetSemanticsAndAllCompleted(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)
	rec := domain.NewForDate("2024-05-01", exercises("a", "b"))

	rec.Toggle("a", now)
	if !rec.IsCompleted("a") || rec.AllCompleted {
		t.Fatalf("after first toggle: completed=%v all=%v", rec.Completed, rec.AllCompleted)
	}

	rec.Toggle("a", now)
	if rec.IsCompleted("a") || len(rec.Completed) != 0 {
		t.Fatalf("toggle must remove: %v", rec.Completed)
	}

	rec.Toggle("a", now)
	rec.Toggle("b", now)
	if !rec.AllCompleted {
		t.Fatalf("all exercises done but AllCompleted=false")
	}
	if rec.LastUpdated == "" {
		t.Fatalf("LastUpdated must be stamped on mutation")
	}

	rec.Toggle("b", now)
	if rec.AllCompleted {
		t.Fatalf("AllCompleted must be rederived on every mutation")
	}
}

func TestEmptyExerciseListNeverCompletes(t *testing.T) {
	t.Parallel()
	rec := domain.NewForDate("2024-05-01", nil)
	if rec.Done() {
		t.Fatalf("record without exercises cannot be done")
	}
}

func TestDoneRecomputesOverStaleFlag(t *testing.T) {
	t.Parallel()
	rec := domain.Record{
		Date:      "2024-05-01",
		Exercises: exercises("a"),
		Completed: []string{"a"},
		// stale persisted flag
		AllCompleted: false,
	}
	if !rec.Done() {
		t.Fatalf("Done must trust fresh recomputation over stored flag")
	}
}

func TestValidateRejectsBadDates(t *testing.T) {
	t.Parallel()
	rec := domain.NewForDate("01/05/2024", nil)
	if err := rec.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}
