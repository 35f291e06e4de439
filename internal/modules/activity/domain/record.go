package domain

import (
	"fmt"
	"time"

	"trainlog/internal/platform/dates"
)

// Exercise is one exercise descriptor, copied from the active plan into the
// day's record at creation time. JSON tags match the backup file format.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Record is one calendar date's exercise-completion state. Date is the
// natural key: at most one record exists per date, and writing again for
// the same date overwrites wholesale.
type Record struct {
	Date         string     `json:"date"`
	Exercises    []Exercise `json:"exercises"`
	Completed    []string   `json:"completedExercises"`
	AllCompleted bool       `json:"allCompleted"`
	LastUpdated  string     `json:"lastUpdated,omitempty"`
}

// NewForDate seeds an empty record from the current plan's exercise list.
func NewForDate(date string, exercises []Exercise) Record {
	return Record{
		Date:      date,
		Exercises: exercises,
		Completed: []string{},
	}
}

func (r Record) Validate() error {
	if !dates.IsValid(r.Date) {
		return fmt.Errorf("invalid record date %q", r.Date)
	}
	return nil
}

func (r Record) IsCompleted(exerciseID string) bool {
	for _, id := range r.Completed {
		if id == exerciseID {
			return true
		}
	}
	return false
}

func (r Record) HasExercise(exerciseID string) bool {
	for _, e := range r.Exercises {
		if e.ID == exerciseID {
			return true
		}
	}
	return false
}

// Toggle flips membership of exerciseID in the completed set and recomputes
// AllCompleted in the same mutation. The completed set keeps set semantics;
// duplicates are impossible by construction.
func (r *Record) Toggle(exerciseID string, now time.Time) {
	if r.IsCompleted(exerciseID) {
		kept := r.Completed[:0]
		for _, id := range r.Completed {
			if id != exerciseID {
				kept = append(kept, id)
			}
		}
		r.Completed = kept
	} else {
		r.Completed = append(r.Completed, exerciseID)
	}
	r.recompute()
	r.LastUpdated = now.Format(time.RFC3339)
}

// recompute rederives the denormalized AllCompleted flag. A record with no
// exercises is never considered complete.
func (r *Record) recompute() {
	r.AllCompleted = len(r.Exercises) > 0 && len(r.Completed) == len(r.Exercises)
}

// Done reports completion. A fresh recomputation from the sets wins over a
// possibly stale stored flag.
func (r Record) Done() bool {
	if len(r.Exercises) > 0 && len(r.Completed) == len(r.Exercises) {
		return true
	}
	return r.AllCompleted
}
