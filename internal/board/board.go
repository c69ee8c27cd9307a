// Package board implements the dashboard's application logic on top of
// the blob store: tasks, deadlines, habits, goals, the weekly planner,
// health tracking, and the cached match lookup.
package board

import (
	"errors"
	"time"

	"github.com/hayati-app/hayati/internal/engine"
	"github.com/hayati-app/hayati/internal/model"
	"github.com/hayati-app/hayati/internal/store"
)

var (
	// ErrEmptyText rejects items created with no text.
	ErrEmptyText = errors.New("text must not be empty")
	// ErrNotFound reports an ID with no matching item.
	ErrNotFound = errors.New("no such item")
	// ErrInvalidMeasurement rejects non-positive health measurements.
	ErrInvalidMeasurement = errors.New("measurement must be positive")
)

// Board is the single entry point for reading and mutating dashboard
// state. Every mutation loads, applies, and saves; the store is the
// source of truth between calls.
type Board struct {
	store *store.Store
	now   func() time.Time
}

// New creates a board over the given store.
func New(s *store.Store) *Board {
	return &Board{store: s, now: time.Now}
}

// Summary is the overview aggregate shown on the dashboard's front
// page and by the bare CLI invocation.
type Summary struct {
	NextDeadline  *model.Deadline
	OpenTasks     int
	DoneTasks     int
	Habits        []HabitStatus
	Goals         []model.Goal
	Health        model.HealthInfo
	CurrentWeight float64
	Progress      float64
	TodayPlan     []model.PlannerTask
	TodayPlanDay  time.Weekday
	DeadlinesSoon []model.Deadline
}

// Overview assembles the cross-widget summary.
func (b *Board) Overview() Summary {
	now := b.now()

	var sum Summary
	for _, scope := range []TaskScope{ScopeAcademic, ScopePersonal} {
		for _, t := range b.Tasks(scope) {
			if t.Completed {
				sum.DoneTasks++
			} else {
				sum.OpenTasks++
			}
		}
	}

	deadlines := b.Deadlines()
	for i := range deadlines {
		if deadlines[i].Due.After(now) {
			sum.NextDeadline = &deadlines[i]
			break
		}
	}
	for _, d := range deadlines {
		if d.Due.After(now) && engine.UrgencyOf(d.Due, now) <= engine.UrgencySoon {
			sum.DeadlinesSoon = append(sum.DeadlinesSoon, d)
		}
	}

	sum.Habits = b.HabitStatuses()
	sum.Goals = b.Goals()

	sum.Health = b.Health()
	sum.CurrentWeight = engine.CurrentWeight(sum.Health)
	sum.Progress = engine.Progress(sum.Health.InitialWeight, sum.Health.TargetWeight, sum.CurrentWeight)

	plan := b.Plan()
	sum.TodayPlanDay = now.Weekday()
	sum.TodayPlan = plan.Days[sum.TodayPlanDay]

	return sum
}
