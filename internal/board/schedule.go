package board

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hayati-app/hayati/internal/model"
	"github.com/hayati-app/hayati/internal/store"
)

// Deadlines returns all deadlines sorted by due time, soonest first.
func (b *Board) Deadlines() []model.Deadline {
	ds := store.Load(b.store, store.KeyDeadlines, []model.Deadline(nil))
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].Due.Before(ds[j].Due) })
	return ds
}

// AddDeadline records a new deadline. The list stays sorted by due
// time regardless of insertion order.
func (b *Board) AddDeadline(subject string, kind model.DeadlineKind, due time.Time) (model.Deadline, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return model.Deadline{}, ErrEmptyText
	}
	if !kind.IsValid() {
		kind = model.KindOther
	}
	d := model.Deadline{ID: uuid.NewString(), Subject: subject, Kind: kind, Due: due}
	ds := append(b.Deadlines(), d)
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].Due.Before(ds[j].Due) })
	return d, store.Save(b.store, store.KeyDeadlines, ds)
}

// DeleteDeadline removes a deadline by ID.
func (b *Board) DeleteDeadline(id string) error {
	ds := b.Deadlines()
	for i := range ds {
		if ds[i].ID == id {
			ds = append(ds[:i], ds[i+1:]...)
			return store.Save(b.store, store.KeyDeadlines, ds)
		}
	}
	return ErrNotFound
}

// Plan returns the weekly planner.
func (b *Board) Plan() model.WeeklyPlan {
	return store.Load(b.store, store.KeyWeeklyPlan, model.WeeklyPlan{})
}

// AddPlanTask appends a task to one weekday's plan.
func (b *Board) AddPlanTask(day time.Weekday, text string) (model.PlannerTask, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.PlannerTask{}, ErrEmptyText
	}
	t := model.PlannerTask{ID: uuid.NewString(), Text: text}
	plan := b.Plan()
	plan.Days[day] = append(plan.Days[day], t)
	return t, store.Save(b.store, store.KeyWeeklyPlan, plan)
}

// DeletePlanTask removes a task from one weekday's plan.
func (b *Board) DeletePlanTask(day time.Weekday, id string) error {
	plan := b.Plan()
	tasks := plan.Days[day]
	for i := range tasks {
		if tasks[i].ID == id {
			plan.Days[day] = append(tasks[:i], tasks[i+1:]...)
			return store.Save(b.store, store.KeyWeeklyPlan, plan)
		}
	}
	return ErrNotFound
}
