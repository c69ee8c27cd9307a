package board

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hayati-app/hayati/internal/engine"
	"github.com/hayati-app/hayati/internal/model"
	"github.com/hayati-app/hayati/internal/store"
)

// defaultHabits seeds a first-run habit list.
var defaultHabits = []string{"Go to the gym", "Read 20 pages", "Meditate", "Write code"}

// Habits returns the habit list, seeding the defaults on first run.
func (b *Board) Habits() []model.Habit {
	habits := store.Load(b.store, store.KeyHabits, []model.Habit(nil))
	if habits != nil {
		return habits
	}
	habits = make([]model.Habit, 0, len(defaultHabits))
	for _, name := range defaultHabits {
		habits = append(habits, model.Habit{ID: uuid.NewString(), Name: name})
	}
	// Persist the seed so IDs stay stable across runs.
	if b.store.OK() {
		_ = store.Save(b.store, store.KeyHabits, habits)
	}
	return habits
}

// HabitStatus pairs a habit with its derived streak state.
type HabitStatus struct {
	Habit  model.Habit
	Status engine.StreakStatus
	Flame  engine.FlameLevel
}

// HabitStatuses returns every habit with its streak computed as of now.
func (b *Board) HabitStatuses() []HabitStatus {
	now := b.now()
	habits := b.Habits()
	out := make([]HabitStatus, len(habits))
	for i, h := range habits {
		st := engine.Streak(h.CompletedDates, now)
		out[i] = HabitStatus{Habit: h, Status: st, Flame: engine.Flame(st.Streak, st.CompletedToday)}
	}
	return out
}

// AddHabit creates a new habit with an empty log.
func (b *Board) AddHabit(name string) (model.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Habit{}, ErrEmptyText
	}
	h := model.Habit{ID: uuid.NewString(), Name: name}
	habits := append(b.Habits(), h)
	return h, store.Save(b.store, store.KeyHabits, habits)
}

// ToggleHabit flips today's completion for a habit.
func (b *Board) ToggleHabit(id string) error {
	habits := b.Habits()
	for i := range habits {
		if habits[i].ID == id {
			habits[i].CompletedDates = engine.ToggleToday(habits[i].CompletedDates, b.now())
			return store.Save(b.store, store.KeyHabits, habits)
		}
	}
	return ErrNotFound
}

// DeleteHabit removes a habit and its log.
func (b *Board) DeleteHabit(id string) error {
	habits := b.Habits()
	for i := range habits {
		if habits[i].ID == id {
			habits = append(habits[:i], habits[i+1:]...)
			return store.Save(b.store, store.KeyHabits, habits)
		}
	}
	return ErrNotFound
}

// Health returns the health widget state.
func (b *Board) Health() model.HealthInfo {
	return store.Load(b.store, store.KeyHealthInfo, model.HealthInfo{})
}

// SetHealthInfo updates height, initial weight, and target weight while
// preserving the weight history.
func (b *Board) SetHealthInfo(heightCm, initialWeight, targetWeight float64) error {
	if heightCm <= 0 || initialWeight <= 0 || targetWeight <= 0 {
		return ErrInvalidMeasurement
	}
	info := b.Health()
	info.HeightCm = heightCm
	info.InitialWeight = initialWeight
	info.TargetWeight = targetWeight
	return store.Save(b.store, store.KeyHealthInfo, info)
}

// RecordWeight logs today's weight, replacing any entry already made
// today.
func (b *Board) RecordWeight(weightKg float64) error {
	if weightKg <= 0 {
		return ErrInvalidMeasurement
	}
	info := engine.RecordWeight(b.Health(), model.WeightEntry{Date: b.now(), Weight: weightKg})
	return store.Save(b.store, store.KeyHealthInfo, info)
}
