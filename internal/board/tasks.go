package board

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hayati-app/hayati/internal/model"
	"github.com/hayati-app/hayati/internal/store"
)

// TaskScope selects one of the two task lists.
type TaskScope int

const (
	ScopeAcademic TaskScope = iota
	ScopePersonal
)

func (s TaskScope) key() store.Key {
	if s == ScopePersonal {
		return store.KeyPersonalTasks
	}
	return store.KeyAcademicTasks
}

// String returns the scope's display name.
func (s TaskScope) String() string {
	if s == ScopePersonal {
		return "personal"
	}
	return "academic"
}

// Tasks returns the task list for a scope.
func (b *Board) Tasks(scope TaskScope) []model.Task {
	return store.Load(b.store, scope.key(), []model.Task(nil))
}

// AddTask appends a new task and returns it.
func (b *Board) AddTask(scope TaskScope, text string) (model.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, ErrEmptyText
	}
	t := model.Task{ID: uuid.NewString(), Text: text}
	tasks := append(b.Tasks(scope), t)
	return t, store.Save(b.store, scope.key(), tasks)
}

// ToggleTask flips a task's completed flag.
func (b *Board) ToggleTask(scope TaskScope, id string) error {
	tasks := b.Tasks(scope)
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = !tasks[i].Completed
			return store.Save(b.store, scope.key(), tasks)
		}
	}
	return ErrNotFound
}

// DeleteTask removes a task by ID.
func (b *Board) DeleteTask(scope TaskScope, id string) error {
	tasks := b.Tasks(scope)
	for i := range tasks {
		if tasks[i].ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return store.Save(b.store, scope.key(), tasks)
		}
	}
	return ErrNotFound
}

// Goals returns the goal list.
func (b *Board) Goals() []model.Goal {
	return store.Load(b.store, store.KeyGoals, []model.Goal(nil))
}

// AddGoal appends a new goal and returns it.
func (b *Board) AddGoal(text string) (model.Goal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Goal{}, ErrEmptyText
	}
	g := model.Goal{ID: uuid.NewString(), Text: text}
	goals := append(b.Goals(), g)
	return g, store.Save(b.store, store.KeyGoals, goals)
}

// ToggleGoal flips a goal's completed flag.
func (b *Board) ToggleGoal(id string) error {
	goals := b.Goals()
	for i := range goals {
		if goals[i].ID == id {
			goals[i].Completed = !goals[i].Completed
			return store.Save(b.store, store.KeyGoals, goals)
		}
	}
	return ErrNotFound
}

// DeleteGoal removes a goal by ID.
func (b *Board) DeleteGoal(id string) error {
	goals := b.Goals()
	for i := range goals {
		if goals[i].ID == id {
			goals = append(goals[:i], goals[i+1:]...)
			return store.Save(b.store, store.KeyGoals, goals)
		}
	}
	return ErrNotFound
}
