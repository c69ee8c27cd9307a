package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hayati-app/hayati/internal/model"
)

// The dashboard's persisted keys. Schema bumps go through migrations
// here; keys are never renamed to signal a layout change.
var (
	KeyAcademicTasks = Key{Name: "academicTasks", Schema: 1}
	KeyPersonalTasks = Key{Name: "personalTasks", Schema: 1}
	KeyDeadlines     = Key{Name: "deadlines", Schema: 1}
	KeyHealthInfo    = Key{Name: "healthInfo", Schema: 1}
	KeyGoals         = Key{Name: "goals", Schema: 1}
	KeyNextMatch     = Key{Name: "nextMatch", Schema: 1}

	KeyHabits = Key{
		Name:       "habits",
		Schema:     2,
		Migrations: []Migration{migrateHabitsV1},
	}
	KeyWeeklyPlan = Key{
		Name:       "weeklyPlan",
		Schema:     2,
		Migrations: []Migration{migrateWeeklyPlanV1},
	}
)

// habitV1 stored a running counter instead of the completion log.
type habitV1 struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Streak        int    `json:"streak"`
	LastCompleted string `json:"lastCompleted"` // YYYY-MM-DD, may be empty
}

// migrateHabitsV1 rebuilds a completion log from the old counter: a
// streak of N ending on lastCompleted becomes N consecutive dates. The
// synthesized log reproduces the same streak the counter claimed.
func migrateHabitsV1(raw json.RawMessage) (json.RawMessage, error) {
	var old []habitV1
	if err := json.Unmarshal(raw, &old); err != nil {
		return nil, fmt.Errorf("decoding v1 habits: %w", err)
	}

	habits := make([]model.Habit, 0, len(old))
	for _, h := range old {
		nh := model.Habit{ID: h.ID, Name: h.Name}
		if h.Streak > 0 && h.LastCompleted != "" {
			last, err := time.ParseInLocation("2006-01-02", h.LastCompleted, time.Local)
			if err == nil {
				for i := h.Streak - 1; i >= 0; i-- {
					nh.CompletedDates = append(nh.CompletedDates, last.AddDate(0, 0, -i))
				}
			}
		}
		habits = append(habits, nh)
	}
	return json.Marshal(habits)
}

// migrateWeeklyPlanV1 converts the old day-name map into the
// weekday-indexed layout. Unknown day names are dropped.
func migrateWeeklyPlanV1(raw json.RawMessage) (json.RawMessage, error) {
	var old map[string][]model.PlannerTask
	if err := json.Unmarshal(raw, &old); err != nil {
		return nil, fmt.Errorf("decoding v1 weekly plan: %w", err)
	}

	var plan model.WeeklyPlan
	for name, tasks := range old {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if name == wd.String() {
				plan.Days[wd] = tasks
				break
			}
		}
	}
	return json.Marshal(plan)
}
