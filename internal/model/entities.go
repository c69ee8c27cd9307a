// Package model defines the persisted entity types for the hayati dashboard.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Task is a simple check-off item (academic or personal).
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// DeadlineKind categorizes a deadline.
type DeadlineKind string

const (
	KindExam       DeadlineKind = "Exam"
	KindAssignment DeadlineKind = "Assignment"
	KindProject    DeadlineKind = "Project"
	KindOther      DeadlineKind = "Other"
)

// Kinds lists all deadline kinds in display order.
var Kinds = []DeadlineKind{KindExam, KindAssignment, KindProject, KindOther}

// IsValid reports whether k is a known deadline kind.
func (k DeadlineKind) IsValid() bool {
	switch k {
	case KindExam, KindAssignment, KindProject, KindOther:
		return true
	default:
		return false
	}
}

// ParseDeadlineKind parses a case-insensitive kind name.
func ParseDeadlineKind(input string) (DeadlineKind, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	for _, k := range Kinds {
		if s == strings.ToLower(string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid deadline kind: %q", input)
}

// Deadline is a dated academic deadline. Immutable after creation
// except for deletion.
type Deadline struct {
	ID      string       `json:"id"`
	Subject string       `json:"subject"`
	Kind    DeadlineKind `json:"kind"`
	Due     time.Time    `json:"due"`
}

// Habit is a named daily habit with its completion log. The streak is
// never stored; it is derived from CompletedDates on every view.
type Habit struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	CompletedDates []time.Time `json:"completedDates"`
}

// WeightEntry is one point in the weight history.
type WeightEntry struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

// HealthInfo holds the health widget state. History is kept sorted
// ascending by date with at most one entry per calendar day.
type HealthInfo struct {
	HeightCm      float64       `json:"height"`
	InitialWeight float64       `json:"initialWeight"`
	TargetWeight  float64       `json:"targetWeight"`
	History       []WeightEntry `json:"history"`
}

// Goal is a long-term objective with a toggle/delete lifecycle.
type Goal struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// PlannerTask is one entry in a weekday's plan.
type PlannerTask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// WeeklyPlan holds one task list per weekday, indexed by time.Weekday
// (Sunday = 0).
type WeeklyPlan struct {
	Days [7][]PlannerTask `json:"days"`
}

// Match describes an upcoming match returned by the lookup collaborator.
type Match struct {
	ID          string    `json:"id"`
	Opponent    string    `json:"opponent"`
	Competition string    `json:"competition"`
	Kickoff     time.Time `json:"kickoff"`
}

// CalorieEstimate is the result of the AI calorie estimation flow.
type CalorieEstimate struct {
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
}
