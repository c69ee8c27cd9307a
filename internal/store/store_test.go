package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hayati-app/hayati/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return Open(t.TempDir())
}

func TestLoadMissingKeyReturnsDefault(t *testing.T) {
	s := testStore(t)

	def := []model.Task{{ID: "seed", Text: "seed"}}
	got := Load(s, KeyAcademicTasks, def)
	if len(got) != 1 || got[0].ID != "seed" {
		t.Fatalf("got %v, want the default seed", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)

	tasks := []model.Task{
		{ID: "a", Text: "finish lab report", Completed: true},
		{ID: "b", Text: "revise chapter 4"},
	}
	if err := Save(s, KeyAcademicTasks, tasks); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Load(s, KeyAcademicTasks, []model.Task(nil))
	if len(got) != 2 || got[0].Text != "finish lab report" || !got[0].Completed {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestLoadCorruptBlobReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)

	if err := os.WriteFile(filepath.Join(dir, "goals"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	def := []model.Goal{{ID: "g", Text: "default"}}
	got := Load(s, KeyGoals, def)
	if len(got) != 1 || got[0].Text != "default" {
		t.Fatalf("corrupt blob did not fall back to default: %v", got)
	}
}

func TestLoadWrongShapeReturnsDefault(t *testing.T) {
	s := testStore(t)
	if err := Save(s, KeyGoals, "just a string"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Load(s, KeyGoals, []model.Goal{})
	if len(got) != 0 {
		t.Fatalf("got %v, want the empty default", got)
	}
}

func TestDisabledStore(t *testing.T) {
	s := Disabled()
	if s.OK() {
		t.Fatal("disabled store reports OK")
	}
	if err := Save(s, KeyGoals, []model.Goal{{ID: "g"}}); err != nil {
		t.Fatalf("Save on disabled store: %v", err)
	}
	got := Load(s, KeyGoals, []model.Goal{{ID: "def"}})
	if len(got) != 1 || got[0].ID != "def" {
		t.Fatalf("disabled store did not yield default: %v", got)
	}
}

func TestDeleteMissingKeyIsNoError(t *testing.T) {
	s := testStore(t)
	if err := s.Delete(KeyGoals); err != nil {
		t.Fatalf("Delete missing key: %v", err)
	}
}

func writeRaw(t *testing.T, dir, name string, v any) {
	t.Helper()
	blob, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), blob, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestHabitsMigrationSynthesizesLog(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)

	writeRaw(t, dir, "habits", map[string]any{
		"schema": 1,
		"data": []habitV1{
			{ID: "h1", Name: "Gym", Streak: 3, LastCompleted: "2025-03-09"},
			{ID: "h2", Name: "Read", Streak: 0, LastCompleted: ""},
		},
	})

	habits := Load(s, KeyHabits, []model.Habit(nil))
	if len(habits) != 2 {
		t.Fatalf("got %d habits, want 2", len(habits))
	}
	if len(habits[0].CompletedDates) != 3 {
		t.Fatalf("synthesized %d dates, want 3", len(habits[0].CompletedDates))
	}
	last := habits[0].CompletedDates[2]
	if last.Year() != 2025 || last.Month() != time.March || last.Day() != 9 {
		t.Fatalf("last synthesized date = %v, want 2025-03-09", last)
	}
	for i := 1; i < 3; i++ {
		prev := habits[0].CompletedDates[i-1]
		cur := habits[0].CompletedDates[i]
		if !cur.Equal(prev.AddDate(0, 0, 1)) {
			t.Fatalf("synthesized dates not consecutive: %v", habits[0].CompletedDates)
		}
	}
	if len(habits[1].CompletedDates) != 0 {
		t.Fatalf("zero streak produced dates: %v", habits[1].CompletedDates)
	}
}

func TestBareBlobDecodesAsSchemaOne(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)

	// A blob written before envelopes existed.
	writeRaw(t, dir, "habits", []habitV1{
		{ID: "h1", Name: "Meditate", Streak: 1, LastCompleted: "2025-03-09"},
	})

	habits := Load(s, KeyHabits, []model.Habit(nil))
	if len(habits) != 1 || len(habits[0].CompletedDates) != 1 {
		t.Fatalf("bare blob did not migrate: %v", habits)
	}
}

func TestWeeklyPlanMigrationKeysByWeekday(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)

	writeRaw(t, dir, "weeklyPlan", map[string]any{
		"schema": 1,
		"data": map[string][]model.PlannerTask{
			"Monday":   {{ID: "p1", Text: "physics problem set"}},
			"Saturday": {{ID: "p2", Text: "long run"}},
			"Funday":   {{ID: "p3", Text: "dropped"}},
		},
	})

	plan := Load(s, KeyWeeklyPlan, model.WeeklyPlan{})
	if len(plan.Days[time.Monday]) != 1 || plan.Days[time.Monday][0].Text != "physics problem set" {
		t.Fatalf("Monday = %v", plan.Days[time.Monday])
	}
	if len(plan.Days[time.Saturday]) != 1 {
		t.Fatalf("Saturday = %v", plan.Days[time.Saturday])
	}
	total := 0
	for _, d := range plan.Days {
		total += len(d)
	}
	if total != 2 {
		t.Fatalf("unknown day name survived migration: %+v", plan)
	}
}

func TestNewerSchemaFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)

	writeRaw(t, dir, "habits", map[string]any{
		"schema": 99,
		"data":   []model.Habit{{ID: "future"}},
	})

	habits := Load(s, KeyHabits, []model.Habit{{ID: "def"}})
	if len(habits) != 1 || habits[0].ID != "def" {
		t.Fatalf("future schema did not fall back: %v", habits)
	}
}
