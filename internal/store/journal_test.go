package store

import (
	"path/filepath"
	"testing"
	"time"
)

func testJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := OpenJournal(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("OpenJournal: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournalAppendAndRecent(t *testing.T) {
	j := testJournal(t)

	now := time.Now().UTC()
	meals := []Meal{
		{LoggedAt: now.Add(-2 * time.Hour), Description: "oatmeal", Calories: 320},
		{LoggedAt: now.Add(-time.Hour), Description: "chicken wrap", Calories: 540, Source: "photo"},
		{LoggedAt: now, Description: "apple", Calories: 90},
	}
	for _, m := range meals {
		if err := j.Append(m); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := j.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d meals, want 2", len(got))
	}
	if got[0].Description != "apple" {
		t.Fatalf("newest first: got %q", got[0].Description)
	}
	if got[0].ID == "" {
		t.Fatal("Append did not assign an ID")
	}
	if got[0].Source != "manual" {
		t.Fatalf("source = %q, want manual default", got[0].Source)
	}
	if got[1].Source != "photo" {
		t.Fatalf("source = %q, want photo", got[1].Source)
	}
}

func TestJournalDayTotals(t *testing.T) {
	j := testJournal(t)

	today := time.Now().UTC()
	yesterday := today.AddDate(0, 0, -1)
	for _, m := range []Meal{
		{LoggedAt: yesterday, Description: "pasta", Calories: 700},
		{LoggedAt: yesterday, Description: "salad", Calories: 150},
		{LoggedAt: today, Description: "toast", Calories: 250},
	} {
		if err := j.Append(m); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	totals, err := j.DayTotals(7)
	if err != nil {
		t.Fatalf("DayTotals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("got %d days, want 2: %v", len(totals), totals)
	}
	if totals[0].Calories != 850 || totals[0].Meals != 2 {
		t.Fatalf("yesterday = %+v, want 850 kcal over 2 meals", totals[0])
	}
	if totals[1].Calories != 250 {
		t.Fatalf("today = %+v, want 250 kcal", totals[1])
	}
}

func TestJournalDeleteNewestViaRecent(t *testing.T) {
	j := testJournal(t)

	now := time.Now().UTC()
	for _, m := range []Meal{
		{LoggedAt: now.Add(-time.Hour), Description: "soup", Calories: 200},
		{LoggedAt: now, Description: "burger", Calories: 800},
	} {
		if err := j.Append(m); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	meals, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if err := j.DeleteMeal(meals[0].ID); err != nil {
		t.Fatalf("DeleteMeal: %v", err)
	}

	left, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(left) != 1 || left[0].Description != "soup" {
		t.Fatalf("deleted the wrong meal, left %v", left)
	}
}

func TestJournalDeleteMeal(t *testing.T) {
	j := testJournal(t)

	if err := j.Append(Meal{ID: "m1", LoggedAt: time.Now(), Description: "snack", Calories: 120}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := j.DeleteMeal("m1"); err != nil {
		t.Fatalf("DeleteMeal: %v", err)
	}
	got, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("meal survived delete: %v", got)
	}
}
