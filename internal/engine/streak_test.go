package engine

import (
	"testing"
	"time"
)

var streakNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return streakNow.AddDate(0, 0, -n)
}

func TestStreakEmptyLog(t *testing.T) {
	st := Streak(nil, streakNow)
	if st.Streak != 0 || st.CompletedToday {
		t.Fatalf("empty log: got %+v, want streak 0, not completed", st)
	}
}

func TestStreakTodayOnly(t *testing.T) {
	st := Streak([]time.Time{streakNow}, streakNow)
	if st.Streak != 1 || !st.CompletedToday {
		t.Fatalf("got %+v, want streak 1 completed today", st)
	}
}

func TestStreakConsecutiveRun(t *testing.T) {
	st := Streak([]time.Time{streakNow, daysAgo(1), daysAgo(2)}, streakNow)
	if st.Streak != 3 || !st.CompletedToday {
		t.Fatalf("got %+v, want streak 3 completed today", st)
	}
}

func TestStreakEndingYesterdayKeepsCredit(t *testing.T) {
	// Gap after yesterday: the run is just yesterday, but it has not
	// lapsed yet.
	st := Streak([]time.Time{daysAgo(1), daysAgo(3)}, streakNow)
	if st.Streak != 1 {
		t.Fatalf("streak = %d, want 1", st.Streak)
	}
	if st.CompletedToday {
		t.Fatal("CompletedToday = true for a log ending yesterday")
	}
}

func TestStreakLapsed(t *testing.T) {
	st := Streak([]time.Time{daysAgo(2), daysAgo(3), daysAgo(4)}, streakNow)
	if st.Streak != 0 {
		t.Fatalf("lapsed log: streak = %d, want 0 (no credit for old activity)", st.Streak)
	}
}

func TestStreakSameDayDuplicates(t *testing.T) {
	morning := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)

	dup := Streak([]time.Time{morning, evening}, streakNow)
	single := Streak([]time.Time{morning}, streakNow)
	if dup != single {
		t.Fatalf("duplicates inflated status: %+v vs %+v", dup, single)
	}
}

func TestToggleTodayAddsAndRemoves(t *testing.T) {
	log := []time.Time{daysAgo(1)}

	once := ToggleToday(log, streakNow)
	if st := Streak(once, streakNow); st.Streak != 2 || !st.CompletedToday {
		t.Fatalf("after toggle on: %+v, want streak 2 completed today", st)
	}

	twice := ToggleToday(once, streakNow)
	if len(twice) != 1 || !twice[0].Equal(daysAgo(1)) {
		t.Fatalf("toggle twice did not restore the log: %v", twice)
	}

	thrice := ToggleToday(twice, streakNow)
	if st := Streak(thrice, streakNow); st.Streak != 2 || !st.CompletedToday {
		t.Fatalf("third toggle should behave like the first: %+v", st)
	}
}

func TestToggleTodayRemovesAllSameDayEntries(t *testing.T) {
	morning := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)

	out := ToggleToday([]time.Time{morning, evening, daysAgo(1)}, streakNow)
	if len(out) != 1 || !out[0].Equal(daysAgo(1)) {
		t.Fatalf("toggle off left %v, want only yesterday's entry", out)
	}
}

func TestFlameBands(t *testing.T) {
	tests := []struct {
		streak    int
		completed bool
		want      FlameLevel
	}{
		{50, false, FlameOff},
		{0, true, FlameBase},
		{6, true, FlameBase},
		{7, true, FlameWeek},
		{14, true, FlameFortnight},
		{29, true, FlameFortnight},
		{30, true, FlameMonth},
	}
	for _, tt := range tests {
		if got := Flame(tt.streak, tt.completed); got != tt.want {
			t.Fatalf("Flame(%d, %v) = %d, want %d", tt.streak, tt.completed, got, tt.want)
		}
	}
}
