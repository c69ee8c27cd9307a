package engine

import (
	"testing"
	"time"
)

func TestRemainingPastTargetIsTerminalZero(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	for _, target := range []time.Time{
		now.Add(-time.Second),
		now.Add(-48 * time.Hour),
		now, // exactly now counts as past, not "0s remaining and counting"
	} {
		c := Remaining(target, now)
		if !c.IsPast {
			t.Fatalf("Remaining(%v) IsPast = false, want true", target)
		}
		if c.Days != 0 || c.Hours != 0 || c.Minutes != 0 || c.Seconds != 0 {
			t.Fatalf("Remaining(%v) = %+v, want all zeros", target, c)
		}
	}
}

func TestRemainingDecomposition(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   Countdown
	}{
		{"one second", now.Add(time.Second), Countdown{Seconds: 1}},
		{"just under a day", now.Add(24*time.Hour - time.Second), Countdown{Hours: 23, Minutes: 59, Seconds: 59}},
		{"exactly a day", now.Add(24 * time.Hour), Countdown{Days: 1}},
		{"mixed", now.Add(3*24*time.Hour + 4*time.Hour + 12*time.Minute + 9*time.Second), Countdown{Days: 3, Hours: 4, Minutes: 12, Seconds: 9}},
		{"far future", now.AddDate(1, 0, 0), Countdown{Days: 365}},
	}

	for _, tt := range tests {
		got := Remaining(tt.target, now)
		if got != tt.want {
			t.Fatalf("%s: Remaining = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestRemainingFieldRangesAndReconstruction(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	for secs := int64(1); secs < 400000; secs += 7919 {
		target := now.Add(time.Duration(secs) * time.Second)
		c := Remaining(target, now)

		if c.Hours < 0 || c.Hours > 23 {
			t.Fatalf("Hours = %d out of [0,23]", c.Hours)
		}
		if c.Minutes < 0 || c.Minutes > 59 {
			t.Fatalf("Minutes = %d out of [0,59]", c.Minutes)
		}
		if c.Seconds < 0 || c.Seconds > 59 {
			t.Fatalf("Seconds = %d out of [0,59]", c.Seconds)
		}

		rebuilt := int64(c.Days)*86400 + int64(c.Hours)*3600 + int64(c.Minutes)*60 + int64(c.Seconds)
		if rebuilt != secs {
			t.Fatalf("reconstructed %d seconds, want %d", rebuilt, secs)
		}
	}
}

func TestUrgencyOf(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		target time.Time
		want   Urgency
	}{
		{now.Add(-time.Hour), UrgencyPast},
		{now, UrgencyPast},
		{now.Add(time.Hour), UrgencyCritical},
		{now.Add(3*24*time.Hour - time.Minute), UrgencyCritical},
		{now.Add(5 * 24 * time.Hour), UrgencySoon},
		{now.Add(10 * 24 * time.Hour), UrgencyComfortable},
	}
	for _, tt := range tests {
		if got := UrgencyOf(tt.target, now); got != tt.want {
			t.Fatalf("UrgencyOf(%v) = %d, want %d", tt.target, got, tt.want)
		}
	}
}
