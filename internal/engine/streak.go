package engine

import (
	"sort"
	"time"
)

// StreakStatus summarizes a habit's completion log as of a given day.
type StreakStatus struct {
	Streak         int
	CompletedToday bool
}

// CalendarDay truncates t to midnight of its calendar day in loc.
// Time of day is irrelevant for streak math; two timestamps on the same
// calendar day count as one completion.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Streak computes the consecutive-day streak ending today or yesterday.
// The log is treated as an unordered set; duplicates on the same
// calendar day never inflate the count. A most-recent completion older
// than yesterday means the streak has lapsed and scores 0.
func Streak(dates []time.Time, today time.Time) StreakStatus {
	loc := today.Location()
	td := CalendarDay(today, loc)

	days := uniqueDaysDesc(dates, loc)
	if len(days) == 0 {
		return StreakStatus{}
	}

	completedToday := days[0].Equal(td)
	if !completedToday && !days[0].Equal(td.AddDate(0, 0, -1)) {
		return StreakStatus{}
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return StreakStatus{Streak: streak, CompletedToday: completedToday}
}

// ToggleToday returns the log with today's completion flipped: all
// entries on today's calendar day removed if any exist, otherwise today
// appended. Applying it twice restores the original set of days.
func ToggleToday(dates []time.Time, today time.Time) []time.Time {
	loc := today.Location()
	td := CalendarDay(today, loc)

	kept := make([]time.Time, 0, len(dates))
	removed := false
	for _, d := range dates {
		if CalendarDay(d, loc).Equal(td) {
			removed = true
			continue
		}
		kept = append(kept, d)
	}
	if removed {
		return kept
	}
	return append(kept, today)
}

// FlameLevel is the display band for a streak.
type FlameLevel int

const (
	FlameOff       FlameLevel = iota // not completed today
	FlameBase                        // streak under a week
	FlameWeek                        // 7+
	FlameFortnight                   // 14+
	FlameMonth                       // 30+
)

// Flame bands a streak for display. Derived only, never persisted.
func Flame(streak int, completedToday bool) FlameLevel {
	if !completedToday {
		return FlameOff
	}
	switch {
	case streak >= 30:
		return FlameMonth
	case streak >= 14:
		return FlameFortnight
	case streak >= 7:
		return FlameWeek
	default:
		return FlameBase
	}
}

func uniqueDaysDesc(dates []time.Time, loc *time.Location) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := CalendarDay(d, loc)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}
