// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hayati-app/hayati/internal/engine"
)

// FormatCountdown formats a countdown as "3d 04:12:09", or "passed"
// once the target is behind us.
func FormatCountdown(c engine.Countdown) string {
	if c.IsPast {
		return "passed"
	}
	if c.Days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", c.Days, c.Hours, c.Minutes, c.Seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// FormatDueIn gives a compact "in 3d 4h" description of a target.
func FormatDueIn(target, now time.Time) string {
	c := engine.Remaining(target, now)
	if c.IsPast {
		return "passed"
	}
	switch {
	case c.Days > 0:
		return fmt.Sprintf("in %dd %dh", c.Days, c.Hours)
	case c.Hours > 0:
		return fmt.Sprintf("in %dh %dm", c.Hours, c.Minutes)
	default:
		return fmt.Sprintf("in %dm", c.Minutes)
	}
}

// FormatWeight formats a weight in kilograms.
func FormatWeight(kg float64) string {
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatPercent formats a 0-100 percentage without decimals.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// FormatDate formats a date for list output.
func FormatDate(t time.Time) string {
	return t.Format("Mon, 02 Jan 2006")
}

// FormatDateTime formats a timestamp for list output.
func FormatDateTime(t time.Time) string {
	return t.Format("Mon, 02 Jan 15:04")
}

// FormatStreak renders a streak count with its flame band.
func FormatStreak(st engine.StreakStatus) string {
	flame := FlameGlyph(engine.Flame(st.Streak, st.CompletedToday))
	if flame == "" {
		return strconv.Itoa(st.Streak)
	}
	return fmt.Sprintf("%s %d", flame, st.Streak)
}

// FlameGlyph maps a flame band to its display glyph.
func FlameGlyph(level engine.FlameLevel) string {
	switch level {
	case engine.FlameOff:
		return ""
	case engine.FlameWeek:
		return "🔥🔥"
	case engine.FlameFortnight:
		return "🔥🔥🔥"
	case engine.FlameMonth:
		return "🔥🔥🔥🔥"
	default:
		return "🔥"
	}
}

// Checkbox renders a completion marker.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
