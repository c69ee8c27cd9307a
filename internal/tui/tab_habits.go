package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/hayati-app/hayati/internal/board"
	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/engine"
	"github.com/hayati-app/hayati/internal/tui/components"
	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHabitsTab(cw int) string {
	t := theme.Active
	statuses := a.board.HabitStatuses()
	inner := components.CardInnerWidth(cw)

	if len(statuses) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Render("No habits. Press [a] to add one.")
		return components.FocusCard("Habits", empty, cw)
	}

	cursor := a.cursors[tabHabits]
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	flameStyle := lipgloss.NewStyle().Foreground(t.Orange)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, hs := range statuses {
		if i > 0 {
			b.WriteString("\n")
		}

		marker := "  "
		style := nameStyle
		if i == cursor {
			marker = "❯ "
			style = selStyle
		}

		b.WriteString(marker + cli.Checkbox(hs.Status.CompletedToday) + " ")
		b.WriteString(style.Render(fmt.Sprintf("%-*s", inner-26, truncStr(hs.Habit.Name, inner-28))))

		if hs.Status.Streak > 0 {
			b.WriteString(flameStyle.Render(cli.FormatStreak(hs.Status)))
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d day streak", hs.Status.Streak)))
		} else {
			b.WriteString(mutedStyle.Render("no streak"))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Completions, last 7 days"))
	b.WriteString("\n")
	values, labels := weekCompletions(statuses, a.now)
	b.WriteString(components.BarChart(values, labels, t.Accent, inner, 4))

	return components.FocusCard("Habits", b.String(), cw)
}

// weekCompletions counts how many habits were completed on each of the
// last seven calendar days, oldest first.
func weekCompletions(statuses []board.HabitStatus, now time.Time) ([]float64, []string) {
	loc := now.Location()
	values := make([]float64, 7)
	labels := make([]string, 7)
	for i := 0; i < 7; i++ {
		day := engine.CalendarDay(now.AddDate(0, 0, i-6), loc)
		labels[i] = cli.FormatDayOfWeek(int(day.Weekday()))
		for _, hs := range statuses {
			for _, d := range hs.Habit.CompletedDates {
				if engine.CalendarDay(d, loc).Equal(day) {
					values[i]++
					break
				}
			}
		}
	}
	return values, labels
}
