package tui

import (
	"strings"
	"time"

	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/tui/components"
	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPlannerTab(cw int) string {
	t := theme.Active
	plan := a.board.Plan()
	inner := components.CardInnerWidth(cw)

	// Weekday strip with the selected day highlighted
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	todayStyle := lipgloss.NewStyle().Foreground(t.Green)
	dayStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var strip []string
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := cli.FormatDayOfWeek(int(wd))
		switch {
		case wd == a.planDay:
			strip = append(strip, activeStyle.Render("["+name+"]"))
		case wd == a.now.Weekday():
			strip = append(strip, todayStyle.Render(" "+name+" "))
		default:
			strip = append(strip, dayStyle.Render(" "+name+" "))
		}
	}

	tasks := plan.Days[a.planDay]
	cursor := a.cursors[tabPlanner]

	var b strings.Builder
	b.WriteString(strings.Join(strip, " "))
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
			Render("Nothing planned for " + a.planDay.String() + ". Press [a] to add."))
	}
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	for i, task := range tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		marker, style := "  ", textStyle
		if i == cursor {
			marker, style = "❯ ", selStyle
		}
		b.WriteString(marker + "• " + style.Render(truncStr(task.Text, inner-6)))
	}

	return components.FocusCard("Weekly planner", b.String(), cw)
}
