package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/engine"
	"github.com/hayati-app/hayati/internal/tui/components"
	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	sum := a.board.Overview()

	// Top metric row
	nextDeadline := "—"
	nextCaption := ""
	if sum.NextDeadline != nil {
		nextDeadline = cli.FormatCountdown(engine.Remaining(sum.NextDeadline.Due, a.now))
		nextCaption = truncStr(sum.NextDeadline.Subject, 24)
	}

	doneHabits := 0
	for _, hs := range sum.Habits {
		if hs.Status.CompletedToday {
			doneHabits++
		}
	}

	weight := "—"
	weightCaption := ""
	if sum.CurrentWeight > 0 {
		weight = cli.FormatWeight(sum.CurrentWeight)
		if sum.Health.TargetWeight > 0 {
			weightCaption = cli.FormatPercent(sum.Progress) + " to goal"
		}
	}

	widths := components.LayoutRow(cw, 4)
	metricRow := components.CardRow([]string{
		components.MetricCard("Next deadline", nextDeadline, nextCaption, widths[0]),
		components.MetricCard("Open tasks", strconv.Itoa(sum.OpenTasks),
			fmt.Sprintf("%d done", sum.DoneTasks), widths[1]),
		components.MetricCard("Habits today", fmt.Sprintf("%d/%d", doneHabits, len(sum.Habits)), "", widths[2]),
		components.MetricCard("Weight", weight, weightCaption, widths[3]),
	})

	// Second row: today's plan and upcoming deadlines
	half := components.LayoutRow(cw, 2)
	inner := components.CardInnerWidth(half[0])
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var plan strings.Builder
	if len(sum.TodayPlan) == 0 {
		plan.WriteString(dimStyle.Render("nothing planned"))
	}
	for i, pt := range sum.TodayPlan {
		if i > 0 {
			plan.WriteString("\n")
		}
		plan.WriteString("• " + truncStr(pt.Text, inner-2))
	}

	var soon strings.Builder
	if len(sum.DeadlinesSoon) == 0 {
		soon.WriteString(dimStyle.Render("nothing due this week"))
	}
	for i, d := range sum.DeadlinesSoon {
		if i > 0 {
			soon.WriteString("\n")
		}
		subj := truncStr(d.Subject, inner-12)
		soon.WriteString(fmt.Sprintf("%-*s ", inner-10, subj))
		soon.WriteString(lipgloss.NewStyle().
			Foreground(urgencyColor(d.Due, a.now)).
			Render(cli.FormatDueIn(d.Due, a.now)))
	}

	secondRow := components.CardRow([]string{
		components.ContentCard("Today · "+sum.TodayPlanDay.String(), plan.String(), half[0]),
		components.ContentCard("Due soon", soon.String(), half[1]),
	})

	// Third row: habit flames and goals
	var habits strings.Builder
	for i, hs := range sum.Habits {
		if i > 0 {
			habits.WriteString("\n")
		}
		habits.WriteString(cli.Checkbox(hs.Status.CompletedToday) + " " +
			truncStr(hs.Habit.Name, inner-14))
		if hs.Status.Streak > 0 {
			habits.WriteString("  " + lipgloss.NewStyle().Foreground(t.Orange).Render(cli.FormatStreak(hs.Status)))
		}
	}

	var goals strings.Builder
	if len(sum.Goals) == 0 {
		goals.WriteString(dimStyle.Render("no goals yet"))
	}
	for i, g := range sum.Goals {
		if i > 0 {
			goals.WriteString("\n")
		}
		goals.WriteString(cli.Checkbox(g.Completed) + " " + truncStr(g.Text, inner-4))
	}

	thirdRow := components.CardRow([]string{
		components.ContentCard("Habits", habits.String(), half[0]),
		components.ContentCard("Goals", goals.String(), half[1]),
	})

	return metricRow + "\n" + secondRow + "\n" + thirdRow
}

// urgencyColor maps a deadline's urgency band to a theme color.
func urgencyColor(due, now time.Time) lipgloss.Color {
	t := theme.Active
	switch engine.UrgencyOf(due, now) {
	case engine.UrgencyPast:
		return t.TextDim
	case engine.UrgencyCritical:
		return t.Red
	case engine.UrgencySoon:
		return t.Orange
	default:
		return t.Green
	}
}
