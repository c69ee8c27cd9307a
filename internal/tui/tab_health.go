package tui

import (
	"fmt"
	"strings"

	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/engine"
	"github.com/hayati-app/hayati/internal/tui/components"
	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHealthTab(cw int) string {
	t := theme.Active
	info := a.board.Health()

	if info.HeightCm == 0 && info.InitialWeight == 0 && len(info.History) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No health profile yet. Press [e] to set height and weights.")
		return components.FocusCard("Health", empty, cw)
	}

	current := engine.CurrentWeight(info)
	bmi, category := engine.BMI(info.HeightCm, current)
	progress := engine.Progress(info.InitialWeight, info.TargetWeight, current)

	bmiValue := string(category)
	if category != engine.BMIUnknown {
		bmiValue = fmt.Sprintf("%.1f", bmi)
	}

	target := "—"
	if info.TargetWeight > 0 {
		target = cli.FormatWeight(info.TargetWeight)
	}

	widths := components.LayoutRow(cw, 4)
	metricRow := components.CardRow([]string{
		components.MetricCard("Current", cli.FormatWeight(current), "", widths[0]),
		components.MetricCard("Target", target, "", widths[1]),
		components.MetricCard("BMI", bmiValue, string(category), widths[2]),
		components.MetricCard("Progress", cli.FormatPercent(progress), "", widths[3]),
	})

	inner := components.CardInnerWidth(cw)

	var body strings.Builder
	if info.TargetWeight > 0 {
		barW := inner - 20
		if barW > 50 {
			barW = 50
		}
		if barW < 10 {
			barW = 10
		}
		body.WriteString(components.GoalBar("to goal", progress/100, 8, barW))
		body.WriteString("\n\n")
	}

	weights, dates := engine.WeightSeries(info)
	if len(weights) >= 2 {
		series := weights
		if len(series) > inner-4 {
			series = series[len(series)-(inner-4):]
		}
		body.WriteString(components.TrendLine(series, t.Accent))
		body.WriteString("\n\n")
	}

	// Recent entries, newest first
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	shown := 0
	for i := len(dates) - 1; i >= 0 && shown < 7; i-- {
		if shown > 0 {
			body.WriteString("\n")
		}
		body.WriteString(mutedStyle.Render(cli.FormatDate(dates[i])) + "  " + cli.FormatWeight(weights[i]))
		shown++
	}
	if len(dates) == 0 {
		body.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("No weigh-ins yet. Press [w]."))
	}

	return metricRow + "\n" + components.FocusCard("Weight history", body.String(), cw)
}
