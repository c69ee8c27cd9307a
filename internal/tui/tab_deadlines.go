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

func (a App) renderDeadlinesTab(cw int) string {
	t := theme.Active
	ds := a.board.Deadlines()
	inner := components.CardInnerWidth(cw)

	if len(ds) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Render("No deadlines. Press [a] to add one.")
		return components.FocusCard("Deadlines", empty, cw)
	}

	cursor := a.cursors[tabDeadlines]
	kindStyle := lipgloss.NewStyle().Foreground(t.Blue)
	subjStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteString("\n")
		}

		marker := "  "
		style := subjStyle
		if i == cursor {
			marker = "❯ "
			style = selStyle
		}

		countdown := cli.FormatCountdown(engine.Remaining(d.Due, a.now))
		cdStyle := lipgloss.NewStyle().Foreground(urgencyColor(d.Due, a.now)).Bold(i == cursor)

		subj := truncStr(d.Subject, inner-46)
		b.WriteString(marker)
		b.WriteString(kindStyle.Render(fmt.Sprintf("%-10s", d.Kind)))
		b.WriteString(style.Render(fmt.Sprintf("%-*s", inner-44, subj)))
		b.WriteString(dateStyle.Render(cli.FormatDateTime(d.Due)))
		b.WriteString("  ")
		b.WriteString(cdStyle.Render(countdown))
	}

	return components.FocusCard("Deadlines", b.String(), cw)
}
