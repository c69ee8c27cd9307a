package tui

import (
	"strings"

	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/tui/components"
	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	goals := a.board.Goals()
	inner := components.CardInnerWidth(cw)

	if len(goals) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Render("No goals. Press [a] to add one.")
		return components.FocusCard("Goals", empty, cw)
	}

	cursor := a.cursors[tabGoals]
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim).Strikethrough(true)
	openStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	for i, g := range goals {
		if i > 0 {
			b.WriteString("\n")
		}
		marker := "  "
		style := openStyle
		if g.Completed {
			style = doneStyle
		}
		if i == cursor {
			marker = "❯ "
			style = selStyle
			if g.Completed {
				style = style.Strikethrough(true)
			}
		}
		b.WriteString(marker + cli.Checkbox(g.Completed) + " " +
			style.Render(truncStr(g.Text, inner-8)))
	}

	done := 0
	for _, g := range goals {
		if g.Completed {
			done++
		}
	}
	b.WriteString("\n\n")
	b.WriteString(components.ProgressBar(float64(done)/float64(len(goals)), inner-8))

	return components.FocusCard("Goals", b.String(), cw)
}
