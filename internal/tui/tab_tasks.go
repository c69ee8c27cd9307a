package tui

import (
	"strings"

	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/tui/components"
	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTasksTab(cw int) string {
	t := theme.Active
	tasks := a.board.Tasks(a.taskScope)
	inner := components.CardInnerWidth(cw)

	title := "Tasks · " + a.taskScope.String()

	if len(tasks) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No " + a.taskScope.String() + " tasks. [a] adds, [p] switches scope.")
		return components.FocusCard(title, empty, cw)
	}

	cursor := a.cursors[tabTasks]
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim).Strikethrough(true)
	openStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	for i, task := range tasks {
		if i > 0 {
			b.WriteString("\n")
		}

		marker := "  "
		style := openStyle
		if task.Completed {
			style = doneStyle
		}
		if i == cursor {
			marker = "❯ "
			style = selStyle
			if task.Completed {
				style = style.Strikethrough(true)
			}
		}

		b.WriteString(marker + cli.Checkbox(task.Completed) + " " +
			style.Render(truncStr(task.Text, inner-8)))
	}

	return components.FocusCard(title, b.String(), cw)
}
