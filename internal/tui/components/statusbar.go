package components

import (
	"time"

	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the
// left, a flash message in the middle, the live clock on the right.
func RenderStatusBar(width int, now time.Time, hints, flash string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + hints + "  [?]help  [q]uit"
	right := now.Format("Mon 02 Jan 15:04:05") + " "

	middle := ""
	if flash != "" {
		middle = lipgloss.NewStyle().Foreground(t.Orange).Render(flash)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	lpad := padding / 2
	rpad := padding - lpad

	bar := left + spaces(lpad) + middle + spaces(rpad) + right
	return style.Render(bar)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
