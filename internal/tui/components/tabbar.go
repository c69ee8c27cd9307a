package components

import (
	"strings"

	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is a single entry in the tab bar. Digit is the 1-based keyboard
// shortcut shown next to the name.
type Tab struct {
	Name  string
	Digit rune
}

// Tabs defines the dashboard tabs in display order.
var Tabs = []Tab{
	{Name: "Overview", Digit: '1'},
	{Name: "Deadlines", Digit: '2'},
	{Name: "Tasks", Digit: '3'},
	{Name: "Habits", Digit: '4'},
	{Name: "Planner", Digit: '5'},
	{Name: "Health", Digit: '6'},
	{Name: "Goals", Digit: '7'},
	{Name: "Match", Digit: '8'},
	{Name: "Settings", Digit: '9'},
}

// tabsPerRow splits the bar into two rows.
const tabsPerRow = 5

// renderTab renders one tab with its digit shortcut.
func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		style := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		return style.Render(tab.Name)
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	return dimStyle.Render("[") + keyStyle.Render(string(tab.Digit)) + dimStyle.Render("]") +
		nameStyle.Render(tab.Name)
}

// TabVisualWidth returns the rendered width of one tab, for mouse
// hitboxes.
func TabVisualWidth(tab Tab, active bool) int {
	if active {
		return len(tab.Name)
	}
	return len(tab.Name) + 3 // [d] prefix
}

// RenderTabBar renders the two-row tab bar.
func RenderTabBar(activeIdx int, width int) string {
	var parts []string
	for i, tab := range Tabs {
		parts = append(parts, renderTab(tab, i == activeIdx))
	}

	row1 := strings.Join(parts[:tabsPerRow], "  ")
	row2 := strings.Join(parts[tabsPerRow:], "  ")
	return " " + row1 + "\n " + row2
}

// TabAtX returns the tab index under an (x, y) click in the tab bar,
// or -1. Hitboxes mirror RenderTabBar's layout exactly.
func TabAtX(x, y, activeIdx int) int {
	start, end := 0, tabsPerRow
	if y == 1 {
		start, end = tabsPerRow, len(Tabs)
	}
	if y > 1 {
		return -1
	}

	pos := 1 // leading space
	for i := start; i < end; i++ {
		tabW := TabVisualWidth(Tabs[i], i == activeIdx)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}
