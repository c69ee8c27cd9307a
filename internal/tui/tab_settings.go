package tui

import (
	"strconv"
	"strings"

	"github.com/hayati-app/hayati/internal/config"
	"github.com/hayati-app/hayati/internal/tui/components"
	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	apiKey := "not set"
	if config.GetAPIKey(a.cfg) != "" {
		apiKey = "configured"
	}

	rows := []struct{ label, value string }{
		{"Theme", a.cfg.Appearance.Theme},
		{"Team", a.cfg.Match.Team},
		{"Match cache", strconv.Itoa(a.cfg.Match.CacheHours) + "h"},
		{"Gemini key", apiKey},
		{"Data dir", config.DataDir(a.cfg)},
		{"Config", config.ConfigPath()},
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(pad(r.label, 14)))
		b.WriteString(valueStyle.Render(r.value))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("[t] cycles the theme. Edit the config file for the rest,\nor run `hayati setup` to redo first-run setup."))

	return components.FocusCard("Settings", b.String(), min(cw, 80))
}
