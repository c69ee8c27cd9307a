package tui

import (
	"errors"
	"strings"

	"github.com/hayati-app/hayati/internal/ai"
	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/engine"
	"github.com/hayati-app/hayati/internal/tui/components"
	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderMatchTab(cw int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var b strings.Builder

	switch {
	case a.aiCli == nil:
		b.WriteString(dimStyle.Render("No API key configured.\nRun `hayati setup` to enable the match widget."))

	case a.matchFetching:
		b.WriteString(labelStyle.Render("Looking up the next " + a.cfg.Match.Team + " match..."))

	case a.matchErr != nil:
		switch {
		case errors.Is(a.matchErr, ai.ErrUnauthorized):
			b.WriteString(warnStyle.Render("API key rejected. Check your Gemini key."))
		case errors.Is(a.matchErr, ai.ErrRateLimited):
			b.WriteString(warnStyle.Render("Rate limited. Try again in a bit."))
		default:
			b.WriteString(warnStyle.Render("Lookup failed: " + a.matchErr.Error()))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Press [r] to retry."))

	case a.match == nil:
		b.WriteString(titleStyle.Render(a.cfg.Match.Team))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("No upcoming match scheduled."))
		if !a.matchFetched.IsZero() {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("Checked " + cli.FormatDateTime(a.matchFetched)))
		}

	default:
		m := a.match
		b.WriteString(titleStyle.Render(a.cfg.Match.Team + " vs " + m.Opponent))
		b.WriteString("\n")
		if m.Competition != "" {
			b.WriteString(labelStyle.Render(m.Competition))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Kickoff  "))
		b.WriteString(cli.FormatDateTime(m.Kickoff))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("In       "))
		b.WriteString(accentStyle.Render(cli.FormatCountdown(engine.Remaining(m.Kickoff, a.now))))
		if !a.matchFetched.IsZero() {
			b.WriteString("\n\n")
			b.WriteString(dimStyle.Render("Fetched " + cli.FormatDateTime(a.matchFetched)))
		}
	}

	return components.FocusCard("Next match", b.String(), min(cw, 60))
}
