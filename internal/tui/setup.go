package tui

import (
	"strings"

	"github.com/hayati-app/hayati/internal/ai"
	"github.com/hayati-app/hayati/internal/config"
	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues backs the first-run setup form.
type setupValues struct {
	apiKey string
	team   string
	theme  string
}

func newSetupForm(vals *setupValues) *huh.Form {
	vals.team = "Al-Hilal"
	vals.theme = theme.Active.Name

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to hayati!").
				Description("A couple of questions and your dashboard is ready."),
			huh.NewInput().
				Title("Gemini API key").
				Description("Powers calorie estimation and the match widget. Leave blank to skip.").
				EchoMode(huh.EchoModePassword).
				Value(&vals.apiKey),
			huh.NewInput().
				Title("Football team to follow").
				Value(&vals.team),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

// saveSetupConfig persists the setup answers. Best-effort; the
// dashboard runs either way.
func (a *App) saveSetupConfig() error {
	cfg, _ := config.Load()

	if key := strings.TrimSpace(a.setupVals.apiKey); key != "" {
		cfg.AI.APIKey = key
	}
	if team := strings.TrimSpace(a.setupVals.team); team != "" {
		cfg.Match.Team = team
	}
	cfg.Appearance.Theme = a.setupVals.theme
	theme.SetActive(cfg.Appearance.Theme)

	a.cfg = cfg
	// A key entered here must enable the AI widgets in this session,
	// not the next one.
	a.aiCli = ai.NewClient(config.GetAPIKey(cfg), cfg.AI.Model)
	return config.Save(cfg)
}
