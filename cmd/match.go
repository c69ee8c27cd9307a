package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/hayati-app/hayati/internal/ai"
	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/config"
	"github.com/hayati-app/hayati/internal/engine"
	"github.com/hayati-app/hayati/internal/model"

	"github.com/spf13/cobra"
)

var flagMatchRefresh bool

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Show the next match for your team",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&flagMatchRefresh, "refresh", false, "Ignore the cache and look it up again")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)
	team := cfg.Match.Team

	ttl := time.Duration(cfg.Match.CacheHours) * time.Hour
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}

	var m *model.Match
	fresh := false
	if !flagMatchRefresh {
		if mc, ok := b.CachedMatch(ttl); ok {
			m = mc.Match
			fresh = true
		}
	}

	if !fresh {
		client := ai.NewClient(config.GetAPIKey(cfg), cfg.AI.Model)
		if client == nil {
			return fmt.Errorf("no API key configured; run `hayati setup` or set GEMINI_API_KEY")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()

		var err error
		m, err = client.NextMatch(ctx, team, time.Now())
		if err != nil {
			return fmt.Errorf("match lookup: %w", err)
		}
		_ = b.SaveMatch(m)
	}

	if m == nil {
		fmt.Printf("  No upcoming match found for %s.\n", team)
		return nil
	}

	fmt.Printf("  %s vs %s\n", team, m.Opponent)
	if m.Competition != "" {
		fmt.Printf("  %s\n", m.Competition)
	}
	fmt.Printf("  Kickoff: %s (%s)\n",
		cli.FormatDateTime(m.Kickoff),
		cli.FormatCountdown(engine.Remaining(m.Kickoff, time.Now())))
	return nil
}
