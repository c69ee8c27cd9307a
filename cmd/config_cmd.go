// Package cmd implements the hayati CLI commands.
package cmd

import (
	"fmt"

	"github.com/hayati-app/hayati/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", dataDir(cfg))
	fmt.Println()

	fmt.Println("  [AI]")
	apiKey := config.GetAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key: not configured")
	}
	fmt.Printf("    Model:   %s\n", modelOrDefault(cfg))
	fmt.Println()

	fmt.Println("  [Match]")
	fmt.Printf("    Team:        %s\n", cfg.Match.Team)
	fmt.Printf("    Cache hours: %d\n", cfg.Match.CacheHours)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `hayati setup` to reconfigure.")
	return nil
}

func modelOrDefault(cfg config.Config) string {
	if cfg.AI.Model != "" {
		return cfg.AI.Model
	}
	return "gemini-2.0-flash (default)"
}
