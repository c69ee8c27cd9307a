package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hayati-app/hayati/internal/board"
	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/config"
	"github.com/hayati-app/hayati/internal/engine"
	"github.com/hayati-app/hayati/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "hayati",
	Short: "Personal productivity dashboard",
	Long:  "Track deadlines, tasks, habits, goals, and health from one place.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
}

// loadConfig returns the config, falling back to defaults when the file
// is unreadable.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	return cfg
}

func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return config.DataDir(cfg)
}

// openBoard opens the blob store under the data directory. Storage
// trouble degrades to a disabled store rather than aborting, so
// read-only commands still render defaults.
func openBoard(cfg config.Config) *board.Board {
	dir := filepath.Join(dataDir(cfg), "state")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "  Storage unavailable (%v), changes will not persist\n", err)
		return board.New(store.Disabled())
	}
	return board.New(store.Open(dir))
}

func openJournal(cfg config.Config) (*store.Journal, error) {
	return store.OpenJournal(filepath.Join(dataDir(cfg), "journal.db"))
}

func runOverview(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)
	sum := b.Overview()
	now := time.Now()

	fmt.Println(cli.RenderTitle("hayati"))
	fmt.Println()

	if sum.NextDeadline != nil {
		d := sum.NextDeadline
		fmt.Printf("  Next deadline:  %s (%s) %s\n",
			d.Subject, d.Kind, cli.FormatDueIn(d.Due, now))
	} else {
		fmt.Println("  Next deadline:  none")
	}

	fmt.Printf("  Tasks:          %d open, %d done\n", sum.OpenTasks, sum.DoneTasks)

	doneToday := 0
	for _, h := range sum.Habits {
		if h.Status.CompletedToday {
			doneToday++
		}
	}
	fmt.Printf("  Habits today:   %d/%d\n", doneToday, len(sum.Habits))

	if sum.CurrentWeight > 0 {
		fmt.Printf("  Weight:         %s (%s to goal)\n",
			cli.FormatWeight(sum.CurrentWeight), cli.FormatPercent(sum.Progress))
	}

	if len(sum.TodayPlan) > 0 {
		fmt.Printf("\n  Today (%s):\n", sum.TodayPlanDay)
		for _, p := range sum.TodayPlan {
			fmt.Printf("    • %s\n", p.Text)
		}
	}

	if len(sum.DeadlinesSoon) > 0 {
		fmt.Println("\n  Due soon:")
		for _, d := range sum.DeadlinesSoon {
			fmt.Printf("    %s %s\n", cli.FormatDueIn(d.Due, now), d.Subject)
		}
	}

	fmt.Println()
	fmt.Println("  Run `hayati tui` for the interactive dashboard.")
	return nil
}

// urgencyMark prefixes urgent deadlines in list output.
func urgencyMark(due, now time.Time) string {
	switch engine.UrgencyOf(due, now) {
	case engine.UrgencyPast:
		return "✗"
	case engine.UrgencyCritical:
		return "!"
	default:
		return " "
	}
}
