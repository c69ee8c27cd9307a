package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagDeadlineKind string
	flagDeadlineDue  string
)

var deadlinesCmd = &cobra.Command{
	Use:   "deadlines",
	Short: "List deadlines, soonest first",
	RunE:  runDeadlinesList,
}

var deadlinesAddCmd = &cobra.Command{
	Use:   "add <subject>",
	Short: "Add a deadline",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDeadlinesAdd,
}

var deadlinesRmCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Delete a deadline by its list number",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeadlinesRm,
}

func init() {
	deadlinesAddCmd.Flags().StringVarP(&flagDeadlineKind, "kind", "k", "exam", "Kind: exam, assignment, project, other")
	deadlinesAddCmd.Flags().StringVar(&flagDeadlineDue, "due", "", "Due date, \"2006-01-02 15:04\" or \"2006-01-02\"")
	deadlinesCmd.AddCommand(deadlinesAddCmd, deadlinesRmCmd)
	rootCmd.AddCommand(deadlinesCmd)
}

func runDeadlinesList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)
	ds := b.Deadlines()
	now := time.Now()

	if len(ds) == 0 {
		fmt.Println("  No deadlines.")
		return nil
	}

	rows := make([][]string, 0, len(ds))
	for i, d := range ds {
		rows = append(rows, []string{
			fmt.Sprintf("%s %d", urgencyMark(d.Due, now), i+1),
			d.Subject,
			string(d.Kind),
			cli.FormatDateTime(d.Due),
			cli.FormatDueIn(d.Due, now),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Deadlines",
		Headers: []string{"#", "Subject", "Kind", "Due", "In"},
		Rows:    rows,
	}))
	return nil
}

func runDeadlinesAdd(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)

	due, err := parseDueArg(flagDeadlineDue)
	if err != nil {
		return err
	}
	kind, err := model.ParseDeadlineKind(flagDeadlineKind)
	if err != nil {
		return err
	}

	d, err := b.AddDeadline(strings.Join(args, " "), kind, due)
	if err != nil {
		return err
	}
	fmt.Printf("  Added: %s (%s) due %s\n", d.Subject, d.Kind, cli.FormatDateTime(d.Due))
	return nil
}

func runDeadlinesRm(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a list number: %q", args[0])
	}
	ds := b.Deadlines()
	if n < 1 || n > len(ds) {
		return fmt.Errorf("no deadline %d (have %d)", n, len(ds))
	}
	return b.DeleteDeadline(ds[n-1].ID)
}

func parseDueArg(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("--due is required")
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse due date %q", s)
}
