package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hayati-app/hayati/internal/board"
	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/model"

	"github.com/spf13/cobra"
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "List habits and streaks",
	RunE:  runHabitsList,
}

var habitsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a habit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := loadConfig()
		b := openBoard(cfg)
		h, err := b.AddHabit(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Printf("  Added habit: %s\n", h.Name)
		return nil
	},
}

var habitsDoneCmd = &cobra.Command{
	Use:   "done <number>",
	Short: "Toggle today's completion by list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := loadConfig()
		b := openBoard(cfg)
		h, err := habitByNumber(b, args[0])
		if err != nil {
			return err
		}
		return b.ToggleHabit(h.ID)
	},
}

var habitsRmCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Delete a habit by list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := loadConfig()
		b := openBoard(cfg)
		h, err := habitByNumber(b, args[0])
		if err != nil {
			return err
		}
		return b.DeleteHabit(h.ID)
	},
}

func init() {
	habitsCmd.AddCommand(habitsAddCmd, habitsDoneCmd, habitsRmCmd)
	rootCmd.AddCommand(habitsCmd)
}

func runHabitsList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)
	statuses := b.HabitStatuses()

	fmt.Println("  Habits")
	fmt.Println()
	for i, hs := range statuses {
		streak := "no streak"
		if hs.Status.Streak > 0 {
			streak = cli.FormatStreak(hs.Status)
		}
		fmt.Printf("  %2d. %s %-24s %s\n",
			i+1, cli.Checkbox(hs.Status.CompletedToday), hs.Habit.Name, streak)
	}
	return nil
}

func habitByNumber(b *board.Board, arg string) (model.Habit, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return model.Habit{}, fmt.Errorf("not a list number: %q", arg)
	}
	habits := b.Habits()
	if n < 1 || n > len(habits) {
		return model.Habit{}, fmt.Errorf("no habit %d (have %d)", n, len(habits))
	}
	return habits[n-1], nil
}
