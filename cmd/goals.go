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

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List goals",
	RunE:  runGoalsList,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a goal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := loadConfig()
		b := openBoard(cfg)
		g, err := b.AddGoal(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Printf("  Added goal: %s\n", g.Text)
		return nil
	},
}

var goalsDoneCmd = &cobra.Command{
	Use:   "done <number>",
	Short: "Toggle a goal by list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := loadConfig()
		b := openBoard(cfg)
		g, err := goalByNumber(b, args[0])
		if err != nil {
			return err
		}
		return b.ToggleGoal(g.ID)
	},
}

var goalsRmCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Delete a goal by list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := loadConfig()
		b := openBoard(cfg)
		g, err := goalByNumber(b, args[0])
		if err != nil {
			return err
		}
		return b.DeleteGoal(g.ID)
	},
}

func init() {
	goalsCmd.AddCommand(goalsAddCmd, goalsDoneCmd, goalsRmCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoalsList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)
	goals := b.Goals()

	fmt.Println("  Goals")
	fmt.Println()
	if len(goals) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	for i, g := range goals {
		fmt.Printf("  %2d. %s %s\n", i+1, cli.Checkbox(g.Completed), g.Text)
	}
	return nil
}

func goalByNumber(b *board.Board, arg string) (model.Goal, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return model.Goal{}, fmt.Errorf("not a list number: %q", arg)
	}
	goals := b.Goals()
	if n < 1 || n > len(goals) {
		return model.Goal{}, fmt.Errorf("no goal %d (have %d)", n, len(goals))
	}
	return goals[n-1], nil
}
