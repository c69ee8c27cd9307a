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

var flagPersonal bool

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks",
	RunE:  runTasksList,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := loadConfig()
		b := openBoard(cfg)
		task, err := b.AddTask(taskScope(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Printf("  Added %s task: %s\n", taskScope(), task.Text)
		return nil
	},
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done <number>",
	Short: "Toggle a task by its list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := loadConfig()
		b := openBoard(cfg)
		task, err := taskByNumber(b, args[0])
		if err != nil {
			return err
		}
		return b.ToggleTask(taskScope(), task.ID)
	},
}

var tasksRmCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Delete a task by its list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := loadConfig()
		b := openBoard(cfg)
		task, err := taskByNumber(b, args[0])
		if err != nil {
			return err
		}
		return b.DeleteTask(taskScope(), task.ID)
	},
}

func init() {
	tasksCmd.PersistentFlags().BoolVarP(&flagPersonal, "personal", "p", false, "Use the personal list instead of academic")
	tasksCmd.AddCommand(tasksAddCmd, tasksDoneCmd, tasksRmCmd)
	rootCmd.AddCommand(tasksCmd)
}

func taskScope() board.TaskScope {
	if flagPersonal {
		return board.ScopePersonal
	}
	return board.ScopeAcademic
}

func runTasksList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)
	tasks := b.Tasks(taskScope())

	fmt.Printf("  Tasks (%s)\n\n", taskScope())
	if len(tasks) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	done := 0
	for i, t := range tasks {
		if t.Completed {
			done++
		}
		fmt.Printf("  %2d. %s %s\n", i+1, cli.Checkbox(t.Completed), t.Text)
	}
	fmt.Printf("\n  %s\n", cli.RenderProgressBar(done, len(tasks), 20))
	return nil
}

func taskByNumber(b *board.Board, arg string) (model.Task, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return model.Task{}, fmt.Errorf("not a list number: %q", arg)
	}
	tasks := b.Tasks(taskScope())
	if n < 1 || n > len(tasks) {
		return model.Task{}, fmt.Errorf("no task %d (have %d)", n, len(tasks))
	}
	return tasks[n-1], nil
}
