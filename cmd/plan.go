package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var flagPlanDay string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the weekly plan",
	RunE:  runPlanShow,
}

var planAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a plan item (today unless --day is given)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlanAdd,
}

var planRmCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Delete a plan item by its number within the day",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanRm,
}

func init() {
	planCmd.PersistentFlags().StringVar(&flagPlanDay, "day", "", "Weekday name, e.g. monday")
	planCmd.AddCommand(planAddCmd, planRmCmd)
	rootCmd.AddCommand(planCmd)
}

func planDay() (time.Weekday, error) {
	if flagPlanDay == "" {
		return time.Now().Weekday(), nil
	}
	want := strings.ToLower(flagPlanDay)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if name == want || name[:3] == want {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", flagPlanDay)
}

func runPlanShow(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)
	plan := b.Plan()
	today := time.Now().Weekday()

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		marker := " "
		if wd == today {
			marker = "▸"
		}
		fmt.Printf("  %s %s\n", marker, wd)
		tasks := plan.Days[wd]
		if len(tasks) == 0 {
			fmt.Println("      (nothing planned)")
			continue
		}
		for i, task := range tasks {
			fmt.Printf("      %d. %s\n", i+1, task.Text)
		}
	}
	return nil
}

func runPlanAdd(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)

	day, err := planDay()
	if err != nil {
		return err
	}
	task, err := b.AddPlanTask(day, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Printf("  Planned for %s: %s\n", day, task.Text)
	return nil
}

func runPlanRm(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)

	day, err := planDay()
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a list number: %q", args[0])
	}
	tasks := b.Plan().Days[day]
	if n < 1 || n > len(tasks) {
		return fmt.Errorf("no item %d on %s (have %d)", n, day, len(tasks))
	}
	return b.DeletePlanTask(day, tasks[n-1].ID)
}
