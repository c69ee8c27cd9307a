package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hayati-app/hayati/internal/ai"
	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/config"
	"github.com/hayati-app/hayati/internal/store"

	"github.com/spf13/cobra"
)

var caloriesCmd = &cobra.Command{
	Use:   "calories <image>",
	Short: "Estimate calories from a meal photo and log it",
	Args:  cobra.ExactArgs(1),
	RunE:  runCaloriesEstimate,
}

var caloriesLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent meals and daily totals",
	RunE:  runCaloriesLog,
}

var caloriesRmCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Delete a logged meal by its number in `calories log`",
	Args:  cobra.ExactArgs(1),
	RunE:  runCaloriesRm,
}

// recentMeals is the window shown by `calories log`; `calories rm`
// numbers meals against the same window.
const recentMeals = 10

func init() {
	caloriesCmd.AddCommand(caloriesLogCmd, caloriesRmCmd)
	rootCmd.AddCommand(caloriesCmd)
}

func runCaloriesEstimate(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	client := ai.NewClient(config.GetAPIKey(cfg), cfg.AI.Model)
	if client == nil {
		return fmt.Errorf("no API key configured; run `hayati setup` or set GEMINI_API_KEY")
	}

	path := args[0]
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	mimeType := mimeFromExt(path)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	est, err := client.EstimateCalories(ctx, image, mimeType)
	if err != nil {
		return fmt.Errorf("estimating calories: %w", err)
	}

	fmt.Printf("  %s\n", est.Description)
	fmt.Printf("  ~%.0f kcal\n", est.Calories)

	journal, err := openJournal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Journal unavailable, meal not logged: %v\n", err)
		return nil
	}
	defer journal.Close()

	if err := journal.Append(store.Meal{
		Description: est.Description,
		Calories:    est.Calories,
		Source:      "photo",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "  Could not log meal: %v\n", err)
	}
	return nil
}

func runCaloriesLog(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	journal, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer journal.Close()

	meals, err := journal.Recent(recentMeals)
	if err != nil {
		return err
	}
	if len(meals) == 0 {
		fmt.Println("  No meals logged yet.")
		return nil
	}

	fmt.Println("  Recent meals")
	fmt.Println()
	for i, m := range meals {
		fmt.Printf("  %2d. %s  %-40s %5.0f kcal\n",
			i+1, m.LoggedAt.Local().Format("Jan 02 15:04"), m.Description, m.Calories)
	}

	totals, err := journal.DayTotals(7)
	if err != nil {
		return err
	}
	if len(totals) > 0 {
		maxCal := 0.0
		for _, d := range totals {
			if d.Calories > maxCal {
				maxCal = d.Calories
			}
		}
		fmt.Println()
		fmt.Println("  Last 7 days")
		fmt.Println()
		for _, d := range totals {
			fmt.Println(cli.RenderHorizontalBar(d.Day, d.Calories, maxCal, 30))
		}
	}
	return nil
}

func runCaloriesRm(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	journal, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer journal.Close()

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a list number: %q", args[0])
	}
	meals, err := journal.Recent(recentMeals)
	if err != nil {
		return err
	}
	if n < 1 || n > len(meals) {
		return fmt.Errorf("no meal %d (have %d)", n, len(meals))
	}
	if err := journal.DeleteMeal(meals[n-1].ID); err != nil {
		return err
	}
	fmt.Printf("  Removed: %s\n", meals[n-1].Description)
	return nil
}

func mimeFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	default:
		return "image/jpeg"
	}
}
