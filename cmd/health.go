package cmd

import (
	"fmt"
	"strconv"

	"github.com/hayati-app/hayati/internal/cli"
	"github.com/hayati-app/hayati/internal/engine"

	"github.com/spf13/cobra"
)

var (
	flagHeight  float64
	flagInitial float64
	flagTarget  float64
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show weight, BMI, and goal progress",
	RunE:  runHealthShow,
}

var healthWeighCmd = &cobra.Command{
	Use:   "weigh <kg>",
	Short: "Record today's weight",
	Args:  cobra.ExactArgs(1),
	RunE:  runHealthWeigh,
}

var healthSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set height, initial weight, and target weight",
	RunE:  runHealthSet,
}

func init() {
	healthSetCmd.Flags().Float64Var(&flagHeight, "height", 0, "Height in cm")
	healthSetCmd.Flags().Float64Var(&flagInitial, "initial", 0, "Initial weight in kg")
	healthSetCmd.Flags().Float64Var(&flagTarget, "target", 0, "Target weight in kg")
	healthCmd.AddCommand(healthWeighCmd, healthSetCmd)
	rootCmd.AddCommand(healthCmd)
}

func runHealthShow(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)
	info := b.Health()

	if info.HeightCm == 0 && info.InitialWeight == 0 && len(info.History) == 0 {
		fmt.Println("  No health profile. Run `hayati health set --height --initial --target`.")
		return nil
	}

	current := engine.CurrentWeight(info)
	bmi, category := engine.BMI(info.HeightCm, current)
	progress := engine.Progress(info.InitialWeight, info.TargetWeight, current)

	fmt.Println("  Health")
	fmt.Println()
	fmt.Printf("  Current weight: %s\n", cli.FormatWeight(current))
	if info.TargetWeight > 0 {
		fmt.Printf("  Target weight:  %s (%s there)\n",
			cli.FormatWeight(info.TargetWeight), cli.FormatPercent(progress))
	}
	if category != engine.BMIUnknown {
		fmt.Printf("  BMI:            %.1f (%s)\n", bmi, category)
	}

	weights, dates := engine.WeightSeries(info)
	if len(weights) >= 2 {
		fmt.Printf("\n  Trend: %s\n", cli.RenderSparkline(weights))
	}
	if len(dates) > 0 {
		fmt.Println("\n  Recent weigh-ins:")
		shown := 0
		for i := len(dates) - 1; i >= 0 && shown < 7; i-- {
			fmt.Printf("    %s  %s\n", cli.FormatDate(dates[i]), cli.FormatWeight(weights[i]))
			shown++
		}
	}
	return nil
}

func runHealthWeigh(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)

	kg, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("not a weight: %q", args[0])
	}
	if err := b.RecordWeight(kg); err != nil {
		return err
	}
	fmt.Printf("  Recorded %s\n", cli.FormatWeight(kg))
	return nil
}

func runHealthSet(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	b := openBoard(cfg)

	if err := b.SetHealthInfo(flagHeight, flagInitial, flagTarget); err != nil {
		return err
	}
	fmt.Println("  Health profile saved.")
	return nil
}
