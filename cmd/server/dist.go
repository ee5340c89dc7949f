package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rollmath/odds-api/internal/engine"
	"github.com/rollmath/odds-api/internal/orchestrators/distribution"
)

var (
	distDice      int
	distSides     int
	distModifier  int
	distMode      string
	distGoal      int
	distGoalOp    string
	distFullTable bool
)

var distCmd = &cobra.Command{
	Use:   "dist",
	Short: "Print a distribution table locally",
	Long: `Compute and print the exact distribution for a dice pool without
starting a server. Examples:

  dist --dice 2 --sides 6
  dist --dice 1 --sides 20 --mode advantage
  dist --dice 3 --sides 6 --modifier 2 --goal 15 --op at_least`,
	RunE: runDist,
}

func init() {
	distCmd.Flags().IntVar(&distDice, "dice", 1, "Number of dice in the pool")
	distCmd.Flags().IntVar(&distSides, "sides", 6, "Sides per die")
	distCmd.Flags().IntVar(&distModifier, "modifier", 0, "Flat modifier added to the sum")
	distCmd.Flags().StringVar(&distMode, "mode", "normal", "Roll mode: normal, advantage, disadvantage")
	distCmd.Flags().IntVar(&distGoal, "goal", 0, "Goal threshold to evaluate")
	distCmd.Flags().StringVar(&distGoalOp, "op", "at_least", "Goal operator: exactly, at_least, at_most")
	distCmd.Flags().BoolVar(&distFullTable, "full", false, "Include outcomes below 0.1%")
}

func runDist(cmd *cobra.Command, args []string) error {
	svc, err := distribution.NewOrchestrator(&distribution.Config{})
	if err != nil {
		return err
	}

	input := &distribution.GetDistributionInput{
		DiceCount: distDice,
		Sides:     distSides,
		Modifier:  distModifier,
		Mode:      engine.RollMode(distMode),
	}
	if cmd.Flags().Changed("goal") {
		input.Goal = &distribution.GoalQuery{
			Threshold: distGoal,
			Operator:  engine.GoalOperator(distGoalOp),
		}
	}

	output, err := svc.GetDistribution(context.Background(), input)
	if err != nil {
		return fmt.Errorf("failed to compute distribution: %w", err)
	}

	rows := output.Rows
	if !distFullTable {
		rows = engine.VisibleRows(rows)
	}

	fmt.Printf("%dd%d", distDice, distSides)
	if distModifier > 0 {
		fmt.Printf("+%d", distModifier)
	} else if distModifier < 0 {
		fmt.Printf("%d", distModifier)
	}
	if input.Mode != engine.RollModeNormal && input.Mode != "" {
		fmt.Printf(" (%s)", input.Mode)
	}
	fmt.Println()

	for _, row := range rows {
		marker := " "
		if row.MostLikely {
			marker = "*"
		}
		fmt.Printf("%s %4d  %6s%%\n", marker, row.Outcome, engine.DisplayPercentage(row.Probability))
	}

	if output.Goal != nil {
		fmt.Printf("\nP(%s) = %s%%\n", output.Goal.DisplayText, engine.DisplayPercentage(output.Goal.Probability))
	}

	return nil
}
