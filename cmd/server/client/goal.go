package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rollmath/odds-api/internal/engine"
	v1alpha1 "github.com/rollmath/odds-api/internal/handlers/api/v1alpha1"
)

var (
	goalDice      int
	goalSides     int
	goalModifier  int
	goalMode      string
	goalThreshold int
	goalOperator  string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Evaluate a goal query against a dice pool",
	Long: `Ask the server how likely a dice pool is to hit a target. Examples:

  goal --dice 2 --sides 6 --threshold 8 --op at_least
  goal --dice 1 --sides 20 --modifier 5 --threshold 15 --op at_least --mode advantage`,
	RunE: evaluateGoal,
}

func init() {
	goalCmd.Flags().IntVar(&goalDice, "dice", 1, "Number of dice in the pool")
	goalCmd.Flags().IntVar(&goalSides, "sides", 6, "Sides per die")
	goalCmd.Flags().IntVar(&goalModifier, "modifier", 0, "Flat modifier added to the sum")
	goalCmd.Flags().StringVar(&goalMode, "mode", "", "Roll mode: normal, advantage, disadvantage")
	goalCmd.Flags().IntVar(&goalThreshold, "threshold", 0, "Goal threshold")
	goalCmd.Flags().StringVar(&goalOperator, "op", "at_least", "Goal operator: exactly, at_least, at_most")
	_ = goalCmd.MarkFlagRequired("threshold")
}

func evaluateGoal(cmd *cobra.Command, args []string) error {
	var resp v1alpha1.GoalResponse
	err := postJSON("/v1alpha1/distributions/goal", v1alpha1.GoalRequestBody{
		DiceCount: goalDice,
		Sides:     goalSides,
		Modifier:  goalModifier,
		Mode:      goalMode,
		Threshold: goalThreshold,
		Operator:  goalOperator,
	}, &resp)
	if err != nil {
		return fmt.Errorf("failed to evaluate goal: %w", err)
	}

	fmt.Printf("P(%s) = %s%%\n", resp.Answer.DisplayText, engine.DisplayPercentage(resp.Answer.Probability))
	if resp.FromCache {
		fmt.Printf("(served from cache)\n")
	}
	return nil
}
