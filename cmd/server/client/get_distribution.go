package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rollmath/odds-api/internal/engine"
	v1alpha1 "github.com/rollmath/odds-api/internal/handlers/api/v1alpha1"
)

var (
	getDice      int
	getSides     int
	getModifier  int
	getMode      string
	getFullTable bool
)

var getDistributionCmd = &cobra.Command{
	Use:   "get-distribution",
	Short: "Fetch a distribution table from the server",
	Long: `Fetch the exact distribution for a dice pool. Examples:

  get-distribution --dice 2 --sides 6
  get-distribution --dice 1 --sides 20 --mode disadvantage`,
	RunE: getDistribution,
}

func init() {
	getDistributionCmd.Flags().IntVar(&getDice, "dice", 1, "Number of dice in the pool")
	getDistributionCmd.Flags().IntVar(&getSides, "sides", 6, "Sides per die")
	getDistributionCmd.Flags().IntVar(&getModifier, "modifier", 0, "Flat modifier added to the sum")
	getDistributionCmd.Flags().StringVar(&getMode, "mode", "", "Roll mode: normal, advantage, disadvantage")
	getDistributionCmd.Flags().BoolVar(&getFullTable, "full", false, "Include outcomes below 0.1%")
}

func getDistribution(cmd *cobra.Command, args []string) error {
	fmt.Printf("Fetching distribution for %dd%d from %s...\n\n", getDice, getSides, serverAddr)

	var resp v1alpha1.DistributionResponse
	err := postJSON("/v1alpha1/distributions", v1alpha1.DistributionRequest{
		DiceCount: getDice,
		Sides:     getSides,
		Modifier:  getModifier,
		Mode:      getMode,
		FullTable: getFullTable,
	}, &resp)
	if err != nil {
		return fmt.Errorf("failed to get distribution: %w", err)
	}

	fmt.Printf("Outcome  Chance\n")
	fmt.Printf("=======  ======\n")
	for _, row := range resp.Rows {
		marker := " "
		if row.MostLikely {
			marker = "*"
		}
		fmt.Printf("%s %5d  %6s%%\n", marker, row.Outcome, engine.DisplayPercentage(row.Probability))
	}

	if resp.FromCache {
		fmt.Printf("\n(served from cache)\n")
	}
	return nil
}
