// Package main is the entry point for the odds API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rollmath/odds-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "odds-api",
	Short: "Exact dice probability API server",
	Long:  `odds-api computes exact dice pool probability distributions, roll mode transforms, and goal queries, served over a JSON HTTP interface.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(distCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
