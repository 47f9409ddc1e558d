package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carom-coach/internal/carom"
	"github.com/vovakirdan/carom-coach/internal/config"
)

var (
	flagScore int
	flagTurns int
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Print the needed-score table for a game position",
	Long: `Compute, for each target tier and each of the next turns, the minimum
score still required to stay on pace.

Targets and horizon come from the session config (or its defaults:
tiers 0.90/1.00/1.10 over 10 turns).

Examples:
  carom project                       # Fresh game
  carom project --score 12 --turns 15
  carom project --score 12 --turns 15 --config ./session.yaml`,
	Args: cobra.NoArgs,
	Run:  runProject,
}

func init() {
	projectCmd.Flags().IntVar(&flagScore, "score", 0, "Current score")
	projectCmd.Flags().IntVar(&flagTurns, "turns", 0, "Turns already played")
}

func runProject(cmd *cobra.Command, args []string) {
	if flagScore < 0 || flagTurns < 0 {
		fmt.Fprintln(os.Stderr, "Error: --score and --turns must be non-negative")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	table := carom.ProjectNeededTable(
		flagScore, flagTurns,
		cfg.Targets.Base, cfg.Targets.Step,
		cfg.Projection.Horizon,
	)

	fmt.Printf("Needed score - %d points after %d turns\n", flagScore, flagTurns)
	fmt.Println()

	// Header: lookahead turns
	fmt.Printf("  %-8s", "Target")
	for k := 1; k <= cfg.Projection.Horizon; k++ {
		fmt.Printf("%6d", k)
	}
	fmt.Println()

	fmt.Printf("  %-8s", "------")
	for k := 1; k <= cfg.Projection.Horizon; k++ {
		fmt.Printf("%6s", "----")
	}
	fmt.Println()

	for _, row := range table {
		fmt.Printf("  %-8.2f", row[0].Target)
		for _, cell := range row {
			fmt.Printf("%6d", cell.NeededScore)
		}
		fmt.Println()
	}
}
