package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carom-coach/internal/carom"
	"github.com/vovakirdan/carom-coach/internal/config"
	"github.com/vovakirdan/carom-coach/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the moyenne history and statistics",
	Long: `Display the rolling 20-game moyenne window and aggregate statistics
from the game log.

Examples:
  carom history
  carom history add 1.15`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

var historyAddCmd = &cobra.Command{
	Use:   "add <moyenne>",
	Short: "Record a moyenne manually",
	Long: `Record a completed game's moyenne without turn-by-turn tracking.
The value is appended to the game log and enters the rolling window.

Examples:
  carom history add 1.15`,
	Args: cobra.ExactArgs(1),
	Run:  runHistoryAdd,
}

func init() {
	historyCmd.AddCommand(historyAddCmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	moyennes, err := store.RecentMoyennes(carom.HistorySize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading game log: %v\n", err)
		os.Exit(1)
	}

	history := carom.NewHistory(moyennes, cfg.History.SeedMoyenne)

	fmt.Printf("Previous game moyennes (%d)\n", carom.HistorySize)
	fmt.Println()
	for i, moyenne := range history.Entries() {
		fmt.Printf("  %2d. %.2f\n", i+1, moyenne)
	}

	fmt.Println()
	fmt.Printf("Avg moyenne:  %.2f\n", history.Average())
	fmt.Printf("Score target: %d\n", history.ScaledTarget())

	fmt.Println()
	fmt.Println("Needed next game:")
	for _, tier := range carom.Tiers(cfg.Targets.Base, cfg.Targets.Step) {
		fmt.Printf("  %.2f -> %.2f\n", tier, history.ExpectedAverageNeeded(1, tier))
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
		os.Exit(1)
	}

	if stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Recorded games: %d\n", stats.GamesCount)
		fmt.Printf("Best moyenne:   %.2f\n", stats.BestMoyenne)
		fmt.Printf("Last played:    %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func runHistoryAdd(cmd *cobra.Command, args []string) {
	moyenne, err := strconv.ParseFloat(args[0], 64)
	if err != nil || moyenne < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid moyenne %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if _, err := store.SaveMoyenne(moyenne); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording moyenne: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recorded moyenne %.2f\n", moyenne)
}
