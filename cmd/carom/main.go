// carom is a terminal scorekeeper and pace coach for carom billiards.
//
// Usage:
//
//	carom play               - Run an interactive coaching session
//	carom project            - Print the needed-score table for a game position
//	carom history            - Show the recorded moyenne history and stats
//	carom history add <m>    - Record a moyenne manually
//	carom serve              - Start SSH server for remote sessions
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.carom/games.db)
//	--config <path>  - Set session config path (default: search chain)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "carom",
	Short: "Carom Coach - Track your billiards moyenne in the terminal",
	Long: `Carom Coach is a terminal scorekeeper for carom billiards. It tracks
the game in progress, keeps a rolling 20-game moyenne history, and
projects the score you still need over the next turns to stay on pace
for your target moyennes.

Available commands:
  play     - Interactive coaching session
  project  - Print the needed-score table for a position
  history  - Show the moyenne history and statistics
  serve    - Start SSH server for remote sessions

Examples:
  carom play
  carom project --score 12 --turns 15
  carom history
  carom history add 1.15
  carom serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.carom/games.db", "Path to game log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to session config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
