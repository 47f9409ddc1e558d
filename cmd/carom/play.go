package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/carom-coach/internal/config"
	"github.com/vovakirdan/carom-coach/internal/platform/tui"
	"github.com/vovakirdan/carom-coach/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run an interactive coaching session",
	Long: `Start the interactive scorekeeper.

Controls (game tab):
  0-9        - Enter score digits
  Enter/+    - Commit the entered score as a turn
  Backspace  - Undo last digit
  X/Esc      - Clear the entry
  E          - End game (fold moyenne into history)
  R          - Reset the current game
  Tab        - Switch between game and overall tabs
  Q/Ctrl+C   - Quit

Controls (overall tab):
  A          - Add a moyenne manually
  Up/Down    - Scroll the history table

Examples:
  carom play
  carom play --config ./session.yaml
  carom play --db ./games.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open the game log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open game log: %v\n", err)
		// Continue without storage - session still works
		store = nil
	}

	runErr := tui.RunSession(store, cfg, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
