package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gatefall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W   - Jump (left click works too)
  R/Enter      - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Examples:
  gatefall play
  gatefall play --seed 42
  gatefall play --config ./my-gatefall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initial size; the program receives the real size once it starts
	cols, rows := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}
	err = tui.Run(cfg, tui.Options{
		RuntimeConfig: runtimeConfig(cfg, cols, rows),
		Logger:        logger,
	})
	if err != nil {
		logger.Error("game exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
