package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lambdooz/internal/platform/tui"
	"github.com/vovakirdan/lambdooz/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing marathon or timed.

Controls:
  Arrows       - Move / turn (player 1)
  Space        - Attack the faced lane (player 1)
  WASD / F     - Move / attack (player 2, when board.players is 2)
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Leave (when paused or over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

Difficulty options:
  easy   - slower spawns, gentler speed-up, more time
  normal - values from the config file
  hard   - faster spawns, steeper speed-up, less time
  fixed  - spawn interval never shrinks

Examples:
  lambdooz play marathon
  lambdooz play timed --difficulty easy
  lambdooz play marathon --config ./my-lanes.yaml --seed 42`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"marathon", "timed"},
	RunE:      runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'lambdooz list')", gameID)
	}

	applyLaneSettings()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, runtimeConfig(), tui.Options{Logger: logger})
}
