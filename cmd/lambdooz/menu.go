package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lambdooz/internal/platform/tui"
	"github.com/vovakirdan/lambdooz/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start lambdooz in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
scoreboard. After a game you return to the menu.

Examples:
  lambdooz menu
  lambdooz menu --fps 30 --difficulty hard
  lambdooz menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	applyLaneSettings()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create mode", "mode", result.GameID, "error", err)
			continue
		}

		// A fixed --seed replays the same board every round.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, tui.Options{Logger: logger}); err != nil {
			return err
		}
	}
}
