// lambdooz is a terminal lane-matching arcade: pieces march toward a player
// standing in the middle of a cross, and the player clears them by matching
// kinds.
//
// Usage:
//
//	lambdooz list              - List available modes
//	lambdooz play <mode>       - Play marathon or timed
//	lambdooz menu              - Pick a mode interactively
//	lambdooz serve             - Start SSH server for remote play
//	lambdooz scores <mode>     - Show high scores for a mode
//	lambdooz config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.lambdooz/scores.db)
//	--config <path>       - Custom lanes.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lambdooz/internal/core"
	"github.com/vovakirdan/lambdooz/internal/games/lanes"
	"github.com/vovakirdan/lambdooz/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "lambdooz",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lambdooz",
	Short: "lambdooz - clear the lanes before they reach you",
	Long: `lambdooz is a terminal arcade game. Pieces of different kinds march along
four lanes toward the player area in the middle of a cross. Face a lane and
attack: every piece at the front that matches the kind you hold is cleared,
and you pick up the kind of the first piece that did not match.

Modes:
  marathon - endless spawns that speed up each level, until a lane overflows
  timed    - a full board and a fixed clock

Examples:
  lambdooz list
  lambdooz play marathon
  lambdooz play timed --difficulty hard
  lambdooz menu
  lambdooz serve --ssh :2222
  lambdooz scores marathon`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lambdooz/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lanes.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyLaneSettings hands --config and --difficulty to the lanes package and
// warns about anything that made it fall back to defaults.
func applyLaneSettings() {
	if _, err := lanes.LoadConfig(flagConfig, flagDifficulty); err != nil {
		logger.Warn("using fallback lane settings", "error", err)
	}
	lanes.SetConfigPath(flagConfig)
	lanes.SetDifficultyPreset(flagDifficulty)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
