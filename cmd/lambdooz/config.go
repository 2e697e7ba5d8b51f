package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lambdooz/internal/config"
	"github.com/vovakirdan/lambdooz/internal/games/lanes"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the lane configuration",
	Long: `Print the built-in lanes.yaml, ready to copy to
~/.lambdooz/configs/lanes.yaml or ./configs/lanes.yaml and edit.

With --resolved, print the configuration a game would actually use after the
search order, --config and --difficulty are applied.

Examples:
  lambdooz config > ~/.lambdooz/configs/lanes.yaml
  lambdooz config --resolved --difficulty hard`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration instead of the defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagResolved {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := lanes.LoadConfig(flagConfig, flagDifficulty)
	if err != nil {
		logger.Warn("using fallback lane settings", "error", err)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
