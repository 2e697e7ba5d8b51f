package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LanesFile is the config file name looked up in every search location.
const LanesFile = "lanes.yaml"

// LoadLanes loads the lane modes configuration.
// Search order: customPath -> ~/.lambdooz/configs/lanes.yaml -> ./configs/lanes.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadLanes(customPath string) (LanesConfig, error) {
	cfg := DefaultLanesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultLanesConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(LanesFile); userCfgPath != "" {
		if loaded, ok := decodeFile(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := decodeFile(filepath.Join("configs", LanesFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultLanesConfig()
	if err := yaml.Unmarshal(defaultLanesYAML, &embedded); err != nil {
		return DefaultLanesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// decodeFile reads and decodes path over the defaults. Missing or malformed
// files are skipped so the search can continue.
func decodeFile(path string) (LanesConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LanesConfig{}, false
	}
	cfg := DefaultLanesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LanesConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lambdooz", "configs", filename)
}

// ApplyLanesPreset adjusts pacing for a difficulty preset. Normal keeps the
// loaded values; fixed keeps them but stops the Marathon from speeding up.
func ApplyLanesPreset(cfg *LanesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Marathon.SpawnInterval = cfg.Marathon.SpawnInterval * 3 / 2
		cfg.Marathon.Acceleration /= 2
		cfg.Timed.TimeBudget = cfg.Timed.TimeBudget * 3 / 2
	case DifficultyHard:
		cfg.Marathon.SpawnInterval = max(1, cfg.Marathon.SpawnInterval*3/4)
		cfg.Marathon.Acceleration = cfg.Marathon.Acceleration * 3 / 2
		cfg.Timed.TimeBudget = max(1, cfg.Timed.TimeBudget*3/4)
	case DifficultyFixed:
		cfg.Marathon.Acceleration = 0
	}
}
