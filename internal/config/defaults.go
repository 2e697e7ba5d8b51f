package config

import (
	_ "embed"
)

//go:embed defaults/lanes.yaml
var defaultLanesYAML []byte

// DefaultLanesConfig returns the default lane modes configuration.
func DefaultLanesConfig() LanesConfig {
	return LanesConfig{
		Board: BoardSettings{
			PlayerWidth:  4,
			PlayerHeight: 4,
			LengthX:      6,
			LengthY:      4,
			Players:      1,
			Kinds:        []string{"0", "1", "2", "3"},
		},
		Marathon: MarathonSettings{
			SpawnInterval: 120, // 2 seconds at 60fps
			Acceleration:  10,
		},
		Timed: TimedSettings{
			TickInterval: 60, // One time unit per second
			TimeBudget:   120,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML with every key commented.
func GetDefaultYAML() []byte {
	return defaultLanesYAML
}
