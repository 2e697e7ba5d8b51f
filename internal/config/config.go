// Package config provides YAML-based configuration loading and difficulty
// presets for the lane modes.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// WildcardKind is the pool entry meaning "repeat the previous kind".
const WildcardKind = "*"

// LanesConfig contains all configuration for the lane modes.
type LanesConfig struct {
	Board    BoardSettings    `yaml:"board"`
	Marathon MarathonSettings `yaml:"marathon"`
	Timed    TimedSettings    `yaml:"timed"`
}

// BoardSettings defines the board geometry and the generation pool.
type BoardSettings struct {
	PlayerWidth  int      `yaml:"player_width"`  // Lanes on the Up/Down sides
	PlayerHeight int      `yaml:"player_height"` // Lanes on the Left/Right sides
	LengthX      int      `yaml:"length_x"`      // Capacity of Left/Right lanes
	LengthY      int      `yaml:"length_y"`      // Capacity of Up/Down lanes
	Players      int      `yaml:"players"`       // 1, or 2 for hot-seat
	Kinds        []string `yaml:"kinds"`         // "*" entries repeat the previous kind
}

// MarathonSettings defines spawn pacing for the endless mode, in ticks.
type MarathonSettings struct {
	SpawnInterval int `yaml:"spawn_interval"`
	Acceleration  int `yaml:"acceleration"` // Ticks removed per level
}

// TimedSettings defines the fixed-duration mode.
type TimedSettings struct {
	TickInterval int `yaml:"tick_interval"` // Ticks per time unit
	TimeBudget   int `yaml:"time_budget"`   // Time units at the start
}

// ConcreteKinds returns the pool without wildcard entries, in order.
func (b BoardSettings) ConcreteKinds() []string {
	out := make([]string, 0, len(b.Kinds))
	for _, k := range b.Kinds {
		if k != WildcardKind && k != "" {
			out = append(out, k)
		}
	}
	return out
}

// Validate reports the first invalid setting.
func (c LanesConfig) Validate() error {
	b := c.Board
	switch {
	case b.PlayerWidth <= 0 || b.PlayerHeight <= 0:
		return fmt.Errorf("%w: board player area %dx%d", ErrInvalid, b.PlayerWidth, b.PlayerHeight)
	case b.LengthX <= 0 || b.LengthY <= 0:
		return fmt.Errorf("%w: board lane length %dx%d", ErrInvalid, b.LengthX, b.LengthY)
	case b.Players < 1 || b.Players > 2:
		return fmt.Errorf("%w: board players %d (want 1 or 2)", ErrInvalid, b.Players)
	case len(b.ConcreteKinds()) == 0:
		return fmt.Errorf("%w: board kinds need at least one entry besides %q", ErrInvalid, WildcardKind)
	case c.Marathon.SpawnInterval <= 0:
		return fmt.Errorf("%w: marathon spawn_interval %d", ErrInvalid, c.Marathon.SpawnInterval)
	case c.Marathon.Acceleration < 0:
		return fmt.Errorf("%w: marathon acceleration %d", ErrInvalid, c.Marathon.Acceleration)
	case c.Timed.TickInterval <= 0:
		return fmt.Errorf("%w: timed tick_interval %d", ErrInvalid, c.Timed.TickInterval)
	case c.Timed.TimeBudget <= 0:
		return fmt.Errorf("%w: timed time_budget %d", ErrInvalid, c.Timed.TimeBudget)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
