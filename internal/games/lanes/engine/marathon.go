package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// QuotaPerLevel scales the pieces needed to clear a level.
	QuotaPerLevel = 10

	// MinSpawnInterval keeps the spawn loop finite once acceleration
	// overtakes the base interval.
	MinSpawnInterval = 1
)

// MarathonConfig controls the endless mode's spawn pacing, in ticks.
type MarathonConfig struct {
	SpawnInterval int // Ticks between spawns at level 0
	Acceleration  int // Ticks removed from the interval per level
}

// Validate checks the pacing values.
func (c MarathonConfig) Validate() error {
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("%w: spawn interval %d", ErrInvalidConfig, c.SpawnInterval)
	}
	if c.Acceleration < 0 {
		return fmt.Errorf("%w: acceleration %d", ErrInvalidConfig, c.Acceleration)
	}
	return nil
}

// Marathon is the endless mode: pieces keep spawning, faster each level,
// until a lane overflows.
type Marathon struct {
	Session
	cfg             MarathonConfig
	level           int
	clears          int
	quota           int
	timeToNextSpawn int
}

// NewMarathon creates a Marathon session on an empty board.
// It starts at level 1 with a quota of 10.
func NewMarathon(board BoardConfig, cfg MarathonConfig, rng *rand.Rand) (*Marathon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := NewBoard(board, rng)
	if err != nil {
		return nil, err
	}

	m := &Marathon{
		Session: newSession(b),
		cfg:     cfg,
		level:   1,
	}
	m.quota = m.level * QuotaPerLevel
	m.timeToNextSpawn = m.interval()
	return m, nil
}

// Level returns the current level.
func (m *Marathon) Level() int {
	return m.level
}

// Quota returns the pieces still needed to reach the next level.
func (m *Marathon) Quota() int {
	return m.quota
}

// Clears returns the total pieces removed this session.
func (m *Marathon) Clears() int {
	return m.clears
}

// TimeToNextSpawn returns the ticks until the next spawn.
func (m *Marathon) TimeToNextSpawn() int {
	return m.timeToNextSpawn
}

// interval is the current spawn interval in ticks.
func (m *Marathon) interval() int {
	return max(MinSpawnInterval, m.cfg.SpawnInterval-m.level*m.cfg.Acceleration)
}

// Attack fires a player and applies the quota rule. When the quota is met
// the level goes up first and the quota is replenished from the new level,
// so any surplus clears carry over.
func (m *Marathon) Attack(player int) (int, error) {
	removed, err := m.attack(player)
	if err != nil {
		return 0, err
	}

	m.clears += removed
	m.quota -= removed
	if m.quota <= 0 {
		m.level++
		m.quota += m.level * QuotaPerLevel
	}

	m.notify()
	return removed, nil
}

// Advance moves the spawn timer forward. Every time it runs out a piece is
// spawned, so a large elapsed value catches up with several spawns. An
// overflowing lane ends the session.
func (m *Marathon) Advance(elapsed int) {
	if m.Over() {
		return
	}
	if elapsed > 0 {
		m.timeToNextSpawn -= elapsed
	}

	changed := false
	for m.timeToNextSpawn <= 0 {
		if err := m.board.Add(); err != nil {
			if errors.Is(err, ErrLaneFull) {
				m.end()
				changed = true
				break
			}
			// Any other spawn failure is a configuration error that
			// NewBoard already rejects.
			panic(err)
		}
		changed = true
		m.timeToNextSpawn += m.interval()
	}

	if changed {
		m.notify()
	}
}

// HUD returns the Marathon summary.
func (m *Marathon) HUD() HUD {
	return HUD{
		Score:  m.score,
		Level:  m.level,
		Quota:  m.quota,
		Clears: m.clears,
		Status: m.status,
	}
}
