package engine

import (
	"fmt"
	"math/rand"
)

// TimedConfig controls the fixed-duration mode.
type TimedConfig struct {
	TickInterval int // Ticks per time unit
	TimeBudget   int // Time units at the start
}

// Validate checks the timing values.
func (c TimedConfig) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %d", ErrInvalidConfig, c.TickInterval)
	}
	if c.TimeBudget <= 0 {
		return fmt.Errorf("%w: time budget %d", ErrInvalidConfig, c.TimeBudget)
	}
	return nil
}

// Timed is the fixed-duration mode: the board starts full, nothing spawns,
// and the session ends when the time budget runs out.
type Timed struct {
	Session
	cfg            TimedConfig
	timeRemaining  int
	timeToNextTick int
}

// NewTimed creates a Timed session on a pre-filled board.
func NewTimed(board BoardConfig, cfg TimedConfig, rng *rand.Rand) (*Timed, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := NewBoard(board, rng)
	if err != nil {
		return nil, err
	}
	b.Fill()

	return &Timed{
		Session:        newSession(b),
		cfg:            cfg,
		timeRemaining:  cfg.TimeBudget,
		timeToNextTick: cfg.TickInterval,
	}, nil
}

// TimeRemaining returns the time units left.
func (t *Timed) TimeRemaining() int {
	return t.timeRemaining
}

// Attack fires a player and scores the removed pieces.
func (t *Timed) Attack(player int) (int, error) {
	removed, err := t.attack(player)
	if err != nil {
		return 0, err
	}
	t.notify()
	return removed, nil
}

// Advance counts the clock down. Each full tick interval removes one unit of
// time; the session ends when none is left.
func (t *Timed) Advance(elapsed int) {
	if t.Over() {
		return
	}
	if elapsed > 0 {
		t.timeToNextTick -= elapsed
	}

	changed := false
	for t.timeToNextTick <= 0 {
		changed = true
		t.timeRemaining--
		if t.timeRemaining <= 0 {
			t.end()
			break
		}
		t.timeToNextTick += t.cfg.TickInterval
	}

	if changed {
		t.notify()
	}
}

// HUD returns the Timed summary.
func (t *Timed) HUD() HUD {
	return HUD{
		Score:         t.score,
		TimeRemaining: t.timeRemaining,
		Status:        t.status,
	}
}
