// Package engine implements the lane-matching simulation: pieces spawn on four
// sides around a small player area and players clear them by attacking the
// lane they face. It has no rendering, input or timing dependencies; front-ends
// drive it through Move, Attack and Advance and re-read state when notified.
package engine

import "errors"

var (
	// ErrLaneFull is returned when a piece is generated on a lane at capacity.
	// On the board it means a side overflowed and the game is over.
	ErrLaneFull = errors.New("engine: lane full")

	// ErrPlayerNotFound is returned for a player index that does not exist.
	ErrPlayerNotFound = errors.New("engine: player not found")

	// ErrIndexOutOfRange is returned for a lane index that does not exist on a side.
	ErrIndexOutOfRange = errors.New("engine: lane index out of range")

	// ErrInvalidDirection is returned for a direction outside Left, Right, Up, Down.
	ErrInvalidDirection = errors.New("engine: invalid direction")

	// ErrEmptyPool is returned when a lane is configured without any kinds.
	ErrEmptyPool = errors.New("engine: empty kind pool")

	// ErrNoKinds is returned when a wildcard-only pool has nothing to repeat.
	ErrNoKinds = errors.New("engine: no concrete kind to generate")

	// ErrInvalidConfig is returned for non-positive dimensions or intervals.
	ErrInvalidConfig = errors.New("engine: invalid config")

	// ErrGameOver is returned by commands issued after the session ended.
	ErrGameOver = errors.New("engine: game over")
)
