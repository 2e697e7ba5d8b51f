package engine

import (
	"github.com/vovakirdan/lambdooz/internal/core"
)

// PointsPerPiece is the score awarded for every piece an attack removes.
const PointsPerPiece = 100

// Status is the lifecycle state of a session.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Observer is called after every state change. Observers run synchronously
// in registration order and must not call back into mutating operations.
type Observer func()

// HUD is the read-only summary a renderer shows next to the board.
// Level and Quota are zero in Timed mode; TimeRemaining is zero in Marathon.
type HUD struct {
	Score         int
	Level         int
	Quota         int
	Clears        int
	TimeRemaining int
	Status        Status
}

// Mode is the command surface shared by Marathon and Timed sessions.
type Mode interface {
	Move(player int, d core.Direction) (bool, error)
	Attack(player int) (int, error)
	Advance(elapsed int)
	Observe(o Observer)
	Score() int
	Status() Status
	Over() bool
	Board() *Board
	HUD() HUD
}

// Session holds the state common to every mode: the board, the score, the
// running/over status and the observer list.
type Session struct {
	board     *Board
	score     int
	status    Status
	observers []Observer
}

func newSession(board *Board) Session {
	return Session{board: board}
}

// Observe registers an observer.
func (s *Session) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Session) notify() {
	for _, o := range s.observers {
		o()
	}
}

// Board returns the board. Callers must treat it as read-only.
func (s *Session) Board() *Board {
	return s.board
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Status returns the session status.
func (s *Session) Status() Status {
	return s.status
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.status == StatusOver
}

func (s *Session) end() {
	s.status = StatusOver
}

// Move turns and steps a player. A rejected step still counts as a change
// because the facing is updated.
func (s *Session) Move(player int, d core.Direction) (bool, error) {
	if s.Over() {
		return false, ErrGameOver
	}
	moved, err := s.board.Move(player, d)
	if err != nil {
		return false, err
	}
	s.notify()
	return moved, nil
}

// attack runs a board attack and scores it. Modes notify after their own
// bookkeeping so observers see a consistent state.
func (s *Session) attack(player int) (int, error) {
	if s.Over() {
		return 0, ErrGameOver
	}
	removed, err := s.board.Attack(player)
	if err != nil {
		return 0, err
	}
	s.score += removed * PointsPerPiece
	return removed, nil
}
