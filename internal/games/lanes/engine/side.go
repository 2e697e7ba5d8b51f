package engine

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/lambdooz/internal/core"
)

// Side is one wall of the board: a row of parallel lanes.
//
// Local coordinates are (lane index, depth) where depth counts from the
// front of the lane:
//
//	+-------+-------+
//	| (0,2) | (1,2) |
//	+-------+-------+
//	| (0,1) | (1,1) | length
//	+-------+-------+
//	| (0,0) | (1,0) |
//	+-------+-------+
//	      width
type Side struct {
	lanes []*Lane
	rng   *rand.Rand
}

// Cell is a piece with its local coordinate on a side.
type Cell struct {
	Piece Piece
	Pos   core.Vector2
}

// NewSide creates a side of width lanes, each holding up to length pieces.
func NewSide(width, length int, pool []Kind, rng *rand.Rand) (*Side, error) {
	return newSide(width, length, pool, rng, &sequence{})
}

func newSide(width, length int, pool []Kind, rng *rand.Rand, seq *sequence) (*Side, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: side width %d", ErrInvalidConfig, width)
	}
	s := &Side{
		lanes: make([]*Lane, width),
		rng:   rng,
	}
	for i := range s.lanes {
		lane, err := newLane(length, pool, rng, seq)
		if err != nil {
			return nil, err
		}
		s.lanes[i] = lane
	}
	return s, nil
}

// Width returns the number of lanes.
func (s *Side) Width() int {
	return len(s.lanes)
}

// Lane returns the lane at index i, or nil if out of range.
func (s *Side) Lane(i int) *Lane {
	if i < 0 || i >= len(s.lanes) {
		return nil
	}
	return s.lanes[i]
}

// Len returns the total number of pieces across all lanes.
func (s *Side) Len() int {
	n := 0
	for _, l := range s.lanes {
		n += l.Len()
	}
	return n
}

// Add spawns a piece on a uniformly chosen lane.
// Returns ErrLaneFull if that lane has no room.
func (s *Side) Add() error {
	lane := s.lanes[s.rng.Intn(len(s.lanes))]
	_, err := lane.Add()
	return err
}

// Fill fills every lane to capacity.
func (s *Side) Fill() {
	for _, l := range s.lanes {
		l.Fill()
	}
}

// Intersect attacks the back of one lane and returns the number removed.
func (s *Side) Intersect(laneIndex int, attacker *Player) (int, error) {
	lane := s.Lane(laneIndex)
	if lane == nil {
		return 0, fmt.Errorf("%w: %d (width %d)", ErrIndexOutOfRange, laneIndex, len(s.lanes))
	}
	return lane.MatchAndRemove(attacker), nil
}

// Cells enumerates every piece by lane ascending, then front to back.
func (s *Side) Cells() []Cell {
	cells := make([]Cell, 0, s.Len())
	for x, l := range s.lanes {
		for y, p := range l.Pieces() {
			cells = append(cells, Cell{Piece: p, Pos: core.V(x, y)})
		}
	}
	return cells
}
