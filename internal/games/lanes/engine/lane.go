package engine

import (
	"fmt"
	"math/rand"
)

// Lane is a fixed-capacity queue of pieces. New pieces enter at the front;
// attacks consume from the back (the oldest piece).
//
// Generation is weighted by the pool: a kind listed twice is twice as likely,
// and each Wildcard entry is a chance to repeat the previous kind.
type Lane struct {
	capacity int
	pieces   []*Piece // index 0 is the front (newest)
	pool     []Kind
	concrete []Kind // pool without wildcards
	previous Kind
	rng      *rand.Rand
	seq      *sequence
}

// NewLane creates an empty lane holding at most capacity pieces.
func NewLane(capacity int, pool []Kind, rng *rand.Rand) (*Lane, error) {
	return newLane(capacity, pool, rng, &sequence{})
}

func newLane(capacity int, pool []Kind, rng *rand.Rand, seq *sequence) (*Lane, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: lane capacity %d", ErrInvalidConfig, capacity)
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	l := &Lane{
		capacity: capacity,
		pool:     append([]Kind(nil), pool...),
		rng:      rng,
		seq:      seq,
	}
	for _, k := range pool {
		if k.Concrete() {
			l.concrete = append(l.concrete, k)
		}
	}

	// Seed so that a leading wildcard has something to repeat.
	if len(l.concrete) > 0 {
		l.previous = l.concrete[rng.Intn(len(l.concrete))]
	}
	return l, nil
}

// Len returns the number of pieces in the lane.
func (l *Lane) Len() int {
	return len(l.pieces)
}

// Cap returns the lane capacity.
func (l *Lane) Cap() int {
	return l.capacity
}

// Full reports whether another piece would overflow the lane.
func (l *Lane) Full() bool {
	return len(l.pieces) >= l.capacity
}

// Previous returns the most recently generated kind.
func (l *Lane) Previous() Kind {
	return l.previous
}

// SetPrevious overrides the kind a wildcard pick will repeat.
func (l *Lane) SetPrevious(k Kind) {
	l.previous = k
}

// Pieces returns a copy of the lane contents, front (newest) to back (oldest).
func (l *Lane) Pieces() []Piece {
	out := make([]Piece, len(l.pieces))
	for i, p := range l.pieces {
		out[i] = *p
	}
	return out
}

// Generate produces the next piece without placing it in the lane.
func (l *Lane) Generate() (*Piece, error) {
	return l.generate(NoKind)
}

// GenerateKind produces a piece of the given kind, bypassing the pool.
func (l *Lane) GenerateKind(k Kind) (*Piece, error) {
	return l.generate(k)
}

func (l *Lane) generate(explicit Kind) (*Piece, error) {
	if l.Full() {
		return nil, ErrLaneFull
	}

	kind := explicit
	if kind == NoKind {
		kind = l.pool[l.rng.Intn(len(l.pool))]
		if kind == Wildcard {
			kind = l.previous
		}
		if !kind.Concrete() {
			if len(l.concrete) == 0 {
				return nil, ErrNoKinds
			}
			kind = l.concrete[l.rng.Intn(len(l.concrete))]
		}
	}

	l.previous = kind
	return &Piece{ID: l.seq.id(), Kind: kind}, nil
}

// Add generates a piece and pushes it onto the front of the lane.
func (l *Lane) Add() (*Piece, error) {
	return l.push(NoKind)
}

// AddKind pushes a piece of the given kind onto the front of the lane.
func (l *Lane) AddKind(k Kind) (*Piece, error) {
	return l.push(k)
}

func (l *Lane) push(k Kind) (*Piece, error) {
	p, err := l.generate(k)
	if err != nil {
		return nil, err
	}
	l.pieces = append(l.pieces, nil)
	copy(l.pieces[1:], l.pieces)
	l.pieces[0] = p
	return p, nil
}

// Fill adds pieces until the lane is at capacity.
func (l *Lane) Fill() {
	for !l.Full() {
		if _, err := l.Add(); err != nil {
			// Only a wildcard-only pool without a seed gets here.
			return
		}
	}
}

// MatchAndRemove pops pieces from the back while they match the attacker
// and returns how many were removed. The first mismatch swaps kinds with the
// attacker and stops the run.
func (l *Lane) MatchAndRemove(attacker *Player) int {
	removed := 0
	for len(l.pieces) > 0 {
		back := l.pieces[len(l.pieces)-1]
		if !attacker.Attack(back) {
			break
		}
		l.pieces[len(l.pieces)-1] = nil
		l.pieces = l.pieces[:len(l.pieces)-1]
		removed++
	}
	return removed
}
