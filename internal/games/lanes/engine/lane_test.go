package engine

import (
	"errors"
	"math/rand"
	"testing"
)

var knights = []Kind{"arthur", "lancelot", "galahad"}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func newFilledLane(t *testing.T, capacity int) *Lane {
	t.Helper()
	l, err := NewLane(capacity, knights, testRNG())
	if err != nil {
		t.Fatalf("NewLane() failed: %v", err)
	}
	l.Fill()
	return l
}

func TestPlayerAttack(t *testing.T) {
	p := Player{Piece{Kind: "test type"}}

	same := &Piece{Kind: "test type"}
	if !p.Attack(same) {
		t.Error("Attacking the same kind should match")
	}

	other := &Piece{Kind: "not the same type"}
	if p.Attack(other) {
		t.Error("Attacking a different kind should not match")
	}
	if p.Kind != "not the same type" || other.Kind != "test type" {
		t.Errorf("Kinds should be swapped, player=%q piece=%q", p.Kind, other.Kind)
	}
}

func TestLaneCapacity(t *testing.T) {
	l := newFilledLane(t, 50)

	if l.Len() != 50 {
		t.Fatalf("Fill() should reach capacity, got %d", l.Len())
	}
	if !l.Full() {
		t.Error("Full() should be true after Fill()")
	}

	if _, err := l.Add(); !errors.Is(err, ErrLaneFull) {
		t.Errorf("Add() on a full lane = %v, expected ErrLaneFull", err)
	}
	if _, err := l.Generate(); !errors.Is(err, ErrLaneFull) {
		t.Errorf("Generate() on a full lane = %v, expected ErrLaneFull", err)
	}
	if l.Len() != 50 {
		t.Errorf("Failed Add() should not change length, got %d", l.Len())
	}
}

func TestLaneOnlyAddsPoolKinds(t *testing.T) {
	l := newFilledLane(t, 50)

	allowed := make(map[Kind]bool)
	for _, k := range knights {
		allowed[k] = true
	}
	for _, p := range l.Pieces() {
		if !allowed[p.Kind] {
			t.Errorf("Generated kind %q is not in the pool", p.Kind)
		}
	}
}

func TestLaneWildcardRepeatsPrevious(t *testing.T) {
	l, err := NewLane(50, []Kind{Wildcard}, testRNG())
	if err != nil {
		t.Fatalf("NewLane() failed: %v", err)
	}
	l.SetPrevious("bedivere")

	for i := 0; i < 50; i++ {
		if _, err := l.Add(); err != nil {
			t.Fatalf("Add() #%d failed: %v", i, err)
		}
	}
	for _, p := range l.Pieces() {
		if p.Kind != "bedivere" {
			t.Errorf("Wildcard pool should repeat the previous kind, got %q", p.Kind)
		}
	}
}

func TestLaneWildcardMixedPool(t *testing.T) {
	l, err := NewLane(200, []Kind{"arthur", Wildcard, Wildcard}, testRNG())
	if err != nil {
		t.Fatalf("NewLane() failed: %v", err)
	}
	l.Fill()

	// The only concrete kind is arthur, so wildcards can only repeat it.
	for _, p := range l.Pieces() {
		if p.Kind != "arthur" {
			t.Fatalf("Expected only arthur, got %q", p.Kind)
		}
	}
	if l.Previous() != "arthur" {
		t.Errorf("Previous() = %q, expected arthur", l.Previous())
	}
}

func TestLaneWildcardWithoutSeed(t *testing.T) {
	l, err := NewLane(5, []Kind{Wildcard}, testRNG())
	if err != nil {
		t.Fatalf("NewLane() failed: %v", err)
	}

	if _, err := l.Add(); !errors.Is(err, ErrNoKinds) {
		t.Errorf("Add() = %v, expected ErrNoKinds", err)
	}

	// Fill gives up quietly instead of looping.
	l.Fill()
	if l.Len() != 0 {
		t.Errorf("Fill() with nothing to generate should leave the lane empty, got %d", l.Len())
	}
}

func TestLaneExplicitKind(t *testing.T) {
	l, err := NewLane(5, knights, testRNG())
	if err != nil {
		t.Fatalf("NewLane() failed: %v", err)
	}

	p, err := l.AddKind("mordred")
	if err != nil {
		t.Fatalf("AddKind() failed: %v", err)
	}
	if p.Kind != "mordred" {
		t.Errorf("AddKind() kind = %q, expected mordred", p.Kind)
	}
	if l.Previous() != "mordred" {
		t.Errorf("Explicit kinds should update Previous(), got %q", l.Previous())
	}
}

func TestLaneFrontIsNewest(t *testing.T) {
	l, err := NewLane(5, knights, testRNG())
	if err != nil {
		t.Fatalf("NewLane() failed: %v", err)
	}
	first, _ := l.AddKind("arthur")
	second, _ := l.AddKind("lancelot")

	pieces := l.Pieces()
	if pieces[0].ID != second.ID || pieces[1].ID != first.ID {
		t.Errorf("Pieces() should list newest first, got %+v", pieces)
	}
	if first.ID == second.ID {
		t.Error("Piece IDs should be unique")
	}
}

func TestLaneMatchConservation(t *testing.T) {
	l := newFilledLane(t, 50)
	player := &Player{Piece{Kind: knights[0]}}

	removed := l.MatchAndRemove(player)
	if removed+l.Len() != 50 {
		t.Errorf("removed (%d) + remaining (%d) should equal 50", removed, l.Len())
	}
}

func TestLaneMatchNothing(t *testing.T) {
	l := newFilledLane(t, 50)
	player := &Player{Piece{Kind: "not in this picture"}}

	if removed := l.MatchAndRemove(player); removed != 0 {
		t.Errorf("MatchAndRemove() = %d, expected 0", removed)
	}
	if l.Len() != 50 {
		t.Errorf("Lane should keep all 50 pieces, got %d", l.Len())
	}
}

func TestLaneMatchStopsAtMismatch(t *testing.T) {
	l, err := NewLane(5, knights, testRNG())
	if err != nil {
		t.Fatalf("NewLane() failed: %v", err)
	}
	// Back to front: arthur, arthur, lancelot, arthur
	for _, k := range []Kind{"arthur", "arthur", "lancelot", "arthur"} {
		if _, err := l.AddKind(k); err != nil {
			t.Fatalf("AddKind() failed: %v", err)
		}
	}

	player := &Player{Piece{Kind: "arthur"}}
	if removed := l.MatchAndRemove(player); removed != 2 {
		t.Fatalf("MatchAndRemove() = %d, expected 2", removed)
	}

	// The mismatch swapped kinds and the run stopped there.
	if player.Kind != "lancelot" {
		t.Errorf("Player kind = %q, expected lancelot", player.Kind)
	}
	pieces := l.Pieces()
	if len(pieces) != 2 || pieces[1].Kind != "arthur" || pieces[0].Kind != "arthur" {
		t.Errorf("Unexpected remaining pieces: %+v", pieces)
	}
}

func TestMatchOnEmptyLane(t *testing.T) {
	l, err := NewLane(5, knights, testRNG())
	if err != nil {
		t.Fatalf("NewLane() failed: %v", err)
	}
	player := &Player{Piece{Kind: "arthur"}}
	if removed := l.MatchAndRemove(player); removed != 0 {
		t.Errorf("MatchAndRemove() on empty lane = %d, expected 0", removed)
	}
	if player.Kind != "arthur" {
		t.Errorf("Empty lane should not change the player, got %q", player.Kind)
	}
}

func TestNewLaneErrors(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pool     []Kind
		want     error
	}{
		{"zero capacity", 0, knights, ErrInvalidConfig},
		{"negative capacity", -3, knights, ErrInvalidConfig},
		{"empty pool", 5, nil, ErrEmptyPool},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLane(tc.capacity, tc.pool, testRNG())
			if !errors.Is(err, tc.want) {
				t.Errorf("NewLane() error = %v, expected %v", err, tc.want)
			}
		})
	}
}
