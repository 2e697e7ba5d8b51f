package engine

import (
	"errors"
	"testing"

	"github.com/vovakirdan/lambdooz/internal/core"
)

func squareConfig() BoardConfig {
	return BoardConfig{
		PlayerWidth:  2,
		PlayerHeight: 2,
		LengthX:      2,
		LengthY:      2,
		Kinds:        knights,
	}
}

func newTestBoard(t *testing.T, cfg BoardConfig) *Board {
	t.Helper()
	b, err := NewBoard(cfg, testRNG())
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	return b
}

func TestBoardOffset(t *testing.T) {
	b := newTestBoard(t, squareConfig())
	locals := []core.Vector2{core.V(0, 0), core.V(1, 0), core.V(0, 1), core.V(1, 1)}

	tests := []struct {
		dir  core.Direction
		want []core.Vector2
	}{
		{core.Left, []core.Vector2{core.V(0, 2), core.V(0, 3), core.V(1, 2), core.V(1, 3)}},
		{core.Right, []core.Vector2{core.V(5, 2), core.V(5, 3), core.V(4, 2), core.V(4, 3)}},
		{core.Up, []core.Vector2{core.V(2, 5), core.V(3, 5), core.V(2, 4), core.V(3, 4)}},
		{core.Down, []core.Vector2{core.V(2, 0), core.V(3, 0), core.V(2, 1), core.V(3, 1)}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			for i, local := range locals {
				if got := b.Offset(tc.dir, local); got != tc.want[i] {
					t.Errorf("Offset(%s, %s) = %s, expected %s", tc.dir, local, got, tc.want[i])
				}
			}
		})
	}
}

func TestBoardDimensions(t *testing.T) {
	b := newTestBoard(t, BoardConfig{
		PlayerWidth: 4, PlayerHeight: 3, LengthX: 6, LengthY: 5, Kinds: knights,
	})

	if b.Width() != 16 || b.Height() != 13 {
		t.Errorf("Board size = %dx%d, expected 16x13", b.Width(), b.Height())
	}
	if b.PlayerOrigin() != core.V(6, 5) {
		t.Errorf("PlayerOrigin() = %s, expected (6, 5)", b.PlayerOrigin())
	}

	// Left/Right lanes follow the area height, Up/Down the width.
	wantWidth := map[core.Direction]int{core.Left: 3, core.Right: 3, core.Up: 4, core.Down: 4}
	wantCap := map[core.Direction]int{core.Left: 6, core.Right: 6, core.Up: 5, core.Down: 5}
	for _, d := range core.Directions {
		s := b.Side(d)
		if s.Width() != wantWidth[d] {
			t.Errorf("%s side width = %d, expected %d", d, s.Width(), wantWidth[d])
		}
		if s.Lane(0).Cap() != wantCap[d] {
			t.Errorf("%s lane capacity = %d, expected %d", d, s.Lane(0).Cap(), wantCap[d])
		}
	}
}

func TestBoardMovementBounds(t *testing.T) {
	cfg := squareConfig()
	cfg.PlayerWidth = 3
	b := newTestBoard(t, cfg)

	tests := []struct {
		dir  core.Direction
		want core.Vector2
	}{
		{core.Right, core.V(2, 0)},
		{core.Up, core.V(2, 1)},
		{core.Left, core.V(0, 1)},
		{core.Down, core.V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			for i := 0; i < 10; i++ {
				if _, err := b.Move(0, tc.dir); err != nil {
					t.Fatalf("Move() failed: %v", err)
				}
				p, _ := b.Player(0)
				if !b.Inside(p.Pos) {
					t.Fatalf("Player left the area: %s", p.Pos)
				}
			}

			moved, err := b.Move(0, tc.dir)
			if err != nil {
				t.Fatalf("Move() failed: %v", err)
			}
			if moved {
				t.Error("Move() into the wall should fail")
			}
			p, _ := b.Player(0)
			if p.Pos != tc.want {
				t.Errorf("Position = %s, expected %s", p.Pos, tc.want)
			}
		})
	}
}

func TestBoardRejectedMoveStillTurns(t *testing.T) {
	b := newTestBoard(t, squareConfig())

	moved, err := b.Move(0, core.Down)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if moved {
		t.Fatal("Move(Down) from (0,0) should be rejected")
	}

	p, _ := b.Player(0)
	if p.Facing != core.Down {
		t.Errorf("Facing = %s, expected down", p.Facing)
	}
	if p.Pos != core.V(0, 0) {
		t.Errorf("Position = %s, expected (0, 0)", p.Pos)
	}
}

func TestBoardPlayerStart(t *testing.T) {
	cfg := squareConfig()
	cfg.Kinds = []Kind{Wildcard, "galahad", "arthur"}
	cfg.Players = 2
	b := newTestBoard(t, cfg)

	if b.Players() != 2 {
		t.Fatalf("Players() = %d, expected 2", b.Players())
	}
	for i := 0; i < 2; i++ {
		p, err := b.Player(i)
		if err != nil {
			t.Fatalf("Player(%d) failed: %v", i, err)
		}
		if p.Kind != "galahad" || p.Facing != core.Left || p.Pos != core.V(0, 0) {
			t.Errorf("Player %d = %+v, expected galahad at (0,0) facing left", i, p)
		}
	}
}

func TestBoardPlayerNotFound(t *testing.T) {
	b := newTestBoard(t, squareConfig())

	if _, err := b.Move(1, core.Left); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("Move(1) = %v, expected ErrPlayerNotFound", err)
	}
	if _, err := b.Attack(-1); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("Attack(-1) = %v, expected ErrPlayerNotFound", err)
	}
	if _, err := b.Player(3); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("Player(3) = %v, expected ErrPlayerNotFound", err)
	}
	if _, err := b.Move(0, core.Direction(9)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Move(0, 9) = %v, expected ErrInvalidDirection", err)
	}
}

func TestBoardAttack(t *testing.T) {
	b := newTestBoard(t, squareConfig())
	add := func(d core.Direction, lane int, k Kind) {
		t.Helper()
		if _, err := b.Side(d).Lane(lane).AddKind(k); err != nil {
			t.Fatalf("AddKind() failed: %v", err)
		}
	}

	add(core.Left, 0, "arthur")
	add(core.Left, 0, "arthur")
	add(core.Left, 1, "arthur")

	// Player holds arthur at (0,0) facing left: lane index is y = 0.
	removed, err := b.Attack(0)
	if err != nil {
		t.Fatalf("Attack() failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("Attack() removed %d, expected 2", removed)
	}
	if b.Side(core.Left).Lane(1).Len() != 1 {
		t.Error("Attack() should not touch other lanes")
	}

	p, _ := b.Player(0)
	if p.Facing != core.Right {
		t.Errorf("Facing after attack = %s, expected right", p.Facing)
	}

	// Facing right now, against an empty lane.
	removed, err = b.Attack(0)
	if err != nil {
		t.Fatalf("Attack() failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("Attack() on empty lane removed %d", removed)
	}
	p, _ = b.Player(0)
	if p.Facing != core.Left {
		t.Errorf("Facing after second attack = %s, expected left", p.Facing)
	}
}

func TestBoardAttackVerticalUsesX(t *testing.T) {
	b := newTestBoard(t, squareConfig())
	if _, err := b.Side(core.Up).Lane(0).AddKind("arthur"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Side(core.Up).Lane(1).AddKind("arthur"); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Move(0, core.Right); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Move(0, core.Up); err != nil {
		t.Fatal(err)
	}

	removed, err := b.Attack(0)
	if err != nil {
		t.Fatalf("Attack() failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Attack() removed %d, expected 1", removed)
	}
	if b.Side(core.Up).Lane(1).Len() != 0 || b.Side(core.Up).Lane(0).Len() != 1 {
		t.Error("Attack() from x=1 should clear Up lane 1 only")
	}

	p, _ := b.Player(0)
	if p.Facing != core.Down {
		t.Errorf("Facing after attack = %s, expected down", p.Facing)
	}
}

func TestBoardSpawnNeverRepeatsSide(t *testing.T) {
	b := newTestBoard(t, BoardConfig{
		PlayerWidth: 4, PlayerHeight: 4, LengthX: 50, LengthY: 50, Kinds: knights,
	})

	if _, ok := b.LastSpawn(); ok {
		t.Fatal("LastSpawn() should report no spawn yet")
	}

	var prev core.Direction
	for i := 0; i < 100; i++ {
		if err := b.Add(); err != nil {
			t.Fatalf("Add() #%d failed: %v", i, err)
		}
		d, ok := b.LastSpawn()
		if !ok {
			t.Fatal("LastSpawn() should report a spawn")
		}
		if i > 0 && d == prev {
			t.Fatalf("Spawn #%d repeated side %s", i, d)
		}
		prev = d
	}
	if b.Len() != 100 {
		t.Errorf("Len() = %d, expected 100", b.Len())
	}
}

func TestBoardOverflow(t *testing.T) {
	b := newTestBoard(t, BoardConfig{
		PlayerWidth: 1, PlayerHeight: 1, LengthX: 1, LengthY: 1, Kinds: knights,
	})

	var err error
	adds := 0
	for adds < 10 {
		if err = b.Add(); err != nil {
			break
		}
		adds++
	}

	if !errors.Is(err, ErrLaneFull) {
		t.Fatalf("Expected ErrLaneFull, got %v", err)
	}
	if adds > 4 || b.Len() > 4 {
		t.Errorf("Board holds at most 4 pieces, got %d after %d adds", b.Len(), adds)
	}
}

func TestBoardFill(t *testing.T) {
	b := newTestBoard(t, BoardConfig{
		PlayerWidth: 4, PlayerHeight: 3, LengthX: 6, LengthY: 5, Kinds: knights,
	})
	b.Fill()

	want := 2*3*6 + 2*4*5
	if b.Len() != want {
		t.Errorf("Len() after Fill() = %d, expected %d", b.Len(), want)
	}
}

func TestBoardTokens(t *testing.T) {
	b := newTestBoard(t, squareConfig())
	b.Fill()

	tokens := b.Tokens()
	if len(tokens) != 1+b.Len() {
		t.Fatalf("Tokens() returned %d, expected %d", len(tokens), 1+b.Len())
	}

	if !tokens[0].IsPlayer || tokens[0].Pos != b.PlayerOrigin() {
		t.Errorf("First token should be the player at the origin, got %+v", tokens[0])
	}

	origin := b.PlayerOrigin()
	seen := make(map[core.Vector2]bool)
	ids := make(map[int]bool)
	for _, tok := range tokens[1:] {
		if tok.IsPlayer {
			t.Fatalf("Unexpected player token %+v", tok)
		}
		if tok.Pos.X < 0 || tok.Pos.X >= b.Width() || tok.Pos.Y < 0 || tok.Pos.Y >= b.Height() {
			t.Errorf("Token outside board: %s", tok.Pos)
		}
		if b.Inside(tok.Pos.Sub(origin)) {
			t.Errorf("Piece inside the player area: %s", tok.Pos)
		}
		if seen[tok.Pos] {
			t.Errorf("Two pieces share %s", tok.Pos)
		}
		seen[tok.Pos] = true
		if ids[tok.ID] {
			t.Errorf("Duplicate piece ID %d", tok.ID)
		}
		ids[tok.ID] = true
	}
}

func TestBoardConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BoardConfig)
		want   error
	}{
		{"valid", func(*BoardConfig) {}, nil},
		{"zero width", func(c *BoardConfig) { c.PlayerWidth = 0 }, ErrInvalidConfig},
		{"negative height", func(c *BoardConfig) { c.PlayerHeight = -1 }, ErrInvalidConfig},
		{"zero length", func(c *BoardConfig) { c.LengthY = 0 }, ErrInvalidConfig},
		{"negative players", func(c *BoardConfig) { c.Players = -2 }, ErrInvalidConfig},
		{"no kinds", func(c *BoardConfig) { c.Kinds = nil }, ErrEmptyPool},
		{"wildcards only", func(c *BoardConfig) { c.Kinds = []Kind{Wildcard} }, ErrNoKinds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := squareConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}
