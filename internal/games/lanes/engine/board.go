package engine

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/lambdooz/internal/core"
)

// BoardConfig describes the board geometry and the generation pool.
type BoardConfig struct {
	PlayerWidth  int    // Player area width; lanes per Up/Down side
	PlayerHeight int    // Player area height; lanes per Left/Right side
	LengthX      int    // Capacity of Left/Right lanes
	LengthY      int    // Capacity of Up/Down lanes
	Players      int    // Number of players sharing the area (0 means 1)
	Kinds        []Kind // Generation pool, may contain Wildcard entries
}

// Validate checks dimensions and the pool.
func (c BoardConfig) Validate() error {
	if c.PlayerWidth <= 0 || c.PlayerHeight <= 0 {
		return fmt.Errorf("%w: player area %dx%d", ErrInvalidConfig, c.PlayerWidth, c.PlayerHeight)
	}
	if c.LengthX <= 0 || c.LengthY <= 0 {
		return fmt.Errorf("%w: lane length %dx%d", ErrInvalidConfig, c.LengthX, c.LengthY)
	}
	if c.Players < 0 {
		return fmt.Errorf("%w: %d players", ErrInvalidConfig, c.Players)
	}
	if len(c.Kinds) == 0 {
		return ErrEmptyPool
	}
	if firstConcrete(c.Kinds) == NoKind {
		return ErrNoKinds
	}
	return nil
}

// seat is a player together with its place on the board.
type seat struct {
	player Player
	pos    core.Vector2
	facing core.Direction
}

// PlayerInfo is a read-only view of a player.
type PlayerInfo struct {
	ID     int
	Kind   Kind
	Pos    core.Vector2 // Inside the player area
	Facing core.Direction
}

// Token is one renderable item in external board coordinates.
type Token struct {
	ID       int
	Kind     Kind
	IsPlayer bool
	Pos      core.Vector2
	Facing   core.Direction // Player facing, or the side a piece sits on
}

// Board composes four sides around a rectangular player area.
//
// External coordinates for a 2x2 player area with lanes of length 2:
//
//	        (2,5) (3,5)
//	        (2,4) (3,4)
//	(0,3) (1,3) [2,3] [3,3] (4,3) (5,3)
//	(0,2) (1,2) [2,2] [3,2] (4,2) (5,2)
//	        (2,1) (3,1)
//	        (2,0) (3,0)
//
// Left/Right sides are transposed so their lanes run horizontally, and each
// side's depth 0 sits on the outer edge of the board.
type Board struct {
	cfg       BoardConfig
	sides     [4]*Side
	offsets   [4]func(core.Vector2) core.Vector2
	seats     []*seat
	lastSpawn core.Direction
	spawned   bool
	rng       *rand.Rand
}

// NewBoard creates an empty board. Players start at (0,0) facing Left and
// holding the first concrete kind of the pool.
func NewBoard(cfg BoardConfig, rng *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Players == 0 {
		cfg.Players = 1
	}

	b := &Board{
		cfg: cfg,
		rng: rng,
	}
	seq := &sequence{}

	widths := [4]int{
		core.Left:  cfg.PlayerHeight,
		core.Right: cfg.PlayerHeight,
		core.Up:    cfg.PlayerWidth,
		core.Down:  cfg.PlayerWidth,
	}
	lengths := [4]int{
		core.Left:  cfg.LengthX,
		core.Right: cfg.LengthX,
		core.Up:    cfg.LengthY,
		core.Down:  cfg.LengthY,
	}
	for _, d := range core.Directions {
		side, err := newSide(widths[d], lengths[d], cfg.Kinds, rng, seq)
		if err != nil {
			return nil, fmt.Errorf("%s side: %w", d, err)
		}
		b.sides[d] = side
	}

	lx, ly := cfg.LengthX, cfg.LengthY
	w, h := cfg.PlayerWidth, cfg.PlayerHeight
	b.offsets = [4]func(core.Vector2) core.Vector2{
		core.Left: func(p core.Vector2) core.Vector2 {
			return p.Transpose().Add(core.V(0, ly))
		},
		core.Right: func(p core.Vector2) core.Vector2 {
			return p.Transpose().ReflectX().Add(core.V(2*lx+w-1, ly))
		},
		core.Up: func(p core.Vector2) core.Vector2 {
			return p.ReflectY().Add(core.V(lx, 2*ly+h-1))
		},
		core.Down: func(p core.Vector2) core.Vector2 {
			return p.Add(core.V(lx, 0))
		},
	}

	start := firstConcrete(cfg.Kinds)
	for i := 0; i < cfg.Players; i++ {
		b.seats = append(b.seats, &seat{
			player: Player{Piece{ID: seq.id(), Kind: start}},
			facing: core.Left,
		})
	}
	return b, nil
}

func firstConcrete(kinds []Kind) Kind {
	for _, k := range kinds {
		if k.Concrete() {
			return k
		}
	}
	return NoKind
}

// Config returns the configuration the board was built with.
func (b *Board) Config() BoardConfig {
	return b.cfg
}

// Width returns the width of the external coordinate space.
func (b *Board) Width() int {
	return 2*b.cfg.LengthX + b.cfg.PlayerWidth
}

// Height returns the height of the external coordinate space.
func (b *Board) Height() int {
	return 2*b.cfg.LengthY + b.cfg.PlayerHeight
}

// Side returns the side in direction d.
func (b *Board) Side(d core.Direction) *Side {
	if !d.Valid() {
		return nil
	}
	return b.sides[d]
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	n := 0
	for _, s := range b.sides {
		n += s.Len()
	}
	return n
}

// Offset maps a side-local coordinate into external board coordinates.
func (b *Board) Offset(d core.Direction, internal core.Vector2) core.Vector2 {
	return b.offsets[d](internal)
}

// PlayerOrigin is the external coordinate of player-area position (0,0).
func (b *Board) PlayerOrigin() core.Vector2 {
	return core.V(b.cfg.LengthX, b.cfg.LengthY)
}

// Inside reports whether pos lies within the player area.
func (b *Board) Inside(pos core.Vector2) bool {
	return core.NewRect(0, 0, b.cfg.PlayerWidth, b.cfg.PlayerHeight).ContainsVec(pos)
}

// Players returns the number of players.
func (b *Board) Players() int {
	return len(b.seats)
}

// Player returns a view of player i.
func (b *Board) Player(i int) (PlayerInfo, error) {
	s, err := b.seat(i)
	if err != nil {
		return PlayerInfo{}, err
	}
	return PlayerInfo{ID: s.player.ID, Kind: s.player.Kind, Pos: s.pos, Facing: s.facing}, nil
}

func (b *Board) seat(i int) (*seat, error) {
	if i < 0 || i >= len(b.seats) {
		return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, i)
	}
	return b.seats[i], nil
}

// Move turns player i toward d and steps one cell if that stays inside the
// player area. The facing changes even when the step is rejected.
func (b *Board) Move(i int, d core.Direction) (bool, error) {
	s, err := b.seat(i)
	if err != nil {
		return false, err
	}
	if !d.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}

	s.facing = d
	target := s.pos.Add(d.Unit())
	if !b.Inside(target) {
		return false, nil
	}
	s.pos = target
	return true, nil
}

// Add spawns one piece on a random side other than the one used last time.
// Returns ErrLaneFull when the chosen lane overflows.
func (b *Board) Add() error {
	candidates := make([]core.Direction, 0, len(core.Directions))
	for _, d := range core.Directions {
		if b.spawned && d == b.lastSpawn {
			continue
		}
		candidates = append(candidates, d)
	}

	d := candidates[b.rng.Intn(len(candidates))]
	b.lastSpawn = d
	b.spawned = true

	if err := b.sides[d].Add(); err != nil {
		return fmt.Errorf("%s side: %w", d, err)
	}
	return nil
}

// LastSpawn returns the side of the most recent spawn and whether any spawn happened.
func (b *Board) LastSpawn() (core.Direction, bool) {
	return b.lastSpawn, b.spawned
}

// Attack fires player i at the lane it faces and returns the number of pieces
// removed. The player ends up facing the opposite way.
func (b *Board) Attack(i int) (int, error) {
	s, err := b.seat(i)
	if err != nil {
		return 0, err
	}

	d := s.facing
	side := b.sides[d]
	s.facing = d.Opposite()

	lane := s.pos.X
	if d.Horizontal() {
		lane = s.pos.Y
	}
	return side.Intersect(lane, &s.player)
}

// Fill fills every side to capacity.
func (b *Board) Fill() {
	for _, s := range b.sides {
		s.Fill()
	}
}

// Tokens enumerates players and then every piece, in external coordinates.
// Pieces are listed side by side (Left, Right, Up, Down).
func (b *Board) Tokens() []Token {
	tokens := make([]Token, 0, len(b.seats)+b.Len())
	origin := b.PlayerOrigin()
	for _, s := range b.seats {
		tokens = append(tokens, Token{
			ID:       s.player.ID,
			Kind:     s.player.Kind,
			IsPlayer: true,
			Pos:      s.pos.Add(origin),
			Facing:   s.facing,
		})
	}
	for _, d := range core.Directions {
		for _, c := range b.sides[d].Cells() {
			tokens = append(tokens, Token{
				ID:     c.Piece.ID,
				Kind:   c.Piece.Kind,
				Pos:    b.Offset(d, c.Pos),
				Facing: d,
			})
		}
	}
	return tokens
}
