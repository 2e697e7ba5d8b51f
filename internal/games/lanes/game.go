// Package lanes adapts the lane-matching engine to the arcade platform.
// It maps per-player input frames to engine commands, advances the session
// one tick per Step and draws the cross-shaped board into a core.Screen.
package lanes

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/lambdooz/internal/config"
	"github.com/vovakirdan/lambdooz/internal/core"
	"github.com/vovakirdan/lambdooz/internal/games/lanes/engine"
	"github.com/vovakirdan/lambdooz/internal/registry"
)

// Variant selects the session policy.
type Variant string

const (
	VariantMarathon Variant = "marathon"
	VariantTimed    Variant = "timed"
)

// Package-level variables for config/difficulty, set by the CLI before Reset.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// moveActions maps input actions to board directions, in the order they are
// applied within a tick.
var moveActions = []struct {
	action core.Action
	dir    core.Direction
}{
	{core.ActionLeft, core.Left},
	{core.ActionRight, core.Right},
	{core.ActionUp, core.Up},
	{core.ActionDown, core.Down},
}

// Game implements registry.Game for one lane variant.
type Game struct {
	variant Variant
	cfg     config.LanesConfig
	mode    engine.Mode
	palette map[engine.Kind]core.Color

	// Cached on every engine notification.
	tokens []engine.Token
	hud    engine.HUD
	dirty  bool

	preset config.DifficultyPreset
	paused bool
	ticks  int
}

// New creates a Marathon game.
func New() *Game {
	return &Game{variant: VariantMarathon}
}

// NewTimed creates a Timed game.
func NewTimed() *Game {
	return &Game{variant: VariantTimed}
}

func init() {
	registry.Register(string(VariantMarathon), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantTimed), func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantTimed {
		return "Timed"
	}
	return "Marathon"
}

// Description returns a one-line summary of the variant.
func (g *Game) Description() string {
	if g.variant == VariantTimed {
		return "Full board, fixed clock: clear as many pieces as you can"
	}
	return "Endless spawns that speed up every level until a lane overflows"
}

// LoadConfig resolves the configuration the next Reset will use: the config
// search order, then the difficulty preset, then validation. On any error
// the returned config is the built-in default with the preset applied, so
// callers can warn and carry on.
func LoadConfig(path, preset string) (config.LanesConfig, error) {
	cfg, loadErr := config.LoadLanes(path)

	p, presetErr := config.ParsePreset(preset)
	if presetErr != nil {
		p = config.DifficultyNormal
	}
	config.ApplyLanesPreset(&cfg, p)

	if err := cfg.Validate(); err != nil {
		cfg = config.DefaultLanesConfig()
		config.ApplyLanesPreset(&cfg, p)
		return cfg, errors.Join(loadErr, presetErr, err)
	}
	return cfg, errors.Join(loadErr, presetErr)
}

// Reset starts a new session with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	lc, _ := LoadConfig(configPath, difficultyPreset)
	g.preset = config.DifficultyNormal
	if p, err := config.ParsePreset(difficultyPreset); err == nil {
		g.preset = p
	}
	mode, err := NewMode(g.variant, lc, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		// LoadConfig only returns validated configs.
		panic(err)
	}
	g.start(lc, mode)
}

// start wires a session into the game and primes the render cache.
func (g *Game) start(lc config.LanesConfig, mode engine.Mode) {
	g.cfg = lc
	g.mode = mode
	g.paused = false
	g.ticks = 0
	g.palette = make(map[engine.Kind]core.Color)
	for i, k := range lc.Board.ConcreteKinds() {
		if _, ok := g.palette[engine.Kind(k)]; !ok {
			g.palette[engine.Kind(k)] = core.PaletteColor(i)
		}
	}

	mode.Observe(g.refresh)
	g.refresh()
	g.dirty = false
}

// NewMode builds the engine session for a variant.
func NewMode(v Variant, lc config.LanesConfig, rng *rand.Rand) (engine.Mode, error) {
	board := BoardConfig(lc.Board)
	switch v {
	case VariantMarathon:
		return engine.NewMarathon(board, engine.MarathonConfig{
			SpawnInterval: lc.Marathon.SpawnInterval,
			Acceleration:  lc.Marathon.Acceleration,
		}, rng)
	case VariantTimed:
		return engine.NewTimed(board, engine.TimedConfig{
			TickInterval: lc.Timed.TickInterval,
			TimeBudget:   lc.Timed.TimeBudget,
		}, rng)
	default:
		return nil, fmt.Errorf("lanes: unknown variant %q", v)
	}
}

// BoardConfig converts YAML board settings into the engine form.
func BoardConfig(b config.BoardSettings) engine.BoardConfig {
	kinds := make([]engine.Kind, len(b.Kinds))
	for i, k := range b.Kinds {
		kinds[i] = engine.Kind(k)
	}
	return engine.BoardConfig{
		PlayerWidth:  b.PlayerWidth,
		PlayerHeight: b.PlayerHeight,
		LengthX:      b.LengthX,
		LengthY:      b.LengthY,
		Players:      b.Players,
		Kinds:        kinds,
	}
}

// refresh is the engine observer: it re-reads everything the renderer needs.
func (g *Game) refresh() {
	g.tokens = g.mode.Board().Tokens()
	g.hud = g.mode.HUD()
	g.dirty = true
}

// Step applies one tick of input and advances the session by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.mode.Over() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.dirty = true
	}
	if g.paused {
		return g.result(0)
	}

	g.ticks++
	cleared := 0
	for seat := 0; seat < g.mode.Board().Players(); seat++ {
		frame := in.Player(core.PlayerID(seat))
		for _, m := range moveActions {
			if frame.Has(m.action) {
				_, err := g.mode.Move(seat, m.dir)
				must(err)
			}
		}
		if frame.Has(core.ActionAttack) {
			removed, err := g.mode.Attack(seat)
			must(err)
			cleared += removed
		}
	}

	g.mode.Advance(1)
	return g.result(cleared)
}

// must panics on integration errors: a seat or lane index the engine does
// not know about means the adapter and the board disagree.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("lanes: %v", err))
	}
}

func (g *Game) result(cleared int) core.StepResult {
	changed := g.dirty
	g.dirty = false
	return core.StepResult{
		State:   g.State(),
		Cleared: cleared,
		Changed: changed,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.hud.Score,
		GameOver: g.hud.Status == engine.StatusOver,
		Paused:   g.paused,
	}
}

// HUD returns the last summary the engine reported.
func (g *Game) HUD() engine.HUD {
	return g.hud
}

// Tokens returns the last board enumeration the engine reported.
func (g *Game) Tokens() []engine.Token {
	return g.tokens
}

// Config returns the configuration of the running session.
func (g *Game) Config() config.LanesConfig {
	return g.cfg
}

// Ticks returns the number of unpaused ticks played.
func (g *Game) Ticks() int {
	return g.ticks
}

// Stats implements registry.Reporter.
func (g *Game) Stats() core.RunStats {
	return core.RunStats{
		Level:      g.hud.Level,
		Clears:     g.hud.Clears,
		Ticks:      g.ticks,
		Difficulty: string(g.preset),
	}
}
