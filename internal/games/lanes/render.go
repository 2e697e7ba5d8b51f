package lanes

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/lambdooz/internal/core"
	"github.com/vovakirdan/lambdooz/internal/games/lanes/engine"
)

// Layout constants. Each board cell is two columns wide so the cross looks
// roughly square in a terminal.
const (
	cellW     = 2
	hudHeight = 2 // Score line + hold line
	footerH   = 1 // Controls hint
)

// Visual characters for rendering
const (
	LaneChar  = '·'
	EmptyKind = '?'
)

var facingGlyph = map[core.Direction]rune{
	core.Left:  '◀',
	core.Right: '▶',
	core.Up:    '▲',
	core.Down:  '▼',
}

var playerColors = []core.Color{core.ColorBrightWhite, core.ColorOrange}

// RequiredSize returns the smallest screen that fits the board, HUD and
// footer for the current configuration.
func (g *Game) RequiredSize() (w, h int) {
	b := g.mode.Board()
	return b.Width()*cellW + 2, hudHeight + b.Height() + 2 + footerH
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	reqW, reqH := g.RequiredSize()
	if dst.Width() < reqW || dst.Height() < reqH {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d, have %dx%d", reqW, reqH, dst.Width(), dst.Height()))
		return
	}

	b := g.mode.Board()
	frame := core.NewRect((dst.Width()-reqW)/2, hudHeight, reqW, b.Height()+2)
	dst.DrawBox(frame, core.ColorGray)

	// cellAt converts external board coordinates (y up) to screen coordinates.
	cellAt := func(p core.Vector2) (int, int) {
		return frame.X + 1 + p.X*cellW, frame.Y + 1 + (b.Height() - 1 - p.Y)
	}

	g.drawLanes(dst, b, cellAt)

	for _, tok := range g.tokens {
		if tok.IsPlayer {
			continue
		}
		x, y := cellAt(tok.Pos)
		dst.SetColor(x, y, g.glyph(tok.Kind), g.color(tok.Kind))
	}
	// Players last so they stay on top.
	seat := 0
	for _, tok := range g.tokens {
		if !tok.IsPlayer {
			continue
		}
		x, y := cellAt(tok.Pos)
		dst.SetColor(x, y, facingGlyph[tok.Facing], playerColors[seat%len(playerColors)])
		dst.SetColor(x+1, y, g.glyph(tok.Kind), g.color(tok.Kind))
		seat++
	}

	g.drawHUD(dst)
	g.drawFooter(dst, b.Players())

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.hud.Status == engine.StatusOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.hud.Score))
	}
}

// drawLanes marks every lane cell of the cross so empty slots stay visible.
func (g *Game) drawLanes(dst *core.Screen, b *engine.Board, cellAt func(core.Vector2) (int, int)) {
	origin := b.PlayerOrigin()
	cfg := b.Config()
	for ey := 0; ey < b.Height(); ey++ {
		for ex := 0; ex < b.Width(); ex++ {
			inColumn := ex >= origin.X && ex < origin.X+cfg.PlayerWidth
			inRow := ey >= origin.Y && ey < origin.Y+cfg.PlayerHeight
			if !inColumn && !inRow {
				continue // corner outside the cross
			}
			if inColumn && inRow {
				continue // player area
			}
			x, y := cellAt(core.V(ex, ey))
			dst.SetColor(x, y, LaneChar, core.ColorGray)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	var text string
	if g.variant == VariantTimed {
		text = fmt.Sprintf(" %s  Score: %d  Time: %d ", g.Title(), g.hud.Score, g.hud.TimeRemaining)
	} else {
		text = fmt.Sprintf(" %s  Score: %d  Level: %d  Quota: %d ", g.Title(), g.hud.Score, g.hud.Level, g.hud.Quota)
	}
	dst.DrawText(2, 0, text)

	x := 3
	for i, tok := range g.tokens {
		if !tok.IsPlayer {
			continue
		}
		label := fmt.Sprintf("P%d holds ", i+1)
		dst.DrawText(x, 1, label)
		x += utf8.RuneCountInString(label)
		dst.SetColor(x, 1, g.glyph(tok.Kind), g.color(tok.Kind))
		x += 3
	}
}

func (g *Game) drawFooter(dst *core.Screen, players int) {
	hint := "arrows move  space attack  p pause  q quit"
	if players > 1 {
		hint = "P1 arrows+space  P2 wasd+f  p pause  q quit"
	}
	dst.DrawTextColor(2, dst.Height()-1, hint, core.ColorGray)
}

// glyph is the character shown for a kind: its first rune.
func (g *Game) glyph(k engine.Kind) rune {
	r, _ := utf8.DecodeRuneInString(string(k))
	if r == utf8.RuneError {
		return EmptyKind
	}
	return r
}

func (g *Game) color(k engine.Kind) core.Color {
	if c, ok := g.palette[k]; ok {
		return c
	}
	return core.ColorWhite
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()
	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	// Calculate box dimensions
	boxW := core.Clamp(max(titleLen, subtitleLen)+4, 0, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorDefault)

	// Draw text
	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
