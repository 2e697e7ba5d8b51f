package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lambdooz/internal/core"
)

// binding is the seat and action a key produces during play.
type binding struct {
	player core.PlayerID
	action core.Action
}

// playBindings holds the hot-seat layout: arrows+space for the first seat,
// WASD+F for the second. Global keys are reported on Player1.
var playBindings = map[string]binding{
	"left":  {core.Player1, core.ActionLeft},
	"right": {core.Player1, core.ActionRight},
	"up":    {core.Player1, core.ActionUp},
	"down":  {core.Player1, core.ActionDown},
	" ":     {core.Player1, core.ActionAttack},

	"a": {core.Player2, core.ActionLeft},
	"d": {core.Player2, core.ActionRight},
	"w": {core.Player2, core.ActionUp},
	"s": {core.Player2, core.ActionDown},
	"f": {core.Player2, core.ActionAttack},

	"p":     {core.Player1, core.ActionPause},
	"r":     {core.Player1, core.ActionRestart},
	"b":     {core.Player1, core.ActionBack},
	"esc":   {core.Player1, core.ActionBack},
	"enter": {core.Player1, core.ActionConfirm},
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]binding
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: playBindings}
}

// MapKey translates a key message to a seat and action.
// Returns ActionNone for unbound keys, and isQuit for quit requests.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.Player1, core.ActionQuit, true
	}

	if b, ok := km.bindings[key]; ok {
		return b.player, b.action, false
	}
	return core.Player1, core.ActionNone, false
}

// MapKeyToMultiFrame records a key message in the frame for the next tick.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(player, action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
