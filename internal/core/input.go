package core

// Action is a semantic input, independent of the physical key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move up (menu: cursor up)
	ActionDown           // move down (menu: cursor down)
	ActionLeft           // move left
	ActionRight          // move right
	ActionAttack         // attack the faced lane
	ActionConfirm        // confirm a menu selection
	ActionBack           // leave the game or screen
	ActionRestart        // start over after game over
	ActionQuit           // exit the program or session
	ActionPause          // toggle pause
	numActions
)

var actionNames = [numActions]string{
	"None", "Up", "Down", "Left", "Right", "Attack",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions one player triggered during a tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// Set marks an action as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < numActions {
		f.bits |= 1 << a
	}
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < numActions && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// PlayerID identifies a local seat (0-based, matching board player indices).
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
	MaxPlayers
)

// MultiInputFrame holds one InputFrame per local seat for a single tick.
// The zero value is empty and ready to use; it copies by value.
type MultiInputFrame struct {
	seats [MaxPlayers]InputFrame
}

// NewMultiInputFrame returns an empty frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{}
}

// Player returns the frame for a seat. Unknown seats read as empty.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if id < 0 || id >= MaxPlayers {
		return InputFrame{}
	}
	return m.seats[id]
}

// Set marks an action for a seat. Unknown seats are ignored.
func (m *MultiInputFrame) Set(id PlayerID, a Action) {
	if id >= 0 && id < MaxPlayers {
		m.seats[id].Set(a)
	}
}

// Has reports whether any seat triggered the action.
func (m MultiInputFrame) Has(a Action) bool {
	for _, f := range m.seats {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets every seat for the next tick.
func (m *MultiInputFrame) Clear() {
	m.seats = [MaxPlayers]InputFrame{}
}

// Clone returns a copy of the frame.
func (m MultiInputFrame) Clone() MultiInputFrame {
	return m
}
