package core

// RuntimeConfig is what the platform tells a game at Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the part of a game's state the platform acts on.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Cleared int  // Pieces removed by attacks during this tick
	Changed bool // Whether the simulation notified a state change this tick
}

// RunStats summarizes a session for the score table.
type RunStats struct {
	Level      int
	Clears     int
	Ticks      int
	Difficulty string
}
