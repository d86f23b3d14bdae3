package core

// RuntimeConfig is passed to a game when it is reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second
	Seed     int64 // RNG seed; the platform replaces 0 with the current time
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // The puzzle is finished
	Paused   bool // Input is held (help overlay, window too small)
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}

// RunSummary describes one finished puzzle for the results store.
type RunSummary struct {
	LevelID     string
	Width       int
	Height      int
	GoThrough   bool
	Moves       int
	MinMoves    int // Minimal rotations needed to undo the scramble
	TurnedCells int
	Score       int
}
