package core

// RuntimeConfig contains configuration passed to a front end at start.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Display frames per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// RunState represents the current state of a simulation run.
type RunState struct {
	Generation uint64
	Population int
	Peak       int  // highest population seen since the last restart
	Paused     bool
	Extinct    bool // no live cells left
	Stable     bool // the last generation changed nothing
	Rate       int  // generations per second
}

// StepResult is returned after each display tick.
type StepResult struct {
	State    RunState
	Advanced int // generations computed during this tick
}
