package core

// RuntimeConfig contains the settings passed to a game at reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State  GameState
	Events int // Simulation events emitted during the frame
}
