package core

// RuntimeConfig contains configuration passed to a game at reset.
// ScreenW/ScreenH describe the render surface in cells; the play field
// itself has a fixed logical size independent of the surface.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a run.
type GameState struct {
	Score    int  // Treats caught so far
	Terminal bool // A treat reached the bottom; the run is over
}

// StepResult is returned by a game after each simulation tick.
type StepResult struct {
	State GameState

	// Caught is the number of treats caught during this tick.
	Caught int

	// Unlocked lists cosmetics unlocked during this tick.
	Unlocked []string

	// EnteredTerminal is true only on the tick the run became terminal.
	EnteredTerminal bool
}
