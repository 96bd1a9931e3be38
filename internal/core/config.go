package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// GameState is the platform-facing status of a game, returned after every
// tick. Score counts destroyed enemy planes.
type GameState struct {
	Score    int  // Enemies destroyed this session
	GameOver bool // Session reached the terminal state
}

// StepResult is returned by Game.Advance after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // Discrete events that occurred during the tick
}
