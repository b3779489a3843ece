package core

// RuntimeConfig contains configuration passed to games at initialization.
// The playfield size lives in the game's own config; ScreenW/ScreenH describe
// the host display the frontend draws into.
type RuntimeConfig struct {
	ScreenW  int   // Host display width (terminal cells or window pixels)
	ScreenH  int   // Host display height
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for entity placement
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current score
	GameOver  bool   // Whether the game has ended
	Ticks     int    // Simulation ticks run so far
	Thermals  int    // Thermals collected so far
	EndReason string // What ended the game, empty while running
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState

	ThermalsCollected int // Thermals picked up this tick
	CloudsTouched     int // Clouds overlapping the glider this tick
}
