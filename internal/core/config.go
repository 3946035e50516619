package core

// Default board dimensions, used when the player gives no usable answer.
const (
	DefaultBoardW = 10
	DefaultBoardH = 10
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	BoardW  int    // Board width in cells
	BoardH  int    // Board height in cells
	Seed    int64  // RNG seed for deterministic mine placement
	Theme   string // Glyph theme name ("emoji" or "ascii")
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		BoardW:  DefaultBoardW,
		BoardH:  DefaultBoardH,
		Seed:    0, // 0 means use current time in platform layer
		Theme:   "emoji",
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in a win
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State GameState
}
