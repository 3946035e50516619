package minesweeper

import "github.com/vovakirdan/tui-mines/internal/mines"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StateWon     GameStateType = "won"
	StateLost    GameStateType = "lost"
	StateEnded   GameStateType = "ended"
	StateError   GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Mode      string
	Width     int
	Height    int
	CursorX   int
	CursorY   int
	Moves     int
	MinesLive int
	Revealed  int
	Flags     int
	Ready     bool
	State     GameStateType
	Grid      [][]mines.Cell
	Mines     []mines.Pos
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.board == nil {
		return Snapshot{Mode: string(g.mode), State: StateError}
	}

	state := StatePlaying
	switch {
	case g.err != nil:
		state = StateError
	case g.board.Outcome() == mines.OutcomeWon:
		state = StateWon
	case g.board.Outcome() == mines.OutcomeLost:
		state = StateLost
	case g.ended:
		state = StateEnded
	}

	return Snapshot{
		Mode:      string(g.mode),
		Width:     g.board.Width(),
		Height:    g.board.Height(),
		CursorX:   g.cursor.X,
		CursorY:   g.cursor.Y,
		Moves:     g.moves,
		MinesLive: g.board.Stats().MinesLive,
		Revealed:  g.board.Revealed(),
		Flags:     g.board.Flags(),
		Ready:     g.board.IsReady(),
		State:     state,
		Grid:      g.board.Grid(),
		Mines:     g.board.Mines(),
	}
}
