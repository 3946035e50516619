// Package minesweeper drives the mines board engine as a playable game:
// it owns the cursor, maps input actions to engine operations and draws
// the visible board into a core.Screen.
package minesweeper

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// Mode selects how mines are placed on the first reveal.
type Mode string

const (
	ModeSafe    Mode = "safe"    // First reveal is never a mine
	ModeClassic Mode = "classic" // Mines are placed without regard to the first reveal
)

// Registered game IDs.
const (
	IDSafe    = "mines"
	IDClassic = "mines_classic"
)

// Cursor is the player's selection on the board. Unlike mines.Pos it is
// mutable and owned by the game, never by the engine.
type Cursor struct {
	X, Y int
}

// Move shifts the cursor by (dx, dy), staying inside a width x height board.
func (c *Cursor) Move(dx, dy, width, height int) {
	c.X = core.Clamp(c.X+dx, 0, width-1)
	c.Y = core.Clamp(c.Y+dy, 0, height-1)
}

// Pos returns the board position under the cursor.
func (c Cursor) Pos() mines.Pos {
	return mines.Pos{X: c.X, Y: c.Y}
}

// Game implements the mine-clearing puzzle on top of mines.Board.
type Game struct {
	mode   Mode
	board  *mines.Board
	cursor Cursor
	theme  Theme
	moves  int // Reveal and flag actions applied

	// Screen dimensions
	screenW int
	screenH int

	ended bool  // Player gave up with the end action
	err   error // Set when the configured board cannot be built
}

// New creates a safe-start game.
func New() *Game {
	return &Game{mode: ModeSafe}
}

// NewClassic creates a game whose first reveal may hit a mine.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register(IDSafe, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return IDClassic
	}
	return IDSafe
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Mines (Classic)"
	}
	return "Mines"
}

// Reset builds a fresh board from the runtime config.
// Board dimensions outside (3, 100] surface as mines.ErrInvalidDimension.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.theme = ThemeByName(cfg.Theme)
	g.cursor = Cursor{}
	g.moves = 0
	g.ended = false

	board, err := mines.New(cfg.BoardW, cfg.BoardH, rand.New(rand.NewSource(cfg.Seed)))
	g.board = board
	g.err = err
	return err
}

// Err returns the error that prevented the board from being built, if any.
func (g *Game) Err() error {
	return g.err
}

// Board exposes the engine for read-only inspection.
func (g *Game) Board() *mines.Board {
	return g.board
}

// Cursor returns the current cursor.
func (g *Game) Cursor() Cursor {
	return g.cursor
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.over() {
		return core.StepResult{State: g.State()}
	}

	w, h := g.board.Width(), g.board.Height()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Move(0, -1, w, h)
	case in.Has(core.ActionDown):
		g.cursor.Move(0, 1, w, h)
	case in.Has(core.ActionLeft):
		g.cursor.Move(-1, 0, w, h)
	case in.Has(core.ActionRight):
		g.cursor.Move(1, 0, w, h)
	}

	switch {
	case in.Has(core.ActionEnd):
		g.ended = true
	case in.Has(core.ActionReveal):
		g.reveal()
	case in.Has(core.ActionFlag):
		g.flag()
	}

	return core.StepResult{State: g.State()}
}

// reveal places the mines on the first reveal, then opens the cursor cell.
func (g *Game) reveal() {
	p := g.cursor.Pos()
	if !g.board.IsReady() {
		var err error
		if g.mode == ModeClassic {
			err = g.board.Ready()
		} else {
			err = g.board.ReadySafe(p)
		}
		if err != nil && !errors.Is(err, mines.ErrAlreadyReady) {
			g.err = err
			return
		}
	}
	if err := g.board.Reveal(p); err != nil {
		g.err = err
		return
	}
	g.moves++
}

func (g *Game) flag() {
	if err := g.board.FlagToggle(g.cursor.Pos()); err != nil {
		g.err = err
		return
	}
	g.moves++
}

func (g *Game) over() bool {
	return g.ended || g.board.GameOver()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.err != nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.board.Stats().Score,
		GameOver: g.over(),
		Won:      g.board.Outcome() == mines.OutcomeWon,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "WASD/Arrows: Move | Space: Reveal | F: Flag | Esc: End | R: Restart | Q: Quit"
}
