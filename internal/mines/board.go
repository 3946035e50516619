// Package mines implements the board engine of the mine-clearing puzzle:
// mine placement, adjacency counting, flood reveal, flag bookkeeping and
// win/loss detection. It has no terminal or platform dependencies; a
// controller drives it and reads the visible state back for rendering.
package mines

import (
	"fmt"
	"math/rand"
	"time"
)

// Board dimension limits. Both width and height must satisfy
// MinDimension < n <= MaxDimension.
const (
	MinDimension = 3
	MaxDimension = 100
)

// mineMarker marks a mined cell in the hidden count grid.
const mineMarker = -1

// Notation is the visible state of a cell.
type Notation int

const (
	Unvisited Notation = iota
	Clear
	Flagged
	Bomb
)

// String returns a human-readable name for the notation.
func (n Notation) String() string {
	switch n {
	case Unvisited:
		return "Unvisited"
	case Clear:
		return "Clear"
	case Flagged:
		return "Flagged"
	case Bomb:
		return "Bomb"
	default:
		return "Unknown"
	}
}

// Cell is what a renderer sees of one grid position.
// Count is the adjacency count and is only meaningful when State is Clear.
type Cell struct {
	State Notation
	Count int
}

// Stats holds the player-facing counters.
type Stats struct {
	MinesLive int // Flags still available; starts at the total mine count
	Score     int // Placeholder, never updated by the engine
}

// Outcome reports how a game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	default:
		return "None"
	}
}

// Board is the state machine for a single game.
// It is not safe for concurrent use; one controller owns it for one session.
type Board struct {
	width  int
	height int

	cells  [][]Cell // visible state, [y][x]
	counts [][]int  // hidden adjacency counts, mineMarker for mines
	mines  []Pos    // mine registry, in placement order

	rng *rand.Rand

	stats     Stats
	ready     bool
	gameOver  bool
	outcome   Outcome
	detonated Pos
	revealed  int // cells in the Clear state
	flags     int // cells in the Flagged state
}

// TotalMineCount returns the number of mines placed on a board of the given width.
func TotalMineCount(width int) int {
	return width + width/2
}

// ValidDimension reports whether n is an acceptable width or height.
func ValidDimension(n int) bool {
	return n > MinDimension && n <= MaxDimension
}

// New creates an empty board. Mines are not placed until Ready or ReadySafe.
// A nil rng is replaced by a generator seeded from the current time.
func New(width, height int, rng *rand.Rand) (*Board, error) {
	if !ValidDimension(width) {
		return nil, fmt.Errorf("%w: width %d must be greater than %d and at most %d",
			ErrInvalidDimension, width, MinDimension, MaxDimension)
	}
	if !ValidDimension(height) {
		return nil, fmt.Errorf("%w: height %d must be greater than %d and at most %d",
			ErrInvalidDimension, height, MinDimension, MaxDimension)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b := &Board{
		width:  width,
		height: height,
		rng:    rng,
	}
	b.cells = make([][]Cell, height)
	b.counts = make([][]int, height)
	for y := range height {
		b.cells[y] = make([]Cell, width)
		b.counts[y] = make([]int, width)
	}
	b.stats = Stats{MinesLive: b.TotalMineCount()}

	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// TotalMineCount returns the number of mines this board holds once ready.
func (b *Board) TotalMineCount() int {
	return TotalMineCount(b.width)
}

// InBounds reports whether p addresses a cell of the board.
func (b *Board) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// checkBounds wraps ErrOutOfBounds with the offending position.
func (b *Board) checkBounds(p Pos) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.width, b.height)
	}
	return nil
}

// IsReady reports whether mines have been placed.
func (b *Board) IsReady() bool {
	return b.ready
}

// GameOver reports whether the game has ended. Once true, nothing changes.
func (b *Board) GameOver() bool {
	return b.gameOver
}

// Outcome returns how the game ended, or OutcomeNone while it is running.
func (b *Board) Outcome() Outcome {
	return b.outcome
}

// Detonated returns the mine that ended the game, if one did.
func (b *Board) Detonated() (Pos, bool) {
	return b.detonated, b.outcome == OutcomeLost
}

// Stats returns the current counters.
func (b *Board) Stats() Stats {
	return b.stats
}

// Revealed returns the number of cleared cells.
func (b *Board) Revealed() int {
	return b.revealed
}

// Flags returns the number of flagged cells.
func (b *Board) Flags() int {
	return b.flags
}

// Cell returns the visible state at p.
func (b *Board) Cell(p Pos) (Cell, error) {
	if err := b.checkBounds(p); err != nil {
		return Cell{}, err
	}
	return b.cells[p.Y][p.X], nil
}

// Grid returns a copy of the visible state, indexed [y][x].
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, b.height)
	for y := range b.cells {
		grid[y] = make([]Cell, b.width)
		copy(grid[y], b.cells[y])
	}
	return grid
}

// Mines returns a copy of the mine registry. Empty until the board is ready.
func (b *Board) Mines() []Pos {
	out := make([]Pos, len(b.mines))
	copy(out, b.mines)
	return out
}

func (b *Board) isMine(p Pos) bool {
	return b.counts[p.Y][p.X] == mineMarker
}

// evaluate ends the game as won when every flag is spent and no cell is
// left unvisited. Because a mine can never be Clear, that state implies the
// flags cover exactly the mines; the explicit check keeps it that way.
func (b *Board) evaluate() {
	if b.gameOver || b.stats.MinesLive != 0 {
		return
	}

	for y := range b.cells {
		for x := range b.cells[y] {
			switch b.cells[y][x].State {
			case Unvisited:
				return
			case Flagged:
				if !b.isMine(Pos{X: x, Y: y}) {
					return
				}
			}
		}
	}

	b.gameOver = true
	b.outcome = OutcomeWon
}
