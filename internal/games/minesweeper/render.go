package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

const (
	hudHeight    = 2 // Title and counters
	footerHeight = 2 // Banner or controls, restart hint
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	if g.err != nil {
		g.renderError(dst)
		return
	}

	boardW := g.board.Width()*g.theme.Width + 2 // +2 for the frame
	boardH := g.board.Height() + 2
	if boardW > g.screenW || boardH+hudHeight+footerHeight > g.screenH {
		g.renderTooSmall(dst, boardW, boardH+hudHeight+footerHeight)
		return
	}

	frame := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)
	g.renderHUD(dst, frame)
	dst.DrawBox(frame)
	g.renderBoard(dst, frame.X+1, frame.Y+1)
	g.renderFooter(dst, frame.Bottom())
}

// renderError shows why the board could not be built.
func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, g.Title())
	dst.DrawTextCentered(y, g.err.Error())
	dst.DrawTextCentered(y+1, "Press Q to quit")
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen, needW, needH int) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, g.screenW, g.screenH))
}

// renderHUD draws the title and the remaining flag budget.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	dst.DrawTextCentered(0, g.Title())

	live := fmt.Sprintf("Mines live: %d", g.board.Stats().MinesLive)
	dst.DrawText(frame.X, 1, live)

	size := fmt.Sprintf("%dx%d", g.board.Width(), g.board.Height())
	x := frame.Right() - len(size)
	if x < frame.X+len(live)+1 {
		return
	}
	dst.DrawText(x, 1, size)
}

// renderBoard draws every cell, with the cursor on top while playing.
func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	t := g.theme
	detonated, lost := g.board.Detonated()
	showCursor := !g.over()

	for y, row := range g.board.Grid() {
		for x, cell := range row {
			p := mines.Pos{X: x, Y: y}
			glyph, color := g.glyphFor(cell, lost && p == detonated)
			if showCursor && p == g.cursor.Pos() {
				glyph, color = t.Cursor, t.color(core.ColorYellow)
			}
			dst.SetGlyph(originX+x*t.Width, originY+y, glyph, t.Width, color)
		}
	}
}

// glyphFor maps a visible cell to the theme glyph and its color.
func (g *Game) glyphFor(cell mines.Cell, exploded bool) (string, core.Color) {
	t := g.theme
	switch cell.State {
	case mines.Clear:
		if cell.Count == 0 {
			return t.Clear, core.ColorDefault
		}
		return t.Numbers[cell.Count], t.color(numberColors[cell.Count])
	case mines.Flagged:
		return t.Flag, t.color(core.ColorOrange)
	case mines.Bomb:
		if exploded {
			return t.Exploded, t.color(core.ColorBrightRed)
		}
		return t.Bomb, t.color(core.ColorRed)
	default:
		return t.Unvisited, t.color(core.ColorGray)
	}
}

// renderFooter draws the result banner and control hints below the board.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.over() {
		dst.DrawTextCentered(y, g.banner())
		dst.DrawTextCentered(y+1, "Press R to restart or Q to quit")
		return
	}
	dst.DrawTextCentered(y+1, g.Controls())
}

func (g *Game) banner() string {
	switch g.board.Outcome() {
	case mines.OutcomeWon:
		return "YOU WIN!"
	case mines.OutcomeLost:
		return "BOOM! Game Over"
	default:
		return "Game Over"
	}
}
