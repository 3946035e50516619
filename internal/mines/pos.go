package mines

import "fmt"

// Pos addresses a single cell. X is the column, Y is the row.
type Pos struct {
	X, Y int
}

// P is shorthand for Pos{X: x, Y: y}.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns the position offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// String implements fmt.Stringer.
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// neighborOffsets lists the 8 surrounding offsets in row-major order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// neighbors calls fn for every in-bounds cell around p.
func (b *Board) neighbors(p Pos, fn func(n Pos)) {
	for _, off := range neighborOffsets {
		n := p.Add(off[0], off[1])
		if b.InBounds(n) {
			fn(n)
		}
	}
}
