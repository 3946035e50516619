package mines

// FlagToggle flags an Unvisited cell or unflags a Flagged one.
//
// Flagging is refused while no flags remain in the budget. Cells in any
// other state, and any call after the game is over, are left untouched.
func (b *Board) FlagToggle(p Pos) error {
	if b.gameOver {
		return nil
	}
	if err := b.checkBounds(p); err != nil {
		return err
	}

	cell := &b.cells[p.Y][p.X]
	switch {
	case cell.State == Flagged:
		cell.State = Unvisited
		b.flags--
		b.stats.MinesLive++
	case cell.State == Unvisited && b.stats.MinesLive > 0:
		cell.State = Flagged
		b.flags++
		b.stats.MinesLive--
	default:
		return nil
	}

	b.evaluate()
	return nil
}
