package mines

// Reveal opens the cell at p.
//
// Revealing a mine exposes every mine and ends the game. Revealing a cell
// with no adjacent mines opens the connected zero region and its numbered
// border. Revealing a cell that is not Unvisited, or any cell after the game
// is over, does nothing.
func (b *Board) Reveal(p Pos) error {
	if b.gameOver {
		return nil
	}
	if err := b.checkBounds(p); err != nil {
		return err
	}
	if b.cells[p.Y][p.X].State != Unvisited {
		return nil
	}

	if b.isMine(p) {
		b.detonate(p)
		return nil
	}

	b.flood(p)
	b.evaluate()
	return nil
}

// detonate turns every mine into a Bomb and ends the game as lost.
func (b *Board) detonate(p Pos) {
	for _, m := range b.mines {
		if b.cells[m.Y][m.X].State == Flagged {
			b.flags--
		}
		b.cells[m.Y][m.X] = Cell{State: Bomb}
	}
	b.detonated = p
	b.gameOver = true
	b.outcome = OutcomeLost
}

// flood clears start and, through an explicit worklist, every Unvisited
// cell reachable across zero-count cells. Only Unvisited cells are pushed
// or cleared, so flags are left alone and no cell is cleared twice.
func (b *Board) flood(start Pos) {
	stack := []Pos{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := &b.cells[p.Y][p.X]
		if cell.State != Unvisited {
			continue
		}

		count := b.counts[p.Y][p.X]
		*cell = Cell{State: Clear, Count: count}
		b.revealed++

		if count != 0 {
			continue
		}
		b.neighbors(p, func(n Pos) {
			if b.cells[n.Y][n.X].State == Unvisited {
				stack = append(stack, n)
			}
		})
	}
}
