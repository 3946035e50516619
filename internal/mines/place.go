package mines

// Ready places the mines uniformly at random.
// It returns ErrAlreadyReady if mines were already placed.
func (b *Board) Ready() error {
	if b.ready {
		return ErrAlreadyReady
	}

	b.placeMines(func() Pos {
		return Pos{X: b.rng.Intn(b.width), Y: b.rng.Intn(b.height)}
	})
	return nil
}

// ReadySafe places the mines so that seed and its 8 neighbors stay clear.
// The first reveal at seed therefore always opens a region.
func (b *Board) ReadySafe(seed Pos) error {
	if b.ready {
		return ErrAlreadyReady
	}
	if err := b.checkBounds(seed); err != nil {
		return err
	}

	b.placeMines(func() Pos {
		return b.rollOutside(seed)
	})
	return nil
}

// rollOutside picks a random position at Chebyshev distance > 1 from seed.
// When x lands next to seed, y is re-rolled until it is far enough;
// otherwise a y that lands next to seed forces x to be re-rolled.
func (b *Board) rollOutside(seed Pos) Pos {
	x := b.rng.Intn(b.width)
	var y int
	if abs(x-seed.X) <= 1 {
		for {
			y = b.rng.Intn(b.height)
			if abs(y-seed.Y) > 1 {
				break
			}
		}
		return Pos{X: x, Y: y}
	}

	y = b.rng.Intn(b.height)
	if abs(y-seed.Y) <= 1 {
		for {
			x = b.rng.Intn(b.width)
			if abs(x-seed.X) > 1 {
				break
			}
		}
	}
	return Pos{X: x, Y: y}
}

// placeMines draws candidates from roll until the registry holds
// TotalMineCount distinct positions, then finalizes the board.
func (b *Board) placeMines(roll func() Pos) {
	total := b.TotalMineCount()
	positions := make([]Pos, 0, total)
	taken := make(map[Pos]bool, total)

	for len(positions) < total {
		p := roll()
		if taken[p] {
			continue
		}
		taken[p] = true
		positions = append(positions, p)
	}

	b.lay(positions)
}

// lay records the given mines, computes adjacency counts and resets the
// counters. Flags placed before this call are kept and charged to the budget.
func (b *Board) lay(positions []Pos) {
	for _, p := range positions {
		b.counts[p.Y][p.X] = mineMarker
	}
	for _, p := range positions {
		b.neighbors(p, func(n Pos) {
			if !b.isMine(n) {
				b.counts[n.Y][n.X]++
			}
		})
	}

	b.mines = append(b.mines[:0], positions...)
	b.stats = Stats{MinesLive: b.TotalMineCount() - b.flags}
	b.gameOver = false
	b.outcome = OutcomeNone
	b.ready = true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
