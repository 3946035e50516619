package mines

import (
	"errors"
	"math/rand"
	"testing"
)

func TestReadyPlacesDistinctMines(t *testing.T) {
	sizes := []struct{ w, h int }{{4, 4}, {10, 10}, {100, 4}, {4, 100}, {37, 21}}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			b, err := New(sz.w, sz.h, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("New(%d, %d) failed: %v", sz.w, sz.h, err)
			}
			if err := b.Ready(); err != nil {
				t.Fatalf("Ready() failed: %v", err)
			}

			mines := b.Mines()
			if len(mines) != TotalMineCount(sz.w) {
				t.Fatalf("%dx%d seed %d: %d mines, expected %d", sz.w, sz.h, seed, len(mines), TotalMineCount(sz.w))
			}

			seen := make(map[Pos]bool)
			for _, m := range mines {
				if seen[m] {
					t.Errorf("duplicate mine at %s", m)
				}
				seen[m] = true
				if !b.InBounds(m) {
					t.Errorf("mine %s out of bounds", m)
				}
			}

			marked := 0
			for y := range b.counts {
				for x := range b.counts[y] {
					if b.counts[y][x] == mineMarker {
						marked++
					}
				}
			}
			if marked != len(mines) {
				t.Errorf("%d cells carry the mine marker, expected %d", marked, len(mines))
			}
		}
	}
}

func TestReadyAdjacencyCounts(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		b, err := New(12, 9, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		if err := b.Ready(); err != nil {
			t.Fatalf("Ready() failed: %v", err)
		}

		for y := range b.height {
			for x := range b.width {
				p := P(x, y)
				if b.isMine(p) {
					continue
				}
				if got, want := b.counts[y][x], recount(b, p); got != want {
					t.Errorf("seed %d: count at %s = %d, expected %d", seed, p, got, want)
				}
			}
		}
	}
}

func TestReadyFourByFour(t *testing.T) {
	b, err := New(4, 4, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := b.Ready(); err != nil {
		t.Fatalf("Ready() failed: %v", err)
	}

	mined := 0
	for y := range 4 {
		for x := range 4 {
			if b.counts[y][x] == -1 {
				mined++
				continue
			}
			if got, want := b.counts[y][x], recount(b, P(x, y)); got != want {
				t.Errorf("count at (%d, %d) = %d, expected %d", x, y, got, want)
			}
		}
	}
	if mined != 6 {
		t.Errorf("4x4 board has %d mines, expected 6", mined)
	}
}

func TestReadySetsState(t *testing.T) {
	b, err := New(10, 10, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := b.Ready(); err != nil {
		t.Fatalf("Ready() failed: %v", err)
	}

	if !b.IsReady() {
		t.Error("board should be ready")
	}
	if b.GameOver() {
		t.Error("ready board should not be over")
	}
	if got := b.Stats(); got != (Stats{MinesLive: 15, Score: 0}) {
		t.Errorf("Stats() = %+v, expected {MinesLive:15 Score:0}", got)
	}
}

func TestReadyTwice(t *testing.T) {
	b, err := New(10, 10, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := b.Ready(); err != nil {
		t.Fatalf("Ready() failed: %v", err)
	}
	before := b.Mines()

	if err := b.Ready(); !errors.Is(err, ErrAlreadyReady) {
		t.Errorf("second Ready() error = %v, expected ErrAlreadyReady", err)
	}
	if err := b.ReadySafe(P(5, 5)); !errors.Is(err, ErrAlreadyReady) {
		t.Errorf("ReadySafe() after Ready() error = %v, expected ErrAlreadyReady", err)
	}

	after := b.Mines()
	if len(after) != len(before) {
		t.Fatalf("mine count changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("mine %d moved from %s to %s", i, before[i], after[i])
		}
	}
}

func TestReadyDeterministic(t *testing.T) {
	a, _ := New(20, 15, rand.New(rand.NewSource(12345)))
	b, _ := New(20, 15, rand.New(rand.NewSource(12345)))

	if err := a.ReadySafe(P(3, 4)); err != nil {
		t.Fatalf("ReadySafe() failed: %v", err)
	}
	if err := b.ReadySafe(P(3, 4)); err != nil {
		t.Fatalf("ReadySafe() failed: %v", err)
	}

	ma, mb := a.Mines(), b.Mines()
	for i := range ma {
		if ma[i] != mb[i] {
			t.Fatalf("mine %d differs: %s vs %s", i, ma[i], mb[i])
		}
	}
}

func TestReadySafeKeepsSeedBlockClear(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		seed          Pos
	}{
		{"center", 10, 10, P(5, 5)},
		{"top-left corner", 10, 10, P(0, 0)},
		{"bottom-right corner", 10, 10, P(9, 9)},
		{"edge", 10, 10, P(0, 5)},
		{"smallest board", 4, 4, P(1, 1)},
		{"smallest board corner", 4, 4, P(3, 0)},
		{"short wide board", 100, 4, P(50, 2)},
		{"tall narrow board", 4, 100, P(2, 50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(1); seed <= 25; seed++ {
				b, err := New(tc.width, tc.height, rand.New(rand.NewSource(seed)))
				if err != nil {
					t.Fatalf("New() failed: %v", err)
				}
				if err := b.ReadySafe(tc.seed); err != nil {
					t.Fatalf("ReadySafe() failed: %v", err)
				}

				if len(b.Mines()) != TotalMineCount(tc.width) {
					t.Fatalf("placed %d mines, expected %d", len(b.Mines()), TotalMineCount(tc.width))
				}
				for _, m := range b.Mines() {
					if abs(m.X-tc.seed.X) <= 1 && abs(m.Y-tc.seed.Y) <= 1 {
						t.Errorf("seed %d: mine %s inside block around %s", seed, m, tc.seed)
					}
				}
				if b.counts[tc.seed.Y][tc.seed.X] != 0 {
					t.Errorf("seed cell count = %d, expected 0", b.counts[tc.seed.Y][tc.seed.X])
				}
			}
		})
	}
}

func TestReadySafeOutOfBounds(t *testing.T) {
	b, _ := New(5, 5, nil)

	if err := b.ReadySafe(P(5, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ReadySafe() error = %v, expected ErrOutOfBounds", err)
	}
	if b.IsReady() {
		t.Error("board should not be ready after a failed ReadySafe()")
	}
}

func TestReadyChargesEarlyFlags(t *testing.T) {
	b, _ := New(10, 10, rand.New(rand.NewSource(9)))

	if err := b.FlagToggle(P(9, 9)); err != nil {
		t.Fatalf("FlagToggle() failed: %v", err)
	}
	if err := b.ReadySafe(P(0, 0)); err != nil {
		t.Fatalf("ReadySafe() failed: %v", err)
	}

	if got := b.Stats().MinesLive; got != 14 {
		t.Errorf("MinesLive = %d, expected 14", got)
	}

	if err := b.FlagToggle(P(9, 9)); err != nil {
		t.Fatalf("FlagToggle() failed: %v", err)
	}
	if got := b.Stats().MinesLive; got != b.TotalMineCount() {
		t.Errorf("MinesLive after unflag = %d, expected %d", got, b.TotalMineCount())
	}
}
