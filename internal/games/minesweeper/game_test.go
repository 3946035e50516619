package minesweeper

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func newGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	if err := g.Reset(testConfig(seed)); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.FrameOf(actions...))
}

// moveTo walks the cursor to (x, y) one step at a time.
func moveTo(g *Game, x, y int) {
	for g.cursor.X < x {
		press(g, core.ActionRight)
	}
	for g.cursor.X > x {
		press(g, core.ActionLeft)
	}
	for g.cursor.Y < y {
		press(g, core.ActionDown)
	}
	for g.cursor.Y > y {
		press(g, core.ActionUp)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDSafe, IDClassic} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestResetInvalidDimension(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"width too small", 3, 10},
		{"height too small", 10, 2},
		{"width too large", 101, 10},
		{"height too large", 10, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			cfg := testConfig(1)
			cfg.BoardW, cfg.BoardH = tt.w, tt.h

			err := g.Reset(cfg)
			if !errors.Is(err, mines.ErrInvalidDimension) {
				t.Fatalf("Reset() error = %v, expected ErrInvalidDimension", err)
			}
			if g.Err() == nil {
				t.Error("Err() = nil, expected the construction error")
			}
			if !g.State().GameOver {
				t.Error("State().GameOver = false, expected true")
			}

			// Input must not panic on a game without a board
			press(g, core.ActionReveal)
			if g.Snapshot().State != StateError {
				t.Errorf("Snapshot().State = %v, expected %v", g.Snapshot().State, StateError)
			}
		})
	}
}

func TestCursorClamped(t *testing.T) {
	g := newGame(t, New(), 1)

	press(g, core.ActionUp)
	press(g, core.ActionLeft)
	if g.cursor != (Cursor{}) {
		t.Errorf("cursor = %+v, expected (0,0)", g.cursor)
	}

	for range 20 {
		press(g, core.ActionRight)
		press(g, core.ActionDown)
	}
	if g.cursor != (Cursor{X: 9, Y: 9}) {
		t.Errorf("cursor = %+v, expected (9,9)", g.cursor)
	}
}

func TestSafeFirstReveal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newGame(t, New(), seed)
		moveTo(g, 4, 6)

		res := press(g, core.ActionReveal)
		if res.State.GameOver {
			t.Fatalf("seed %d: first reveal ended the game", seed)
		}
		if !g.board.IsReady() {
			t.Fatalf("seed %d: board not ready after first reveal", seed)
		}
		cell, _ := g.board.Cell(mines.P(4, 6))
		if cell.State != mines.Clear || cell.Count != 0 {
			t.Errorf("seed %d: cell = %+v, expected clear zero", seed, cell)
		}
		if g.board.Revealed() < 9 {
			t.Errorf("seed %d: Revealed() = %d, expected at least 9", seed, g.board.Revealed())
		}
	}
}

func TestClassicFirstReveal(t *testing.T) {
	g := newGame(t, NewClassic(), 3)
	press(g, core.ActionReveal)

	if !g.board.IsReady() {
		t.Fatal("board not ready after first reveal")
	}
	cell, _ := g.board.Cell(mines.P(0, 0))
	if cell.State == mines.Unvisited {
		t.Error("cell (0,0) still unvisited after reveal")
	}
	if cell.State == mines.Bomb && g.board.Outcome() != mines.OutcomeLost {
		t.Errorf("Outcome() = %v, expected Lost", g.board.Outcome())
	}
}

func TestFlagToggle(t *testing.T) {
	g := newGame(t, New(), 1)
	moveTo(g, 2, 2)

	press(g, core.ActionFlag)
	if got := g.board.Stats().MinesLive; got != 14 {
		t.Errorf("MinesLive = %d, expected 14", got)
	}
	press(g, core.ActionFlag)
	if got := g.board.Stats().MinesLive; got != 15 {
		t.Errorf("MinesLive = %d, expected 15", got)
	}
	if g.board.IsReady() {
		t.Error("flagging must not place mines")
	}
}

func TestEndAction(t *testing.T) {
	g := newGame(t, New(), 1)
	press(g, core.ActionReveal)
	before := g.Snapshot()

	res := press(g, core.ActionEnd)
	if !res.State.GameOver || res.State.Won {
		t.Errorf("State = %+v, expected game over without win", res.State)
	}

	press(g, core.ActionRight)
	press(g, core.ActionReveal)
	after := g.Snapshot()
	if after.State != StateEnded {
		t.Errorf("Snapshot().State = %v, expected %v", after.State, StateEnded)
	}
	if after.CursorX != before.CursorX || !reflect.DeepEqual(after.Grid, before.Grid) {
		t.Error("input after end must be ignored")
	}
	if g.board.Outcome() != mines.OutcomeNone {
		t.Errorf("Outcome() = %v, expected None", g.board.Outcome())
	}
}

// TestSolve plays a full game to a win using the mine registry.
func TestSolve(t *testing.T) {
	g := newGame(t, New(), 99)
	moveTo(g, 5, 5)
	press(g, core.ActionReveal)

	mined := make(map[mines.Pos]bool)
	for _, p := range g.board.Mines() {
		mined[p] = true
	}

	for y := range g.board.Height() {
		for x := range g.board.Width() {
			p := mines.P(x, y)
			cell, _ := g.board.Cell(p)
			if mined[p] || cell.State != mines.Unvisited {
				continue
			}
			moveTo(g, x, y)
			press(g, core.ActionReveal)
		}
	}
	if g.State().GameOver {
		t.Fatal("game over before all mines were flagged")
	}

	var res core.StepResult
	for _, p := range g.board.Mines() {
		moveTo(g, p.X, p.Y)
		res = press(g, core.ActionFlag)
	}

	if !res.State.GameOver || !res.State.Won {
		t.Errorf("State = %+v, expected a win", res.State)
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("Snapshot().State = %v, expected %v", g.Snapshot().State, StateWon)
	}
}

func TestRevealMineLoses(t *testing.T) {
	g := newGame(t, New(), 5)
	press(g, core.ActionReveal)

	p := g.board.Mines()[0]
	moveTo(g, p.X, p.Y)
	res := press(g, core.ActionReveal)

	if !res.State.GameOver || res.State.Won {
		t.Errorf("State = %+v, expected a loss", res.State)
	}
	if got, ok := g.board.Detonated(); !ok || got != p {
		t.Errorf("Detonated() = %v, %v, expected %v, true", got, ok, p)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, New(), 12345)
	g2 := newGame(t, New(), 12345)

	inputs := []core.Action{
		core.ActionRight, core.ActionDown, core.ActionReveal,
		core.ActionRight, core.ActionRight, core.ActionFlag,
		core.ActionDown, core.ActionDown, core.ActionDown, core.ActionReveal,
	}
	for _, a := range inputs {
		press(g1, a)
		press(g2, a)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("snapshots differ for the same seed and inputs")
	}
}

func TestResetStartsOver(t *testing.T) {
	g := newGame(t, New(), 1)
	press(g, core.ActionReveal)
	press(g, core.ActionEnd)

	if err := g.Reset(testConfig(2)); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	snap := g.Snapshot()
	if snap.Ready || snap.State != StatePlaying || snap.Revealed != 0 || snap.Moves != 0 {
		t.Errorf("Snapshot() = %+v, expected a fresh game", snap)
	}
}
