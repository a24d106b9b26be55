package sim

import (
	"math/rand"
	"testing"
)

func newTestBoard() *Board {
	cfg := DefaultConfig()
	return NewBoard(cfg.Rows, cfg.Cols, cfg.CellSize, cfg.Origin)
}

func TestCellWorldRoundTrip(t *testing.T) {
	b := newTestBoard()

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			p := b.CellToWorld(r, c)
			got := b.WorldToCell(p.X, p.Y)
			if got.R != r || got.C != c {
				t.Errorf("WorldToCell(CellToWorld(%d, %d)) = %v", r, c, got)
			}
		}
	}
}

func TestWorldToCellOutOfBounds(t *testing.T) {
	b := newTestBoard()
	origin := b.Origin()

	tests := []struct {
		name string
		x, y float64
	}{
		{"above grid", origin.X + 10, origin.Y - 1},
		{"left of grid", origin.X - 1, origin.Y + 10},
		{"below grid", origin.X + 10, origin.Y + b.CellSize()*float64(b.Rows()) + 1},
		{"right of grid", origin.X + b.CellSize()*float64(b.Cols()) + 1, origin.Y + 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := b.WorldToCell(tc.x, tc.y)
			if b.InBounds(cell.R, cell.C) {
				t.Errorf("WorldToCell(%f, %f) = %v, expected out of bounds", tc.x, tc.y, cell)
			}
		})
	}
}

func TestNeighbors4(t *testing.T) {
	b := newTestBoard()

	tests := []struct {
		name string
		r, c int
		want []Cell
	}{
		{"top-left corner", 0, 0, []Cell{{1, 0}, {0, 1}}},
		{"bottom-right corner", 11, 8, []Cell{{10, 8}, {11, 7}}},
		{"interior", 5, 4, []Cell{{4, 4}, {6, 4}, {5, 3}, {5, 5}}},
		{"top edge", 0, 4, []Cell{{1, 4}, {0, 3}, {0, 5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Neighbors4(tc.r, tc.c)
			if len(got) != len(tc.want) {
				t.Fatalf("Neighbors4(%d, %d) = %v, expected %v", tc.r, tc.c, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Neighbors4(%d, %d)[%d] = %v, expected %v", tc.r, tc.c, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestBubbleGrowCapsAtMaxLevel(t *testing.T) {
	b := NewBubble(Wood)
	for i := 0; i < 5; i++ {
		b.Grow()
	}
	if b.Level != MaxLevel {
		t.Errorf("Level = %d after repeated growth, expected %d", b.Level, MaxLevel)
	}
}

func TestSeedFillsOnlyRequestedRows(t *testing.T) {
	b := newTestBoard()
	b.Seed(4, 1.0, rand.New(rand.NewSource(1)))

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			bubble := b.Get(r, c)
			if r < 4 {
				if bubble == nil {
					t.Fatalf("cell (%d,%d) should be seeded", r, c)
				}
				if bubble.Level != 1 || !bubble.Element.Valid() {
					t.Errorf("seeded bubble at (%d,%d) = %+v", r, c, *bubble)
				}
			} else if bubble != nil {
				t.Errorf("cell (%d,%d) should be empty", r, c)
			}
		}
	}

	empty := newTestBoard()
	empty.Seed(4, 0, rand.New(rand.NewSource(1)))
	if empty.Count() != 0 {
		t.Errorf("fill probability 0 placed %d bubbles", empty.Count())
	}
}

func TestApplyPressureBottomOccupied(t *testing.T) {
	b := newTestBoard()
	b.Set(0, 0, NewBubble(Fire))
	b.Set(b.Rows()-1, 3, NewBubble(Water))
	before := b.Clone()

	if b.ApplyPressure(1.0, rand.New(rand.NewSource(1))) {
		t.Fatal("ApplyPressure should report game over when the bottom row is occupied")
	}

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			got, want := b.Get(r, c), before.Get(r, c)
			if (got == nil) != (want == nil) || (got != nil && *got != *want) {
				t.Errorf("cell (%d,%d) changed after rejected pressure", r, c)
			}
		}
	}
}

func TestApplyPressureShiftsRows(t *testing.T) {
	b := newTestBoard()
	b.Seed(6, 0.7, rand.New(rand.NewSource(99)))
	before := b.Clone()

	if !b.ApplyPressure(1.0, rand.New(rand.NewSource(5))) {
		t.Fatal("ApplyPressure should succeed with an empty bottom row")
	}

	for r := 1; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			got, want := b.Get(r, c), before.Get(r-1, c)
			if (got == nil) != (want == nil) || (got != nil && *got != *want) {
				t.Errorf("row %d col %d does not match prior row %d", r, c, r-1)
			}
		}
	}

	for c := 0; c < b.Cols(); c++ {
		if !b.Occupied(0, c) {
			t.Errorf("spawn probability 1 left (0,%d) empty", c)
		}
	}
}

func TestApplyPressureEmptySpawn(t *testing.T) {
	b := newTestBoard()
	for c := 0; c < b.Cols(); c++ {
		b.Set(0, c, NewBubble(Metal))
	}

	if !b.ApplyPressure(0, rand.New(rand.NewSource(1))) {
		t.Fatal("ApplyPressure should succeed")
	}
	if b.RowOccupied(0) {
		t.Error("spawn probability 0 should leave row 0 empty")
	}
	for c := 0; c < b.Cols(); c++ {
		if got := b.Get(1, c); got == nil || got.Element != Metal {
			t.Errorf("(1,%d) should hold the shifted Metal bubble", c)
		}
	}
}

func TestFindNearestEmpty(t *testing.T) {
	b := newTestBoard()
	for c := 0; c < b.Cols(); c++ {
		if c != 2 && c != 6 {
			b.Set(0, c, NewBubble(Wood))
		}
	}

	// Radius 2 reaches both holes; the scan runs left to right.
	got, ok := b.FindNearestEmpty(0, 4)
	if !ok || got != (Cell{R: 0, C: 2}) {
		t.Errorf("FindNearestEmpty(0, 4) = %v, %v, expected (0,2)", got, ok)
	}

	got, ok = b.FindNearestEmpty(0, 7)
	if !ok || got != (Cell{R: 0, C: 6}) {
		t.Errorf("FindNearestEmpty(0, 7) = %v, %v, expected (0,6)", got, ok)
	}

	b.Set(0, 2, NewBubble(Fire))
	b.Set(0, 6, NewBubble(Fire))
	if _, ok := b.FindNearestEmpty(0, 4); ok {
		t.Error("FindNearestEmpty should fail on a full row")
	}
}

func TestDangerRow(t *testing.T) {
	b := newTestBoard()
	if b.DangerRow() != 11 {
		t.Errorf("DangerRow() = %d, expected 11", b.DangerRow())
	}
	if b.IsGameOverRow(10) {
		t.Error("row 10 should be safe")
	}
	if !b.IsGameOverRow(11) {
		t.Error("row 11 should end the game")
	}
}
