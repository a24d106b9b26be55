package sim

import (
	"fmt"
	"math"
)

// MaxLevel is the highest level a bubble can grow to.
const MaxLevel = 3

// Bubble is a placed bubble. It carries no presentation state; renderers
// key their visuals by grid coordinates.
type Bubble struct {
	Element Element
	Level   int
}

// NewBubble creates a level 1 bubble.
func NewBubble(e Element) *Bubble {
	return &Bubble{Element: e, Level: 1}
}

// Grow raises the level by one, capped at MaxLevel.
func (b *Bubble) Grow() {
	b.Level = min(MaxLevel, b.Level+1)
}

// Cell is a grid coordinate. R grows downward, C grows to the right.
type Cell struct {
	R int
	C int
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.R, c.C)
}

// Board owns the placed bubbles and the grid geometry.
// The grid dimensions never change after creation.
type Board struct {
	rows     int
	cols     int
	cellSize float64
	origin   Vec
	cells    [][]*Bubble
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int, cellSize float64, origin Vec) *Board {
	b := &Board{
		rows:     rows,
		cols:     cols,
		cellSize: cellSize,
		origin:   origin,
	}
	b.cells = make([][]*Bubble, rows)
	for r := range b.cells {
		b.cells[r] = make([]*Bubble, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// CellSize returns the side of a cell in world units.
func (b *Board) CellSize() float64 {
	return b.cellSize
}

// Origin returns the world position of the grid's top-left corner.
func (b *Board) Origin() Vec {
	return b.origin
}

// DangerRow returns the last row index; landing there ends the game.
func (b *Board) DangerRow() int {
	return b.rows - 1
}

// IsGameOverRow returns true if r is at or below the danger row.
func (b *Board) IsGameOverRow(r int) bool {
	return r >= b.DangerRow()
}

// InBounds returns true if the cell lies inside the grid.
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// CellToWorld returns the world position of a cell's center.
func (b *Board) CellToWorld(r, c int) Vec {
	return Vec{
		X: b.origin.X + float64(c)*b.cellSize + b.cellSize/2,
		Y: b.origin.Y + float64(r)*b.cellSize + b.cellSize/2,
	}
}

// WorldToCell returns the cell containing a world position.
// The result may lie outside the grid; callers check InBounds.
func (b *Board) WorldToCell(x, y float64) Cell {
	return Cell{
		R: int(math.Floor((y - b.origin.Y) / b.cellSize)),
		C: int(math.Floor((x - b.origin.X) / b.cellSize)),
	}
}

// ClampCell restricts a cell to the grid bounds.
func (b *Board) ClampCell(c Cell) Cell {
	return Cell{
		R: max(0, min(b.rows-1, c.R)),
		C: max(0, min(b.cols-1, c.C)),
	}
}

// Neighbors4 returns the up, down, left and right neighbors inside the grid,
// in that order.
func (b *Board) Neighbors4(r, c int) []Cell {
	candidates := [4]Cell{
		{R: r - 1, C: c},
		{R: r + 1, C: c},
		{R: r, C: c - 1},
		{R: r, C: c + 1},
	}
	result := make([]Cell, 0, 4)
	for _, n := range candidates {
		if b.InBounds(n.R, n.C) {
			result = append(result, n)
		}
	}
	return result
}

// Get returns the bubble at a cell, or nil if empty or out of bounds.
func (b *Board) Get(r, c int) *Bubble {
	if !b.InBounds(r, c) {
		return nil
	}
	return b.cells[r][c]
}

// Occupied returns true if a bubble sits at the cell.
func (b *Board) Occupied(r, c int) bool {
	return b.Get(r, c) != nil
}

// Set places a bubble at a cell, replacing whatever was there.
func (b *Board) Set(r, c int, bubble *Bubble) {
	if b.InBounds(r, c) {
		b.cells[r][c] = bubble
	}
}

// Remove clears a cell and returns the bubble that was there.
func (b *Board) Remove(r, c int) *Bubble {
	if !b.InBounds(r, c) {
		return nil
	}
	old := b.cells[r][c]
	b.cells[r][c] = nil
	return old
}

// Count returns the number of placed bubbles.
func (b *Board) Count() int {
	n := 0
	for _, row := range b.cells {
		for _, bubble := range row {
			if bubble != nil {
				n++
			}
		}
	}
	return n
}

// RowOccupied returns true if any cell in row r holds a bubble.
func (b *Board) RowOccupied(r int) bool {
	if r < 0 || r >= b.rows {
		return false
	}
	for _, bubble := range b.cells[r] {
		if bubble != nil {
			return true
		}
	}
	return false
}

// Seed fills each cell of the first numRows rows with a random level 1
// bubble with probability fillProb.
func (b *Board) Seed(numRows int, fillProb float64, rng Rand) {
	numRows = min(numRows, b.rows)
	for r := 0; r < numRows; r++ {
		for c := 0; c < b.cols; c++ {
			if rng.Float64() < fillProb {
				b.cells[r][c] = NewBubble(RandomElement(rng))
			}
		}
	}
}

// ApplyPressure shifts the whole grid down one row and spawns a new top row.
// If the bottom row is occupied nothing moves and false is returned: the
// game is over.
func (b *Board) ApplyPressure(spawnProb float64, rng Rand) bool {
	if b.RowOccupied(b.rows - 1) {
		return false
	}

	for r := b.rows - 1; r >= 1; r-- {
		copy(b.cells[r], b.cells[r-1])
	}

	for c := 0; c < b.cols; c++ {
		if rng.Float64() < spawnProb {
			b.cells[0][c] = NewBubble(RandomElement(rng))
		} else {
			b.cells[0][c] = nil
		}
	}
	return true
}

// FindNearestEmpty scans row r outward from column c for an empty cell.
// Each radius is scanned left to right from c-radius to c+radius.
func (b *Board) FindNearestEmpty(r, c int) (Cell, bool) {
	for radius := 1; radius < b.cols; radius++ {
		for dc := -radius; dc <= radius; dc++ {
			cc := c + dc
			if !b.InBounds(r, cc) {
				continue
			}
			if b.cells[r][cc] == nil {
				return Cell{R: r, C: cc}, true
			}
		}
	}
	return Cell{}, false
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.rows, b.cols, b.cellSize, b.origin)
	for r, row := range b.cells {
		for c, bubble := range row {
			if bubble != nil {
				cp := *bubble
				clone.cells[r][c] = &cp
			}
		}
	}
	return clone
}
