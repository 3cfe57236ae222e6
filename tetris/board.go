package tetris

import "fmt"

// Board is the fixed grid of locked cells. Row 0 is the top.
type Board struct {
	cols  int
	rows  int
	cells []Kind
}

// NewBoard allocates an empty cols x rows board.
func NewBoard(cols, rows int) *Board {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", cols, rows))
	}
	return &Board{
		cols:  cols,
		rows:  rows,
		cells: make([]Kind, cols*rows),
	}
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// InBounds reports whether (x, y) addresses a cell.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

func (b *Board) index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d board", x, y, b.cols, b.rows))
	}
	return y*b.cols + x
}

// At returns the kind stored at (x, y).
func (b *Board) At(x, y int) Kind {
	return b.cells[b.index(x, y)]
}

// Occupied reports whether (x, y) holds a locked cell.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y) != Empty
}

// Set writes kind into (x, y).
func (b *Board) Set(x, y int, kind Kind) {
	b.cells[b.index(x, y)] = kind
}

func (b *Board) checkRow(y int) {
	if y < 0 || y >= b.rows {
		panic(fmt.Sprintf("tetris: row %d outside %d-row board", y, b.rows))
	}
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	b.checkRow(y)
	for _, k := range b.cells[y*b.cols : (y+1)*b.cols] {
		if k == Empty {
			return false
		}
	}
	return true
}

// ClearRow removes row y. Every row above it moves down one index and an
// empty row appears at index 0.
func (b *Board) ClearRow(y int) {
	b.checkRow(y)
	copy(b.cells[b.cols:(y+1)*b.cols], b.cells[:y*b.cols])
	clear(b.cells[:b.cols])
}

// Filled counts occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, k := range b.cells {
		if k != Empty {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{
		cols:  b.cols,
		rows:  b.rows,
		cells: make([]Kind, len(b.cells)),
	}
	copy(out.cells, b.cells)
	return out
}

// Grid returns the cells as freshly allocated rows.
func (b *Board) Grid() [][]Kind {
	grid := make([][]Kind, b.rows)
	for y := range grid {
		grid[y] = make([]Kind, b.cols)
		copy(grid[y], b.cells[y*b.cols:(y+1)*b.cols])
	}
	return grid
}
