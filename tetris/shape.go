package tetris

import "fmt"

// Shape is a square occupancy grid indexed [row][col].
type Shape [][]bool

// MustShape builds a Shape from rows of text where '#' marks an occupied
// cell and any other rune an empty one. It panics unless the rows form a
// non-empty square.
func MustShape(rows ...string) Shape {
	n := len(rows)
	if n == 0 {
		panic("tetris: empty shape")
	}

	shape := make(Shape, n)
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != n {
			panic(fmt.Sprintf("tetris: shape row %d has %d cells, want %d", y, len(cells), n))
		}
		shape[y] = make([]bool, n)
		for x, r := range cells {
			shape[y][x] = r == '#'
		}
	}

	return shape
}

// Size returns the edge length of the grid.
func (s Shape) Size() int {
	return len(s)
}

// Occupied reports whether the local cell (x, y) is filled.
func (s Shape) Occupied(x, y int) bool {
	return s[y][x]
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy that shares no memory with s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y := range s {
		out[y] = make([]bool, len(s[y]))
		copy(out[y], s[y])
	}
	return out
}

// Rotate returns a new grid turned 90 degrees. s is left untouched.
func (s Shape) Rotate(clockwise bool) Shape {
	size := len(s)
	rotated := make(Shape, size)
	for i := range rotated {
		rotated[i] = make([]bool, size)
	}

	for i := range size {
		for j := range size {
			if clockwise {
				rotated[j][size-1-i] = s[i][j]
			} else {
				rotated[size-1-j][i] = s[i][j]
			}
		}
	}

	return rotated
}

// Equal reports whether both grids have the same size and occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

func (s Shape) String() string {
	buf := make([]byte, 0, len(s)*(len(s)+1))
	for y, row := range s {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for _, filled := range row {
			if filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
