package tetris

import "fmt"

// Direction is a one-cell translation.
type Direction uint8

const (
	Down Direction = iota
	Left
	Right
	// Up is only used internally when probing placements.
	Up
)

// Collides reports whether any occupied cell of p lies outside the board or
// on a locked cell. Empty cells of the grid are never tested.
func Collides(b *Board, p Piece) bool {
	for x, y := range p.Cells() {
		if !b.InBounds(x, y) || b.Occupied(x, y) {
			return true
		}
	}
	return false
}

// Move returns p shifted one cell in d together with whether that candidate
// collides. p itself is not modified.
func Move(b *Board, p Piece, d Direction) (Piece, bool) {
	switch d {
	case Down:
		p.Y++
	case Up:
		p.Y--
	case Left:
		p.X--
	case Right:
		p.X++
	default:
		panic(fmt.Sprintf("tetris: unknown direction %d", d))
	}
	return p, Collides(b, p)
}

// Rotate returns p with its grid turned 90 degrees at the same offset. There
// are no wall kicks: callers check the result with Collides and discard it on
// collision.
func Rotate(p Piece, clockwise bool) Piece {
	p.Shape = p.Shape.Rotate(clockwise)
	return p
}

// DropPosition returns the lowest position p reaches by falling straight
// down, which is p itself when it cannot move.
func DropPosition(b *Board, p Piece) Piece {
	if p.Shape.Count() == 0 {
		return p
	}

	// an occupied cell sliding past the bottom row always collides
	for {
		next, collides := Move(b, p, Down)
		if collides {
			return p
		}
		p = next
	}
}

// Stamp writes the kind of every occupied in-bounds cell of p into the
// board. Cells outside the board are skipped.
func Stamp(b *Board, p Piece) {
	for x, y := range p.Cells() {
		if b.InBounds(x, y) {
			b.Set(x, y, p.Kind)
		}
	}
}
