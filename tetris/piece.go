package tetris

import (
	"fmt"
	"image/color"
)

// Definition is the static description of a piece kind. Definitions are
// package-owned and never handed out by reference; pieces always receive a
// private copy of the grid.
type Definition struct {
	Kind   Kind
	SpawnX int
	SpawnY int
	Color  color.RGBA

	shape Shape
}

// Shape returns a copy of the definition's spawn orientation.
func (d Definition) Shape() Shape {
	return d.shape.Clone()
}

var definitions = [...]Definition{
	I: {
		Kind: I, SpawnX: 3, SpawnY: 0,
		Color: color.RGBA{102, 191, 255, 255},
		shape: MustShape(
			"####",
			"....",
			"....",
			"....",
		),
	},
	O: {
		Kind: O, SpawnX: 3, SpawnY: -1,
		Color: color.RGBA{255, 203, 0, 255},
		shape: MustShape(
			"....",
			".##.",
			".##.",
			"....",
		),
	},
	T: {
		Kind: T, SpawnX: 3, SpawnY: 0,
		Color: color.RGBA{200, 122, 255, 255},
		shape: MustShape(
			".#.",
			"###",
			"...",
		),
	},
	S: {
		Kind: S, SpawnX: 3, SpawnY: 0,
		Color: color.RGBA{0, 228, 48, 255},
		shape: MustShape(
			".##",
			"##.",
			"...",
		),
	},
	Z: {
		Kind: Z, SpawnX: 3, SpawnY: 0,
		Color: color.RGBA{255, 109, 194, 255},
		shape: MustShape(
			"##.",
			".##",
			"...",
		),
	},
	J: {
		Kind: J, SpawnX: 3, SpawnY: 0,
		Color: color.RGBA{0, 121, 241, 255},
		shape: MustShape(
			"#..",
			"###",
			"...",
		),
	},
	L: {
		Kind: L, SpawnX: 3, SpawnY: 0,
		Color: color.RGBA{255, 161, 0, 255},
		shape: MustShape(
			"..#",
			"###",
			"...",
		),
	},
}

// DefinitionOf returns the static definition for a piece kind. It panics on
// Empty or an unknown kind.
func DefinitionOf(k Kind) Definition {
	if !k.Valid() {
		panic(fmt.Sprintf("tetris: no definition for %v", k))
	}
	return definitions[k]
}

// Piece is the falling shape: an owned grid, its board offset, and its fall
// timing.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int

	// Cooldown is the simulated time between automatic falls.
	Cooldown float64
	// LastTime is the simulation time of the last downward move.
	LastTime float64
}

// NewPiece spawns kind at its definition's offset with a private copy of the
// grid.
func NewPiece(kind Kind, cooldown, now float64) Piece {
	def := DefinitionOf(kind)
	return Piece{
		Kind:     kind,
		Shape:    def.Shape(),
		X:        def.SpawnX,
		Y:        def.SpawnY,
		Cooldown: cooldown,
		LastTime: now,
	}
}

// Clone returns a copy that shares no grid memory with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells yields the absolute board coordinates of every occupied cell.
func (p Piece) Cells() func(yield func(x, y int) bool) {
	return func(yield func(x, y int) bool) {
		for row := range p.Shape {
			for col, filled := range p.Shape[row] {
				if !filled {
					continue
				}
				if !yield(p.X+col, p.Y+row) {
					return
				}
			}
		}
	}
}
