package tetris

//go:generate go tool stringer -type=Kind

// Kind tags a board cell or a piece. The zero value is an empty cell.
type Kind uint8

const (
	Empty Kind = iota
	I
	O
	T
	S
	Z
	J
	L
)

// Kinds returns every piece kind in definition order.
func Kinds() []Kind {
	return []Kind{I, O, T, S, Z, J, L}
}

// Valid reports whether k names a piece kind (not Empty).
func (k Kind) Valid() bool {
	return k >= I && k <= L
}
