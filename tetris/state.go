package tetris

//go:generate go tool stringer -type=State

// State is the session's position in its lifecycle.
type State uint8

const (
	Running State = iota
	Paused
	GameOver
)
