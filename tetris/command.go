package tetris

//go:generate go tool stringer -type=Command

// Command is one discrete player input. The set is closed; Session.Apply is
// the only way input reaches a session.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateCW
	RotateCCW
	TogglePause
	Restart
)

// Commands returns every command.
func Commands() []Command {
	return []Command{MoveLeft, MoveRight, SoftDrop, HardDrop, RotateCW, RotateCCW, TogglePause, Restart}
}
