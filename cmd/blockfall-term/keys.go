package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var keyCommands = map[tcell.Key]tetris.Command{
	tcell.KeyLeft:   tetris.MoveLeft,
	tcell.KeyRight:  tetris.MoveRight,
	tcell.KeyDown:   tetris.SoftDrop,
	tcell.KeyUp:     tetris.RotateCW,
	tcell.KeyEscape: tetris.TogglePause,
}

var runeCommands = map[rune]tetris.Command{
	' ': tetris.HardDrop,
	'x': tetris.RotateCW,
	'z': tetris.RotateCCW,
	'p': tetris.TogglePause,
	'r': tetris.Restart,
}

// commandForKey maps a key event to a session command.
func commandForKey(ev *tcell.EventKey) (tetris.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := runeCommands[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := keyCommands[ev.Key()]
	return cmd, ok
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}
