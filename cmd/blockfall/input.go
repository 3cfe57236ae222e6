package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
)

// keyBindings maps keys to session commands. Several keys may share a command.
var keyBindings = []struct {
	Key     ebiten.Key
	Command tetris.Command
}{
	{ebiten.KeyArrowLeft, tetris.MoveLeft},
	{ebiten.KeyArrowRight, tetris.MoveRight},
	{ebiten.KeyArrowDown, tetris.SoftDrop},
	{ebiten.KeySpace, tetris.HardDrop},
	{ebiten.KeyArrowUp, tetris.RotateCW},
	{ebiten.KeyX, tetris.RotateCW},
	{ebiten.KeyZ, tetris.RotateCCW},
	{ebiten.KeyEscape, tetris.TogglePause},
	{ebiten.KeyR, tetris.Restart},
}

// commandsFor returns the commands bound to the keys for which pressed
// reports true, in binding order.
func commandsFor(pressed func(ebiten.Key) bool) []tetris.Command {
	var commands []tetris.Command
	for _, binding := range keyBindings {
		if pressed(binding.Key) {
			commands = append(commands, binding.Command)
		}
	}
	return commands
}

// pollCommands returns the commands for keys pressed since the last tick.
func pollCommands() []tetris.Command {
	return commandsFor(inpututil.IsKeyJustPressed)
}
