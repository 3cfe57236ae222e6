package main

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newHost(t *testing.T, kinds ...tetris.Kind) (*host, context.Context) {
	t.Helper()
	session, err := tetris.NewSession(tetris.DefaultConfig(), tetris.WithRandomizer(tetris.NewSequence(kinds...)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return &host{
		screen:  newSimScreen(t),
		session: session,
		events:  make(chan tcell.Event, 16),
		cancel:  cancel,
	}, ctx
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		cmd  tetris.Command
		ok   bool
		quit bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), tetris.MoveLeft, true, false},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), tetris.MoveRight, true, false},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), tetris.SoftDrop, true, false},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), tetris.RotateCW, true, false},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), tetris.HardDrop, true, false},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), tetris.RotateCCW, true, false},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), tetris.Restart, true, false},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), tetris.TogglePause, true, false},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 0, false, true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), 0, false, true},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), 0, false, false},
	}

	for _, tt := range tests {
		cmd, ok := commandForKey(tt.ev)
		assert.Equal(t, tt.ok, ok, tt.ev.Name())
		if ok {
			assert.Equal(t, tt.cmd, cmd, tt.ev.Name())
		}
		assert.Equal(t, tt.quit, isQuit(tt.ev), tt.ev.Name())
	}
}

func TestHostAppliesQueuedKeys(t *testing.T) {
	h, ctx := newHost(t, tetris.T)

	h.events <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	h.events <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	h.Step(0)

	assert.Empty(t, h.events)
	assert.Equal(t, 1, h.session.Active().X)
	assert.NoError(t, ctx.Err())

	h.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	h.Step(0)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestDrawShowsPieceAndHUD(t *testing.T) {
	h, _ := newHost(t, tetris.O)
	h.Step(0)

	screen := h.screen.(tcell.SimulationScreen)
	cells, width, _ := screen.GetContents()
	at := func(x, y int) rune {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			return ' '
		}
		return runes[0]
	}

	assert.Equal(t, '┌', at(originX, originY))

	// O spawns at (3,-1) so its cells sit in columns 4-5 of row 0
	for _, x := range []int{4, 5} {
		sx := originX + 1 + x*cellWidth
		assert.Equal(t, '█', at(sx, originY+1))
		assert.Equal(t, '█', at(sx+1, originY+1))
	}
	assert.Equal(t, '·', at(originX+1, originY+1))

	// ghost rests on the floor
	rows := h.session.Config().Rows
	assert.Equal(t, '░', at(originX+1+4*cellWidth, originY+rows))

	require.True(t, h.session.Apply(tetris.TogglePause))
	h.Step(0)
	cells, width, _ = screen.GetContents()
	hudX := originX + h.session.Config().Cols*cellWidth + 4
	assert.Equal(t, 'P', at(hudX, originY+6))
}
