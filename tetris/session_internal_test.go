package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInternalSession(t *testing.T, kinds ...Kind) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.TickRate = 64
	s, err := NewSession(cfg, WithRandomizer(NewSequence(kinds...)))
	require.NoError(t, err)
	return s
}

func TestLineClearSpeedsUpFall(t *testing.T) {
	s := newInternalSession(t, I)

	var events []Event
	s.Subscribe(func(ev Event) { events = append(events, ev) })

	for x := 0; x < 10; x++ {
		if x < 3 || x > 6 {
			s.board.Set(x, 15, Z)
		}
	}
	s.board.Set(0, 14, T)
	s.refreshGhost()

	require.True(t, s.Apply(HardDrop))
	s.Step(s.DT())

	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, 1, s.board.Filled())
	assert.Equal(t, T, s.board.At(0, 15))
	assert.InDelta(t, 0.99, s.active.Cooldown, 1e-12)
	assert.Equal(t, s.Time(), s.active.LastTime)

	require.Len(t, events, 2)
	assert.Equal(t, EventLocked, events[0].Type)
	assert.Equal(t, I, events[0].Kind)
	assert.Equal(t, EventLinesCleared, events[1].Type)
	assert.Equal(t, 1, events[1].Rows)
}

func TestLockedRowFiveScenario(t *testing.T) {
	s := newInternalSession(t, I)

	for x := 0; x < 10; x++ {
		if x != 3 {
			s.board.Set(x, 5, O)
		}
	}
	s.board.Set(1, 0, S)
	s.board.Set(8, 4, L)

	// a vertical I in column 3 resting on row 5
	s.active = Rotate(s.active, true)
	s.active.X, s.active.Y = 0, 2
	s.active.LastTime = -s.active.Cooldown
	require.False(t, Collides(s.board, s.active))
	s.board.Set(3, 6, J)

	before := s.board.Grid()
	filledAfterLock := s.board.Filled() + 4

	s.Step(s.DT())

	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, filledAfterLock-10, s.board.Filled())

	after := s.board.Grid()
	assert.Equal(t, S, after[1][1])
	assert.Equal(t, L, after[5][8])
	for y := 0; y <= 4; y++ {
		for x := 0; x < 10; x++ {
			if x == 3 && y >= 2 {
				assert.Equal(t, I, after[y+1][x])
				continue
			}
			assert.Equal(t, before[y][x], after[y+1][x], "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, before[6], after[6])
}

func TestCooldownFloor(t *testing.T) {
	s := newInternalSession(t, I)
	s.active.Cooldown = s.cfg.MinCooldown + s.cfg.CooldownStep/2

	for x := 0; x < 10; x++ {
		s.board.Set(x, 15, Z)
		s.board.Set(x, 14, Z)
	}
	s.Step(s.DT())

	assert.Equal(t, 2, s.Lines())
	assert.Equal(t, s.cfg.MinCooldown, s.active.Cooldown)
}

func TestGameOverTickStillClearsRows(t *testing.T) {
	s := newInternalSession(t, O)

	var events []Event
	s.Subscribe(func(ev Event) { events = append(events, ev) })

	// columns 4-5 blocked just under the spawn rows and a full floor row
	for y := 2; y < 15; y++ {
		s.board.Set(4, y, T)
		s.board.Set(5, y, T)
	}
	for x := 0; x < 10; x++ {
		s.board.Set(x, 15, Z)
	}
	s.active.LastTime = -s.active.Cooldown

	s.Step(s.DT())

	assert.Equal(t, GameOver, s.state)
	assert.False(t, s.Running())
	assert.Equal(t, 1, s.Lines())
	assert.False(t, s.board.RowFull(15))
	assert.Equal(t, T, s.board.At(4, 15))

	require.Len(t, events, 3)
	assert.Equal(t, EventLocked, events[0].Type)
	assert.Equal(t, EventGameOver, events[1].Type)
	assert.Equal(t, EventLinesCleared, events[2].Type)
	assert.Equal(t, 1, events[2].Rows)
}
