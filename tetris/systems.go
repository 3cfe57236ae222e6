package tetris

import "github.com/plus3/blockfall/sim"

// GravitySystem drops the active piece once its cooldown has elapsed. A
// piece that cannot fall is locked and replaced; if the replacement collides
// at spawn the session ends. Ghost and line clear still run on that tick.
type GravitySystem struct{}

func (g *GravitySystem) Execute(frame *sim.UpdateFrame[*Session]) {
	s := frame.World
	if s.state != Running {
		frame.Commands.Halt()
		return
	}

	if frame.Time < s.active.LastTime+s.active.Cooldown {
		return
	}

	next, collides := Move(s.board, s.active, Down)
	if !collides {
		next.LastTime = frame.Time
		s.active = next
		return
	}

	locked := s.active.Kind
	Stamp(s.board, s.active)
	s.locks++
	frame.Commands.Defer(func() {
		s.emit(Event{Type: EventLocked, Kind: locked, Time: frame.Time})
	})

	if s.spawn(s.active.Cooldown) {
		s.state = GameOver
		frame.Commands.Defer(func() {
			s.emit(Event{Type: EventGameOver, Time: frame.Time})
		})
	}
}

// GhostSystem keeps the drop preview in step with the active piece.
type GhostSystem struct{}

func (g *GhostSystem) Execute(frame *sim.UpdateFrame[*Session]) {
	frame.World.refreshGhost()
}

// LineClearSystem removes full rows top to bottom. Each removed row shortens
// the fall cooldown by CooldownStep, never below MinCooldown, and restarts
// the fall timer so the new speed applies at once.
type LineClearSystem struct{}

func (l *LineClearSystem) Execute(frame *sim.UpdateFrame[*Session]) {
	s := frame.World

	cleared := 0
	for y := 0; y < s.board.Rows(); y++ {
		if !s.board.RowFull(y) {
			continue
		}
		s.board.ClearRow(y)
		cleared++

		s.active.Cooldown = max(s.cfg.MinCooldown, s.active.Cooldown-s.cfg.CooldownStep)
		s.active.LastTime = frame.Time
	}

	if cleared == 0 {
		return
	}

	s.lines += cleared
	s.refreshGhost()
	frame.Commands.Defer(func() {
		s.emit(Event{Type: EventLinesCleared, Rows: cleared, Time: frame.Time})
	})
}
