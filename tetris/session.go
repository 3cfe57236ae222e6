package tetris

import (
	"fmt"
	"math"

	"github.com/plus3/blockfall/sim"
)

// Session is one self-contained game: board, active piece, ghost, lifecycle
// state and every counter. It is not safe for concurrent use; hosts drive it
// from a single goroutine.
type Session struct {
	cfg   Config
	board *Board

	active Piece
	ghost  Piece
	state  State

	frame uint64
	now   float64
	lines int
	locks int

	randomizer  Randomizer
	clock       *sim.Clock
	scheduler   *sim.Scheduler[*Session]
	subscribers []func(Event)
}

// Option customises a session at construction.
type Option func(*Session)

// WithRandomizer replaces the randomizer named by the config.
func WithRandomizer(r Randomizer) Option {
	return func(s *Session) {
		s.randomizer = r
	}
}

// NewSession validates cfg and starts a running session with a freshly
// spawned piece.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        cfg,
		randomizer: newRandomizer(cfg.Randomizer, cfg.Seed),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.clock = sim.NewClock(cfg.DT(), cfg.MaxFrame, s.Running, s.tick)

	s.scheduler = sim.NewScheduler[*Session]()
	s.scheduler.Register(&GravitySystem{})
	s.scheduler.Register(&GhostSystem{})
	s.scheduler.Register(&LineClearSystem{})

	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.board = NewBoard(s.cfg.Cols, s.cfg.Rows)
	s.state = Running
	s.frame = 0
	s.now = 0
	s.lines = 0
	s.locks = 0
	s.clock.Reset()
	s.spawn(s.cfg.InitialCooldown)
}

// spawn replaces the active piece and reports whether the new piece collides
// at its spawn offset.
func (s *Session) spawn(cooldown float64) bool {
	s.active = NewPiece(s.randomizer.Next(), cooldown, s.now)
	s.refreshGhost()
	return Collides(s.board, s.active)
}

func (s *Session) refreshGhost() {
	s.ghost = DropPosition(s.board, s.active)
}

// Step advances the session by elapsed wall seconds. It is the per-frame
// entry point for hosts and returns the number of ticks executed.
func (s *Session) Step(elapsed float64) int {
	if s.Running() && !s.clock.Stopped() {
		s.frame++
	}
	return s.clock.Step(elapsed)
}

func (s *Session) tick(now float64) {
	s.now = now
	s.scheduler.Once(s, s.clock.DT(), now)
}

// Close stops the session's clock for good.
func (s *Session) Close() {
	s.clock.Stop()
}

// Apply executes one command and reports whether it changed the session.
// Movement and rotation only apply while running; a move or rotation that
// would collide is rejected.
func (s *Session) Apply(cmd Command) bool {
	switch cmd {
	case TogglePause:
		switch s.state {
		case Running:
			s.state = Paused
		case Paused:
			s.state = Running
		default:
			return false
		}
		return true
	case Restart:
		if s.state == Running {
			return false
		}
		s.reset()
		s.emit(Event{Type: EventRestarted, Time: s.now})
		return true
	}

	if s.state != Running {
		return false
	}

	switch cmd {
	case MoveLeft:
		return s.shift(Left)
	case MoveRight:
		return s.shift(Right)
	case SoftDrop:
		if !s.shift(Down) {
			return false
		}
		s.active.LastTime = s.now
		return true
	case HardDrop:
		s.active = DropPosition(s.board, s.active)
		// lock on the next tick regardless of cooldown
		s.active.LastTime = math.Inf(-1)
		s.refreshGhost()
		return true
	case RotateCW, RotateCCW:
		candidate := Rotate(s.active, cmd == RotateCW)
		if Collides(s.board, candidate) {
			return false
		}
		s.active = candidate
		s.refreshGhost()
		return true
	default:
		panic(fmt.Sprintf("tetris: unknown command %v", cmd))
	}
}

func (s *Session) shift(d Direction) bool {
	candidate, collides := Move(s.board, s.active, d)
	if collides {
		return false
	}
	s.active = candidate
	s.refreshGhost()
	return true
}

// Subscribe registers fn to receive every event the session emits.
func (s *Session) Subscribe(fn func(Event)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) emit(ev Event) {
	for _, fn := range s.subscribers {
		fn(ev)
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Running() bool {
	return s.state == Running
}

func (s *Session) Config() Config {
	return s.cfg
}

// Time returns the simulation time in seconds.
func (s *Session) Time() float64 {
	return s.now
}

// DT returns the fixed tick duration.
func (s *Session) DT() float64 {
	return s.clock.DT()
}

// Alpha is the render interpolation fraction left over from the last Step.
func (s *Session) Alpha() float64 {
	return s.clock.Alpha()
}

// Frame counts Step calls made while running.
func (s *Session) Frame() uint64 {
	return s.frame
}

func (s *Session) Ticks() uint64 {
	return s.clock.Ticks()
}

// Lines returns the number of rows cleared since the last restart.
func (s *Session) Lines() int {
	return s.lines
}

// Locks returns the number of pieces locked since the last restart.
func (s *Session) Locks() int {
	return s.locks
}

// Active returns a copy of the falling piece.
func (s *Session) Active() Piece {
	return s.active.Clone()
}

// Ghost returns a copy of the drop preview.
func (s *Session) Ghost() Piece {
	return s.ghost.Clone()
}

// Board returns a copy of the locked cells.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

// SchedulerStats exposes per-system timing of the tick pipeline.
func (s *Session) SchedulerStats() *sim.SchedulerStats {
	return s.scheduler.Stats()
}
