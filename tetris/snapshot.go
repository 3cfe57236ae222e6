package tetris

// PieceView is a render-ready copy of a piece.
type PieceView struct {
	Kind  Kind
	X, Y  int
	Shape Shape
}

func viewOf(p Piece) PieceView {
	return PieceView{
		Kind:  p.Kind,
		X:     p.X,
		Y:     p.Y,
		Shape: p.Shape.Clone(),
	}
}

// Snapshot is a read-only copy of everything a renderer or HUD needs.
// Nothing in it aliases session memory.
type Snapshot struct {
	Cols  int
	Rows  int
	Cells [][]Kind

	Active PieceView
	Ghost  PieceView

	State    State
	Time     float64
	Ticks    uint64
	Frame    uint64
	Lines    int
	Locks    int
	Cooldown float64

	// Alpha is the fraction of a tick carried over by the last Step.
	Alpha float64
	// Fall is how far the active piece is through its fall cooldown at
	// render time, in [0, 1]. It is 0 while the piece rests on the stack.
	Fall float64
}

// Cells yields the absolute coordinates of every occupied cell of the view.
func (v PieceView) Cells() func(yield func(x, y int) bool) {
	return Piece{Shape: v.Shape, X: v.X, Y: v.Y}.Cells()
}

func (s Snapshot) Running() bool  { return s.State == Running }
func (s Snapshot) Paused() bool   { return s.State == Paused }
func (s Snapshot) GameOver() bool { return s.State == GameOver }

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Cols:     s.board.Cols(),
		Rows:     s.board.Rows(),
		Cells:    s.board.Grid(),
		Active:   viewOf(s.active),
		Ghost:    viewOf(s.ghost),
		State:    s.state,
		Time:     s.now,
		Ticks:    s.clock.Ticks(),
		Frame:    s.frame,
		Lines:    s.lines,
		Locks:    s.locks,
		Cooldown: s.active.Cooldown,
		Alpha:    s.clock.Alpha(),
		Fall:     s.fallProgress(),
	}
}

func (s *Session) fallProgress() float64 {
	if s.state != Running || s.ghost.Y <= s.active.Y {
		return 0
	}
	t := s.now + s.clock.Alpha()*s.clock.DT()
	return min(max((t-s.active.LastTime)/s.active.Cooldown, 0), 1)
}
