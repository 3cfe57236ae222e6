package tetris

//go:generate go tool stringer -type=EventType -trimprefix=Event

// EventType identifies what happened inside a session.
type EventType uint8

const (
	EventLocked EventType = iota
	EventLinesCleared
	EventGameOver
	EventRestarted
)

// Event is delivered to subscribers after the tick or command that caused it
// has finished mutating the session.
type Event struct {
	Type EventType
	// Kind is the piece that locked, for EventLocked.
	Kind Kind
	// Rows is the number of rows removed, for EventLinesCleared.
	Rows int
	Time float64
}
