package sim

// System is one ordered step of a tick. Systems keep whatever state they need
// between frames in their own fields; the world they act on arrives through
// the frame.
type System[W any] interface {
	Execute(frame *UpdateFrame[W])
}
