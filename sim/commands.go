package sim

// Commands buffers work that must run after every system of a frame has
// executed, such as notifying observers about changes made mid-frame.
type Commands struct {
	defers []func()
	halted bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Halt stops the remaining systems of the current frame from executing.
// Deferred work is still flushed.
func (c *Commands) Halt() {
	c.halted = true
}

// Halted reports whether a system halted the current frame.
func (c *Commands) Halted() bool {
	return c.halted
}

// Len returns the number of queued deferred functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs every deferred function in queue order and resets the buffer.
// Functions deferred during the flush run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}

	clear(c.defers)
	c.defers = c.defers[:0]
	c.halted = false
}
