package sim

import "math"

// DefaultMaxFrame bounds how much wall time a single Step may feed into the
// accumulator.
const DefaultMaxFrame = 0.25

// Clock converts irregular frame deltas into fixed-duration ticks.
// It holds only accumulator state; the host owns the loop and calls Step
// once per delivered frame.
type Clock struct {
	dt       float64
	maxFrame float64

	accumulator float64
	ticks       uint64
	stopped     bool

	running func() bool
	tick    func(simTime float64)
}

// NewClock creates a clock that calls tick once per dt of accumulated time
// while running reports true. A nil running predicate means always running.
// maxFrame <= 0 selects DefaultMaxFrame.
func NewClock(dt, maxFrame float64, running func() bool, tick func(simTime float64)) *Clock {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		panic("sim: clock tick duration must be positive and finite")
	}
	if tick == nil {
		panic("sim: clock requires a tick function")
	}
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrame
	}
	if running == nil {
		running = func() bool { return true }
	}

	return &Clock{
		dt:       dt,
		maxFrame: maxFrame,
		running:  running,
		tick:     tick,
	}
}

// Step feeds elapsed wall seconds into the clock and runs every tick that is
// due. It returns the number of ticks executed.
func (c *Clock) Step(elapsed float64) int {
	if elapsed < 0 || math.IsNaN(elapsed) {
		panic("sim: negative or NaN elapsed time")
	}
	if c.stopped || !c.running() {
		return 0
	}

	if elapsed > c.maxFrame {
		elapsed = c.maxFrame
	}
	c.accumulator += elapsed

	n := 0
	for c.accumulator >= c.dt {
		c.ticks++
		c.accumulator -= c.dt
		n++
		c.tick(c.Time())

		// the tick may have paused the owner or torn the clock down
		if c.stopped || !c.running() {
			c.accumulator = 0
			break
		}
	}

	return n
}

// Time returns the simulation time: exactly dt per executed tick.
func (c *Clock) Time() float64 {
	return float64(c.ticks) * c.dt
}

// Ticks returns the number of ticks executed since creation or the last Reset.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// DT returns the fixed tick duration in seconds.
func (c *Clock) DT() float64 {
	return c.dt
}

// Alpha is the fraction of a tick left in the accumulator, for render
// interpolation.
func (c *Clock) Alpha() float64 {
	return c.accumulator / c.dt
}

// Reset zeroes simulation time and the accumulator. A stopped clock stays
// stopped.
func (c *Clock) Reset() {
	c.accumulator = 0
	c.ticks = 0
}

// Stop permanently halts the clock. Further Step calls are no-ops.
func (c *Clock) Stop() {
	c.stopped = true
	c.accumulator = 0
}

// Stopped reports whether Stop has been called.
func (c *Clock) Stopped() bool {
	return c.stopped
}
