package sim_test

import (
	"testing"

	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a power of two keeps accumulator arithmetic exact
const dt = 1.0 / 64.0

func TestClockStep(t *testing.T) {
	t.Run("ticks once per dt of accumulated time", func(t *testing.T) {
		var times []float64
		clock := sim.NewClock(dt, 0, nil, func(now float64) {
			times = append(times, now)
		})

		assert.Equal(t, 0, clock.Step(dt/2))
		assert.Equal(t, 1, clock.Step(dt/2+1e-9))
		assert.Equal(t, 3, clock.Step(3*dt))

		require.Len(t, times, 4)
		for i, now := range times {
			assert.Equal(t, float64(i+1)*dt, now)
		}
		assert.Equal(t, uint64(4), clock.Ticks())
		assert.Equal(t, 4*dt, clock.Time())
	})

	t.Run("caps catch-up per frame", func(t *testing.T) {
		count := 0
		clock := sim.NewClock(dt, 0.25, nil, func(float64) { count++ })

		clock.Step(10)

		assert.Equal(t, 16, count)
		assert.Less(t, clock.Alpha(), 1.0)
	})

	t.Run("sim time ignores frame jitter", func(t *testing.T) {
		a := sim.NewClock(dt, 0, nil, func(float64) {})
		b := sim.NewClock(dt, 0, nil, func(float64) {})

		for i := 0; i < 120; i++ {
			a.Step(dt)
		}
		for i := 0; i < 40; i++ {
			b.Step(3 * dt)
		}

		assert.Equal(t, a.Ticks(), b.Ticks())
		assert.Equal(t, a.Time(), b.Time())
	})

	t.Run("does not accumulate while not running", func(t *testing.T) {
		running := false
		count := 0
		clock := sim.NewClock(dt, 0, func() bool { return running }, func(float64) { count++ })

		clock.Step(0.2)
		assert.Equal(t, 0, count)
		assert.Equal(t, 0.0, clock.Time())

		running = true
		clock.Step(dt)
		assert.Equal(t, 1, count)
	})

	t.Run("tick that stops the owner drops the rest of the frame", func(t *testing.T) {
		running := true
		count := 0
		clock := sim.NewClock(dt, 0, func() bool { return running }, func(float64) {
			count++
			running = false
		})

		clock.Step(5 * dt)
		assert.Equal(t, 1, count)

		running = true
		clock.Step(0)
		assert.Equal(t, 1, count)
	})

	t.Run("stop is permanent", func(t *testing.T) {
		count := 0
		clock := sim.NewClock(dt, 0, nil, func(float64) { count++ })

		clock.Step(dt)
		clock.Stop()
		clock.Reset()

		assert.True(t, clock.Stopped())
		assert.Equal(t, 0, clock.Step(1))
		assert.Equal(t, 1, count)
	})

	t.Run("reset zeroes time", func(t *testing.T) {
		clock := sim.NewClock(dt, 0, nil, func(float64) {})
		clock.Step(10 * dt)
		clock.Reset()

		assert.Equal(t, 0.0, clock.Time())
		assert.Equal(t, uint64(0), clock.Ticks())
		assert.Equal(t, 0.0, clock.Alpha())
	})
}

func TestClockPreconditions(t *testing.T) {
	assert.Panics(t, func() { sim.NewClock(0, 0, nil, func(float64) {}) })
	assert.Panics(t, func() { sim.NewClock(dt, 0, nil, nil) })

	clock := sim.NewClock(dt, 0, nil, func(float64) {})
	assert.Panics(t, func() { clock.Step(-1) })
}
