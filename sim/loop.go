package sim

import (
	"context"
	"time"
)

// Stepper is anything that advances with elapsed wall seconds and reports how
// many fixed ticks it ran.
type Stepper interface {
	Step(elapsed float64) int
}

// StepperFunc adapts a function to the Stepper interface.
type StepperFunc func(elapsed float64) int

func (f StepperFunc) Step(elapsed float64) int {
	return f(elapsed)
}

// RunLoop calls stepper.Step with the measured wall time between ticker
// deliveries until ctx is cancelled. It returns the total number of ticks
// executed.
func RunLoop(ctx context.Context, interval time.Duration, stepper Stepper) int64 {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var total int64
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return total
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if dt < 0 {
				dt = 0
			}
			total += int64(stepper.Step(dt))
		}
	}
}
