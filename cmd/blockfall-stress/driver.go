package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/arena"
	"github.com/plus3/blockfall/tetris"
)

// moves excludes the lifecycle commands; the driver pauses and restarts
// sessions itself.
var moves = []tetris.Command{
	tetris.MoveLeft,
	tetris.MoveRight,
	tetris.SoftDrop,
	tetris.HardDrop,
	tetris.RotateCW,
	tetris.RotateCCW,
}

// Driver plays every session of an arena with random commands.
type Driver struct {
	Arena *arena.Arena

	// CommandRate is the expected number of commands per session per
	// simulated second.
	CommandRate float64

	rng *rand.Rand

	Commands int64
	Accepted int64
	Games    int64
}

func NewDriver(a *arena.Arena, commandRate float64, seed uint64) *Driver {
	return &Driver{
		Arena:       a,
		CommandRate: commandRate,
		rng:         rand.New(rand.NewPCG(seed, seed+1)),
	}
}

// Step issues random commands, restarts finished games and advances the
// arena by elapsed seconds. It returns the ticks executed.
func (d *Driver) Step(elapsed float64) int {
	p := d.CommandRate * elapsed
	for id, session := range d.Arena.All() {
		if session.State() == tetris.GameOver {
			d.Games++
			d.dispatch(id, tetris.Restart)
			continue
		}

		for n := p; n > 0; n-- {
			if n < 1 && d.rng.Float64() >= n {
				break
			}
			d.dispatch(id, moves[d.rng.IntN(len(moves))])
		}
	}

	return d.Arena.Step(elapsed)
}

func (d *Driver) dispatch(id arena.SessionID, cmd tetris.Command) {
	d.Commands++
	if d.Arena.Dispatch(id, cmd) {
		d.Accepted++
	}
}
