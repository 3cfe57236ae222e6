package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// ExampleSession shows a host loop: commands go through Apply, time goes
// through Step, and rendering reads a Snapshot.
func ExampleSession() {
	session, err := tetris.NewSession(tetris.DefaultConfig(), tetris.WithRandomizer(tetris.NewSequence(tetris.I, tetris.T)))
	if err != nil {
		panic(err)
	}

	session.Subscribe(func(ev tetris.Event) {
		fmt.Println("event:", ev.Type, ev.Kind)
	})

	session.Apply(tetris.MoveLeft)
	session.Apply(tetris.HardDrop)
	session.Step(session.DT())

	snap := session.Snapshot()
	fmt.Println(snap.State, snap.Locks, snap.Active.Kind, snap.Ghost.Y)
	var filled []int
	for x, kind := range snap.Cells[snap.Rows-1] {
		if kind != tetris.Empty {
			filled = append(filled, x)
		}
	}
	fmt.Println(filled)

	// Output:
	// event: Locked I
	// Running 1 T 13
	// [2 3 4 5]
}
