package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
)

func BenchmarkSessionTick(b *testing.B) {
	session, err := tetris.NewSession(tetris.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	dt := session.DT()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		session.Step(dt)
		if !session.Running() {
			session.Apply(tetris.Restart)
		}
	}
}

func BenchmarkHardDropCycle(b *testing.B) {
	session, err := tetris.NewSession(tetris.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	dt := session.DT()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		session.Apply(tetris.HardDrop)
		session.Step(dt)
		if session.State() == tetris.GameOver {
			session.Apply(tetris.Restart)
		}
	}
}

func BenchmarkDropPosition(b *testing.B) {
	board := tetris.NewBoard(10, 16)
	piece := tetris.NewPiece(tetris.T, 1, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tetris.DropPosition(board, piece)
	}
}

func BenchmarkSnapshot(b *testing.B) {
	session, err := tetris.NewSession(tetris.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = session.Snapshot()
	}
}
