package tetris_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestBagDealsEveryKindPerRound(t *testing.T) {
	bag := tetris.NewBag(rand.New(rand.NewPCG(1, 1)))

	for round := 0; round < 20; round++ {
		seen := make(map[tetris.Kind]int)
		for i := 0; i < 7; i++ {
			seen[bag.Next()]++
		}
		for _, kind := range tetris.Kinds() {
			assert.Equal(t, 1, seen[kind], "round %d kind %v", round, kind)
		}
	}
}

func TestRandomizersAreDeterministic(t *testing.T) {
	a := tetris.NewBag(rand.New(rand.NewPCG(9, 9)))
	b := tetris.NewBag(rand.New(rand.NewPCG(9, 9)))
	u1 := tetris.NewUniform(rand.New(rand.NewPCG(5, 6)))
	u2 := tetris.NewUniform(rand.New(rand.NewPCG(5, 6)))

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
		k := u1.Next()
		assert.True(t, k.Valid())
		assert.Equal(t, k, u2.Next())
	}
}

func TestSequence(t *testing.T) {
	seq := tetris.NewSequence(tetris.S, tetris.Z)
	assert.Equal(t, []tetris.Kind{tetris.S, tetris.Z, tetris.S, tetris.Z}, []tetris.Kind{seq.Next(), seq.Next(), seq.Next(), seq.Next()})

	assert.Panics(t, func() { tetris.NewSequence() })
	assert.Panics(t, func() { tetris.NewSequence(tetris.Empty) })
}

func TestSessionSeedIsReproducible(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 1234

	kinds := func() []tetris.Kind {
		session, err := tetris.NewSession(cfg)
		if err != nil {
			t.Fatal(err)
		}
		var out []tetris.Kind
		for i := 0; i < 10; i++ {
			out = append(out, session.Active().Kind)
			session.Apply(tetris.HardDrop)
			session.Step(session.DT())
		}
		return out
	}

	assert.Equal(t, kinds(), kinds())
}
