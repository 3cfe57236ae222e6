package tetris

import "math/rand/v2"

// Randomizer chooses the kind of each spawned piece.
type Randomizer interface {
	Next() Kind
}

// Bag deals every kind once per shuffled round.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

func (b *Bag) Next() Kind {
	if len(b.queue) == 0 {
		b.queue = Kinds()
		b.rng.Shuffle(len(b.queue), func(i, j int) {
			b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
		})
	}

	kind := b.queue[0]
	b.queue = b.queue[1:]
	return kind
}

// Uniform picks each kind independently.
type Uniform struct {
	rng   *rand.Rand
	kinds []Kind
}

func NewUniform(rng *rand.Rand) *Uniform {
	return &Uniform{rng: rng, kinds: Kinds()}
}

func (u *Uniform) Next() Kind {
	return u.kinds[u.rng.IntN(len(u.kinds))]
}

// Sequence cycles through a fixed list of kinds.
type Sequence struct {
	kinds []Kind
	next  int
}

func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		panic("tetris: empty sequence")
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic("tetris: sequence contains " + k.String())
		}
	}
	return &Sequence{kinds: append([]Kind(nil), kinds...)}
}

func (s *Sequence) Next() Kind {
	kind := s.kinds[s.next]
	s.next = (s.next + 1) % len(s.kinds)
	return kind
}

func newRandomizer(name string, seed uint64) Randomizer {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	if name == RandomizerUniform {
		return NewUniform(rng)
	}
	return NewBag(rng)
}
