package game

import "math/rand"

// Bag produces the sequence of piece kinds using the 7-bag shuffle:
// each kind appears exactly once per bag cycle before any repeats, so
// no shape can drought for more than 12 draws.
//
// The random source is owned explicitly and seeded by the caller,
// never taken from package-global state, so tests can replay games.
type Bag struct {
	rng       *rand.Rand
	remaining []PieceKind
}

// NewBag creates a bag randomizer drawing from the given source.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next draws the next piece kind, refilling and reshuffling the bag
// when the current cycle is exhausted.
func (b *Bag) Next() PieceKind {
	if len(b.remaining) == 0 {
		b.refill()
	}
	kind := b.remaining[len(b.remaining)-1]
	b.remaining = b.remaining[:len(b.remaining)-1]
	return kind
}

func (b *Bag) refill() {
	b.remaining = Kinds()
	b.rng.Shuffle(len(b.remaining), func(i, j int) {
		b.remaining[i], b.remaining[j] = b.remaining[j], b.remaining[i]
	})
}
