package tetris

import "math/rand"

// KindSupplier produces the sequence of upcoming piece kinds. The game
// consumes it one kind at a time; deterministic suppliers make whole games
// reproducible.
type KindSupplier interface {
	Next() Kind
}

// Bag is a seven-bag randomizer: it deals each of the seven kinds exactly
// once, in shuffled order, before refilling. This bounds droughts; no kind
// can fail to appear for more than 13 deals.
type Bag struct {
	rng  *rand.Rand
	deck []Kind
}

// NewBag creates a seeded bag. Equal seeds produce equal deal sequences.
func NewBag(seed int64) *Bag {
	return &Bag{rng: rand.New(rand.NewSource(seed))}
}

// Next deals the next kind, refilling and reshuffling when the bag empties.
func (g *Bag) Next() Kind {
	if len(g.deck) == 0 {
		g.deck = AllKinds()
		g.rng.Shuffle(len(g.deck), func(i, j int) {
			g.deck[i], g.deck[j] = g.deck[j], g.deck[i]
		})
	}
	k := g.deck[0]
	g.deck = g.deck[1:]
	return k
}

// Queue is a scripted supplier that deals a fixed sequence and then cycles
// it. Used in tests to set up exact piece orders.
type Queue struct {
	kinds []Kind
	pos   int
}

// NewQueue creates a supplier over the given sequence. It panics on an
// empty sequence.
func NewQueue(kinds ...Kind) *Queue {
	if len(kinds) == 0 {
		panic("tetris: queue needs at least one kind")
	}
	return &Queue{kinds: kinds}
}

// Next deals the next scripted kind, wrapping around at the end.
func (q *Queue) Next() Kind {
	k := q.kinds[q.pos%len(q.kinds)]
	q.pos++
	return k
}
