package playfield

import (
	"fmt"
	"math/rand/v2"
)

// ShapeProvider supplies the shape of each newly spawned piece.
type ShapeProvider interface {
	NextShape() ShapeKind
}

// ShapeProviderFunc adapts a function to ShapeProvider.
type ShapeProviderFunc func() ShapeKind

func (f ShapeProviderFunc) NextShape() ShapeKind {
	return f()
}

// Randomizer decides which shape comes next.
type Randomizer interface {
	Draw() ShapeKind
}

// UniformRandomizer picks every shape independently with equal odds.
type UniformRandomizer struct {
	rng *rand.Rand
}

func NewUniformRandomizer(seed uint64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *UniformRandomizer) Draw() ShapeKind {
	return Shapes[r.rng.IntN(len(Shapes))]
}

// BagRandomizer deals all seven shapes in a shuffled order before repeating.
type BagRandomizer struct {
	rng *rand.Rand
	bag []ShapeKind
}

func NewBagRandomizer(seed uint64) *BagRandomizer {
	return &BagRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *BagRandomizer) Draw() ShapeKind {
	if len(r.bag) == 0 {
		r.bag = append(r.bag[:0], Shapes...)
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}

	next := r.bag[0]
	r.bag = r.bag[1:]
	return next
}

// NewRandomizer builds a randomizer by name: "uniform" or "bag".
func NewRandomizer(name string, seed uint64) (Randomizer, error) {
	switch name {
	case "", "uniform":
		return NewUniformRandomizer(seed), nil
	case "bag":
		return NewBagRandomizer(seed), nil
	}
	return nil, fmt.Errorf("unknown randomizer %q", name)
}

// Queue is a ShapeProvider with a fixed-length preview of upcoming shapes.
type Queue struct {
	rnd      Randomizer
	upcoming []ShapeKind
}

// NewQueue fills a preview of size shapes from rnd.
func NewQueue(rnd Randomizer, size int) *Queue {
	if size < 1 {
		size = 1
	}
	q := &Queue{
		rnd:      rnd,
		upcoming: make([]ShapeKind, size),
	}
	for i := range q.upcoming {
		q.upcoming[i] = rnd.Draw()
	}
	return q
}

// NextShape pops the head of the preview and refills the tail.
func (q *Queue) NextShape() ShapeKind {
	next := q.upcoming[0]
	copy(q.upcoming, q.upcoming[1:])
	q.upcoming[len(q.upcoming)-1] = q.rnd.Draw()
	return next
}

// Peek returns a copy of the upcoming shapes, next first.
func (q *Queue) Peek() []ShapeKind {
	out := make([]ShapeKind, len(q.upcoming))
	copy(out, q.upcoming)
	return out
}

// FixedProvider deals a fixed sequence and then repeats its last shape.
type FixedProvider struct {
	shapes []ShapeKind
	next   int
}

func NewFixedProvider(shapes ...ShapeKind) *FixedProvider {
	return &FixedProvider{shapes: shapes}
}

func (p *FixedProvider) NextShape() ShapeKind {
	if p.next < len(p.shapes)-1 {
		p.next++
		return p.shapes[p.next-1]
	}
	return p.shapes[len(p.shapes)-1]
}
