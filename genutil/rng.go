package genutil

import "math/rand/v2"

// DefaultSeed is the fixed seed used when a caller wants reproducible
// output without picking their own seed, matching the original design's
// "fixed default seed for reproducibility" contract (spec.md §5).
const DefaultSeed uint64 = 1

// Rng is a seedable source of randomness for the generator component.
// It is not safe for concurrent use; give each goroutine its own.
type Rng struct {
	r *rand.Rand
}

// NewRng returns an Rng seeded deterministically from seed.
func NewRng(seed uint64) *Rng {
	return &Rng{r: rand.New(rand.NewPCG(seed, seed))}
}

// DefaultRng returns an Rng seeded with DefaultSeed.
func DefaultRng() *Rng {
	return NewRng(DefaultSeed)
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (g *Rng) Float64() float64 {
	return g.r.Float64()
}

// IntN returns a pseudo-random number in [0, n). Panics if n <= 0.
func (g *Rng) IntN(n int) int {
	return g.r.IntN(n)
}

// Int64N returns a pseudo-random number in [0, n). Panics if n <= 0.
func (g *Rng) Int64N(n int64) int64 {
	return g.r.Int64N(n)
}
