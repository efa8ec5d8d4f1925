package box

import "math/rand/v2"

// Rand is the random source behind unknown-intent observations and insights.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG source. A zero seed draws the seed from the runtime's
// entropy-backed generator; any other seed gives a reproducible sequence.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func pick(rng Rand, pool []string) string {
	return pool[rng.IntN(len(pool))]
}
