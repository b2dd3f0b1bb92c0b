package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Its IntN method satisfies the bounded-integer source contract the
// seeder consumes.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a uniformly distributed int in [0, n). Non-positive bounds
// yield zero.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}
