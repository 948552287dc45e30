// Package rng provides the random source used by the game engine.
// Every component that rolls dice takes a *Rand so tests can seed it.
package rng

import (
	"math/rand/v2"
	"sync"
)

// Rand wraps math/rand/v2 behind a mutex so the roaming tick and player
// sessions can share one seeded source.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New creates a Rand seeded from the given value. The same seed always
// produces the same roll sequence.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform int in [0, n).
func (r *Rand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(n)
}

// Range returns a uniform int in [lo, hi] inclusive.
func (r *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.r.IntN(hi-lo+1)
}

// Float64 returns a uniform float in [0, 1).
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Float64()
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// Pick returns a uniformly chosen element of vals.
// It panics on an empty slice, matching rand.IntN semantics.
func Pick[T any](r *Rand, vals []T) T {
	return vals[r.IntN(len(vals))]
}
