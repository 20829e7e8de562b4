package core

import (
	"math/rand/v2"
	"time"
)

// RNG wraps a PCG source so seeded runs are reproducible.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// SeedOrNow returns seed, or a time-based seed when seed is 0.
func SeedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Fill sets every cell of g alive with probability one half.
func (r *RNG) Fill(g *Grid) {
	for i := range g.data {
		g.data[i] = uint8(r.r.IntN(2))
	}
}

// IntN returns a value in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }
