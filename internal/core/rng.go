package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary fills the buffer with 0/1 values. Each cell is alive with the
// given probability; densities outside (0, 1] fall back to one half.
func (r *RNG) FillBinary(buf []uint8, density float64) {
	if density <= 0 || density > 1 {
		density = 0.5
	}
	for i := range buf {
		buf[i] = 0
		if r.r.Float64() < density {
			buf[i] = 1
		}
	}
}
