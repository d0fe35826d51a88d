package vmath

import (
	"math/rand/v2"
)

// Rand is the session randomness source, seeded once and passed to constructors
// State is serializable so snapshots reproduce later draws exactly
type Rand struct {
	pcg *rand.PCG
	r   *rand.Rand
}

// NewRand creates a deterministic source from a single seed
func NewRand(seed uint64) *Rand {
	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Rand{pcg: pcg, r: rand.New(pcg)}
}

// Float64 returns a value in [0, 1)
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Range returns a value in [lo, hi)
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Angle returns a value in [0, 2π)
func (r *Rand) Angle() float64 {
	return r.r.Float64() * TwoPi
}

// Uint64 returns a raw 64-bit draw, used to derive child seeds
func (r *Rand) Uint64() uint64 {
	return r.r.Uint64()
}

// MarshalBinary captures generator state
func (r *Rand) MarshalBinary() ([]byte, error) {
	return r.pcg.MarshalBinary()
}

// UnmarshalBinary restores generator state captured by MarshalBinary
func (r *Rand) UnmarshalBinary(data []byte) error {
	if r.pcg == nil {
		r.pcg = rand.NewPCG(0, 0)
		r.r = rand.New(r.pcg)
	}
	return r.pcg.UnmarshalBinary(data)
}
