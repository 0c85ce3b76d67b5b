// Package rng provides a small seeded pseudo-random generator.
//
// The generator keeps a single 32-bit state and mixes it with fixed
// multiplicative and XOR constants on every call (mulberry32). Two sources
// built from the same seed always produce the same sequence, which keeps
// board layouts and powerup drops reproducible.
package rng

// Source is a deterministic float generator. It is not safe for concurrent use.
type Source struct {
	seed  uint32
	state uint32
}

// New returns a Source seeded with seed.
func New(seed uint32) *Source {
	return &Source{seed: seed, state: seed}
}

// FromInt64 folds a 64-bit seed into the 32-bit state.
func FromInt64(seed int64) *Source {
	u := uint64(seed)
	return New(uint32(u) ^ uint32(u>>32))
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint32 {
	return s.seed
}

// Next advances the state and returns a float in [0, 1).
func (s *Source) Next() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296.0
}

// Intn returns an int in [0, n). It returns 0 when n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
