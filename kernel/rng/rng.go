// Package rng implements a small linear congruential generator for code that
// needs cheap, reproducible pseudo-random numbers and cannot depend on
// math/rand.
package rng

const (
	multiplier = 1664525
	increment  = 1013904223
)

// Source is a 32-bit linear congruential generator (modulus 2^32). Each
// Source owns its state; a zero Source behaves like one seeded with 1.
type Source struct {
	state uint32
}

// New returns a Source seeded with seed.
func New(seed uint32) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed resets the generator. A zero seed is replaced by 1.
func (s *Source) Seed(seed uint32) {
	if seed == 0 {
		seed = 1
	}
	s.state = seed
}

// Uint32 advances the generator and returns the new state.
func (s *Source) Uint32() uint32 {
	if s.state == 0 {
		s.state = 1
	}
	s.state = multiplier*s.state + increment
	return s.state
}

// Int returns a non-negative 31-bit value.
func (s *Source) Int() int {
	return int(s.Uint32() & 0x7fffffff)
}

// Range returns a value in [min, max). If max <= min it returns min.
func (s *Source) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Int()%(max-min)
}

// Float32 returns a value in [0, 1).
func (s *Source) Float32() float32 {
	// Only 24 bits fit the float32 mantissa without rounding up to 1.
	return float32(s.Uint32()>>8) / (1 << 24)
}

// Bool returns a pseudo-random boolean.
func (s *Source) Bool() bool {
	return s.Uint32()&1 == 1
}

// Chance returns true with the given probability in [0, 1].
func (s *Source) Chance(p float32) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return s.Float32() < p
}
