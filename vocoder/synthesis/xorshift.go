package synthesis

import (
	"math"
	"math/rand/v2"
)

// Xorshift128 is Marsaglia's 128-bit xorshift generator. Its state is
// explicit so that synthesis is reproducible for a given seed.
type Xorshift128 struct {
	s [4]uint32
}

var _ rand.Source = (*Xorshift128)(nil)

// NewXorshift128 returns a generator in state seed. An all-zero seed never
// leaves zero and should not be used.
func NewXorshift128(seed [4]uint32) *Xorshift128 {
	return &Xorshift128{s: seed}
}

// Seed resets the state.
func (x *Xorshift128) Seed(seed [4]uint32) {
	x.s = seed
}

// State returns the current state.
func (x *Xorshift128) State() [4]uint32 {
	return x.s
}

// Uint32 advances the generator and returns the new output word.
func (x *Xorshift128) Uint32() uint32 {
	t := x.s[3]
	s := x.s[0]

	x.s[3] = x.s[2]
	x.s[2] = x.s[1]
	x.s[1] = s

	t ^= t << 11
	x.s[0] = (t ^ (t >> 8)) ^ (s ^ (s >> 19))

	return x.s[0]
}

// Float64 returns a uniform value in [0, 1], both ends included.
func (x *Xorshift128) Float64() float64 {
	return float64(x.Uint32()) / math.MaxUint32
}

// Uint64 joins two consecutive outputs, high word first.
func (x *Xorshift128) Uint64() uint64 {
	hi := uint64(x.Uint32())
	return hi<<32 | uint64(x.Uint32())
}
