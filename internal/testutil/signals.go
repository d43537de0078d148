// Package testutil holds test signals and tolerance checks shared by the
// vocoder packages.
package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicSine returns amplitude*sin(2*pi*freqHz*n/sampleRate) for
// n = 0..length-1.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	w := 2 * math.Pi * freqHz / sampleRate

	for n := range out {
		out[n] = amplitude * math.Sin(w*float64(n))
	}

	return out
}

// DeterministicNoise returns uniform white noise in [-amplitude, amplitude)
// from a PCG generator seeded with seed.
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, length)

	for n := range out {
		out[n] = amplitude * (2*rng.Float64() - 1)
	}

	return out
}

// Impulse returns a unit impulse at pos, or all zeros when pos is out of range.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DC returns length copies of value.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for n := range out {
		out[n] = value
	}

	return out
}

// Ones is DC(1, n).
func Ones(n int) []float64 {
	return DC(1, n)
}
