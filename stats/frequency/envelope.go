// Package frequency computes shape descriptors of one-sided power spectra
// such as the vocoder's spectral envelope.
//
// Bin i of an n-bin spectrum lies at i*sampleRate/(2*(n-1)) Hz.
package frequency

import "math"

// DefaultRolloff is the energy fraction used by Describe for Rolloff.
const DefaultRolloff = 0.85

// Envelope summarizes a power spectrum.
type Envelope struct {
	Energy   float64 // sum of bin powers
	PeakHz   float64 // frequency of the strongest bin
	Centroid float64 // power-weighted mean frequency (Hz)
	Flatness float64 // geometric over arithmetic mean, 0..1, DC excluded
	Rolloff  float64 // frequency below which DefaultRolloff of the energy lies (Hz)
	TiltDB   float64 // level of the upper half band relative to the lower, in dB
}

func binFreq(i int, sampleRate float64, n int) float64 {
	return float64(i) * sampleRate / float64(2*(n-1))
}

// Describe computes every descriptor in one pass plus one for the rolloff.
// Spectra with fewer than two bins or no energy yield the zero Envelope.
func Describe(power []float64, sampleRate float64) Envelope {
	n := len(power)
	if n < 2 {
		return Envelope{}
	}

	var energy, weighted, lower, upper float64

	peak := 0
	for i, p := range power {
		energy += p
		weighted += p * binFreq(i, sampleRate, n)

		if p > power[peak] {
			peak = i
		}

		if i < n/2 {
			lower += p
		} else {
			upper += p
		}
	}

	if energy <= 0 {
		return Envelope{}
	}

	return Envelope{
		Energy:   energy,
		PeakHz:   binFreq(peak, sampleRate, n),
		Centroid: weighted / energy,
		Flatness: Flatness(power),
		Rolloff:  rolloff(power, sampleRate, DefaultRolloff, energy),
		TiltDB:   tilt(lower, upper),
	}
}

// Centroid returns the power-weighted mean frequency in Hz.
func Centroid(power []float64, sampleRate float64) float64 {
	return Describe(power, sampleRate).Centroid
}

// Flatness returns the spectral flatness of bins 1..n-1. Any empty bin makes
// the geometric mean and therefore the result 0. Built with the fastmath tag
// it uses approximate log and exp.
func Flatness(power []float64) float64 {
	if len(power) < 2 {
		return 0
	}

	var sumLin, sumLog float64

	for _, p := range power[1:] {
		if p <= 0 {
			return 0
		}

		sumLin += p
		sumLog += logf(p)
	}

	bins := float64(len(power) - 1)

	return expf(sumLog/bins) / (sumLin / bins)
}

// Rolloff returns the lowest frequency at or below which fraction of the
// total power lies.
func Rolloff(power []float64, sampleRate, fraction float64) float64 {
	var energy float64
	for _, p := range power {
		energy += p
	}

	return rolloff(power, sampleRate, fraction, energy)
}

func rolloff(power []float64, sampleRate, fraction, energy float64) float64 {
	n := len(power)
	if n < 2 || energy <= 0 {
		return 0
	}

	threshold := fraction * energy
	cum := 0.0

	for i, p := range power {
		cum += p
		if cum >= threshold {
			return binFreq(i, sampleRate, n)
		}
	}

	return binFreq(n-1, sampleRate, n)
}

func tilt(lower, upper float64) float64 {
	switch {
	case lower <= 0 && upper <= 0:
		return 0
	case lower <= 0:
		return math.Inf(1)
	case upper <= 0:
		return math.Inf(-1)
	}

	return 10 * math.Log10(upper/lower)
}
