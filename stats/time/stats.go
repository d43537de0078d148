// Package time provides frame-level time-domain statistics.
package time

import "math"

// Level summarizes the loudness of one frame.
//
//nolint:revive
type Level struct {
	Length  int
	DC      float64 // mean
	RMS     float64
	RMS_dB  float64
	Peak    float64 // max |x|
	Peak_dB float64
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Measure computes the frame level in a single pass.
func Measure(signal []float64) Level {
	if len(signal) == 0 {
		return Level{RMS_dB: math.Inf(-1), Peak_dB: math.Inf(-1)}
	}

	rms := RMS(signal)
	peak := Peak(signal)

	return Level{
		Length:  len(signal),
		DC:      DC(signal),
		RMS:     rms,
		RMS_dB:  ampTodB(rms),
		Peak:    peak,
		Peak_dB: ampTodB(peak),
	}
}

// MeanSquare returns the mean of the squared samples.
func MeanSquare(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return sumSq / float64(len(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	return math.Sqrt(MeanSquare(signal))
}

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	return peak
}

// Variance returns the population variance using Welford's algorithm.
func Variance(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var mean, m2 float64

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return m2 / float64(len(signal))
}
