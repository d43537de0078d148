package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vocoder/dsp/core"
)

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
// All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// dst may be shorter than re and im, in which case only the first len(dst)
// bins are computed. This is how callers extract the NumBins half spectrum.
func PowerFromParts(dst, re, im []float64) {
	n := len(dst)
	vecmath.Power(dst, re[:n], im[:n])
}

// InstantaneousFrequency returns the frequency in Hz implied by the phase
// advance between two consecutive-sample spectra x1 = xr1+i*xi1 and
// x2 = xr2+i*xi2 of the same bin.
func InstantaneousFrequency(xr1, xi1, xr2, xi2, sampleRate float64) float64 {
	return math.Abs(sampleRate / (2 * math.Pi) * math.Atan2(xi1*xr2-xr1*xi2, xr1*xr2+xi1*xi2))
}

// InstantaneousFrequencies fills dst with the per-bin instantaneous frequency
// between spectrum (re1, im1) and its one-sample-delayed counterpart (re2, im2).
func InstantaneousFrequencies(dst, re1, im1, re2, im2 []float64, sampleRate float64) {
	for k := range dst {
		dst[k] = InstantaneousFrequency(re1[k], im1[k], re2[k], im2[k], sampleRate)
	}
}

// InterpolateBin linearly interpolates a half spectrum of len(spec) bins at
// freq Hz. Frequencies outside [0, sampleRate/2] are clamped to the edge bins.
func InterpolateBin(spec []float64, freq, sampleRate float64) float64 {
	numBins := len(spec)
	if numBins < 2 {
		if numBins == 1 {
			return spec[0]
		}

		return 0
	}

	position := core.ClampIndex(freq/(sampleRate/2)*float64(numBins-1), numBins-1)
	index := int(position)
	delta := position - float64(index)

	return (1-delta)*spec[index] + delta*spec[index+1]
}

// IFFTShift swaps the two halves of a length 2*(numBins-1) buffer so the
// sample at index 0 moves to the center. src and dst must not overlap.
func IFFTShift(dst, src []float64, numBins int) {
	half := numBins - 1
	for k := range half {
		dst[k] = src[half+k]
		dst[half+k] = src[k]
	}
}
