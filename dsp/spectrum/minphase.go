package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vocoder/dsp/fft"
)

// logFloor keeps log() finite on empty bins.
const logFloor = 1e-12

// MinimumPhase turns a full-length, mirrored power spectrum held in re into
// the complex spectrum of a minimum-phase filter with amplitude
// gain*sqrt(power), written back to re and im. The imaginary input is ignored.
//
// The real cepstrum of log(power) is folded onto the causal half with the
// DC and Nyquist quefrencies halved; this halving also takes the square root
// of the power so the result is an amplitude response.
func MinimumPhase(k fft.Kernel, re, im []float64, gain float64) {
	size := k.Size()
	numBins := size/2 + 1

	for i := range size {
		re[i] = math.Log(re[i] + logFloor)
		im[i] = 0
	}

	k.Inverse(re, im)

	re[0] *= 0.5
	im[0] *= 0.5
	re[numBins-1] *= 0.5
	im[numBins-1] *= 0.5

	for i := numBins; i < size; i++ {
		re[i] = 0
		im[i] = 0
	}

	k.Forward(re, im)

	for i := range numBins {
		a := gain * math.Exp(re[i])
		b := im[i]
		re[i] = a * math.Cos(b)
		im[i] = a * math.Sin(b)
	}

	MirrorConjugate(re, im, numBins)
}

// ImpulseBuilder renders time-domain impulse responses from a filter spectrum,
// optionally delayed by a fractional number of samples. The response is
// centered in the frame and its DC component is removed by subtracting
// dcWindow scaled by the response sum.
type ImpulseBuilder struct {
	kernel   fft.Kernel
	dcWindow []float64
	re, im   []float64
}

// NewImpulseBuilder creates a builder. dcWindow must have kernel size and
// should sum to one.
func NewImpulseBuilder(k fft.Kernel, dcWindow []float64) *ImpulseBuilder {
	return &ImpulseBuilder{
		kernel:   k,
		dcWindow: dcWindow,
		re:       make([]float64, k.Size()),
		im:       make([]float64, k.Size()),
	}
}

// Build writes the impulse response of (specRe, specIm) delayed by shift
// samples into dst. A shift of 0 skips the phase rotation.
func (b *ImpulseBuilder) Build(dst, specRe, specIm []float64, shift float64) {
	size := b.kernel.Size()
	numBins := size/2 + 1

	if shift == 0 {
		copy(b.re, specRe)
		copy(b.im, specIm)
	} else {
		for k := range numBins {
			omega := -math.Pi * shift * float64(k) / float64(numBins-1)
			b.re[k] = math.Cos(omega)
			b.im[k] = math.Sin(omega)
		}

		MirrorConjugate(b.re, b.im, numBins)

		for k := range size {
			xr, xi := b.re[k], b.im[k]
			b.re[k] = xr*specRe[k] - xi*specIm[k]
			b.im[k] = xr*specIm[k] + xi*specRe[k]
		}
	}

	b.kernel.Inverse(b.re, b.im)
	IFFTShift(dst, b.re, numBins)

	gain := 0.0
	for _, v := range dst[:size] {
		gain += v
	}

	for k := range size {
		dst[k] -= b.dcWindow[k] * gain
	}
}
