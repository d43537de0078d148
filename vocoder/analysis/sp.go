package analysis

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vocoder/dsp/core"
	"github.com/cwbudde/algo-vocoder/dsp/fft"
	"github.com/cwbudde/algo-vocoder/dsp/spectrum"
	"github.com/cwbudde/algo-vocoder/dsp/window"
	"github.com/cwbudde/algo-vocoder/vocoder"
)

const (
	envelopeFloor    = 1e-12
	unvoicedSmoothHz = 300.0
	lifterQ          = -0.15
	windowPeriods    = 3.0
)

// SpEstimator computes a pitch-adaptive smoothed spectral envelope.
type SpEstimator struct {
	cfg    *vocoder.Config
	kernel fft.Kernel

	win    []float64
	re, im []float64
	pspec  []float64
	cumsum []float64
}

// NewSpEstimator allocates an estimator for cfg.
func NewSpEstimator(cfg *vocoder.Config) *SpEstimator {
	size := cfg.FFTSize()

	return &SpEstimator{
		cfg:    cfg,
		kernel: cfg.Kernel(),
		win:    make([]float64, size),
		re:     make([]float64, size),
		im:     make([]float64, size),
		pspec:  make([]float64, size),
		cumsum: make([]float64, cfg.NumBins()+size),
	}
}

// Estimate writes the NumBins-long power envelope of frame (FFTSize samples)
// into sp. Silent frames yield a constant 1e-12 floor. Unvoiced frames are
// analysed as if the pitch were one frame rate and smoothed over 300 Hz;
// voiced frames are additionally liftered to remove residual harmonics.
func (e *SpEstimator) Estimate(frame []float64, fo float64, voiced, silent bool, sp []float64) {
	if silent {
		core.Fill(sp, envelopeFloor)
		return
	}

	fs := e.cfg.SampleRate()
	numBins := e.cfg.NumBins()

	windowFo := 1000 / e.cfg.Period()
	smoothFo := unvoicedSmoothHz

	if voiced {
		windowFo = fo
		smoothFo = fo
	}

	e.windowed(frame, fs/windowFo)

	e.kernel.Forward(e.re, e.im)
	spectrum.PowerFromParts(e.pspec[:numBins], e.re, e.im)
	spectrum.Mirror(e.pspec, numBins)

	replicateDC(e.pspec, numBins, windowFo, fs)
	Smooth(e.pspec, e.cumsum, numBins, smoothFo/2, fs)

	if voiced {
		e.lifter(smoothFo)
	}

	copy(sp, e.pspec[:numBins])
}

// windowed fills re with the frame weighted by a Hann window spanning three
// pitch periods, scaled by 1/sqrt(period), with the window-weighted mean
// removed.
func (e *SpEstimator) windowed(frame []float64, period float64) {
	length := math.Min(windowPeriods*period, float64(len(e.win)))
	window.CenteredInto(e.win, window.TypeHann, length, window.WithScale(1/math.Sqrt(period)))

	vecmath.MulBlock(e.re, frame, e.win)
	clear(e.im)

	var sumX, sumW float64
	for i, w := range e.win {
		sumX += e.re[i]
		sumW += w
	}

	gain := sumX / sumW
	for i, w := range e.win {
		e.re[i] -= gain * w
	}
}

// replicateDC folds the mirrored spectrum around DC onto the bins below fo
// to compensate for the leakage of the first harmonic.
func replicateDC(pspec []float64, numBins int, fo, sampleRate float64) {
	size := 2 * (numBins - 1)

	foBin := 1 + int(math.Round(fo/(sampleRate/2)*float64(numBins-1)))
	foBin = min(foBin, numBins-1)

	for k := range foBin {
		pspec[k] += pspec[size-foBin-k]
	}

	spectrum.Mirror(pspec, numBins)
}

// Smooth applies a rectangular moving average of half width rangeHz to the
// full-length, mirrored power spectrum pspec in place, using a running sum
// so the cost does not depend on the width. The fractional part of the width
// is interpolated. Results are floored at 1e-12 and re-mirrored. scratch must
// hold at least numBins+len(pspec) values.
func Smooth(pspec, scratch []float64, numBins int, rangeHz, sampleRate float64) {
	size := 2 * (numBins - 1)
	offset := numBins - 2

	// scratch[offset+j] is the sum of pspec[0..j] plus the whole mirrored
	// negative-frequency half, so windows reaching below DC read valid sums.
	scratch[0] = pspec[numBins]
	for k := 1; k < offset; k++ {
		scratch[k] = pspec[numBins+k] + scratch[k-1]
	}

	for k := range size {
		prev := 0.0
		if offset+k > 0 {
			prev = scratch[offset+k-1]
		}

		scratch[offset+k] = pspec[k] + prev
	}

	half := rangeHz / sampleRate * float64(numBins-1)
	halfInt := int(math.Floor(half))
	halfInt = min(max(halfInt, 0), numBins-3)
	halfFrc := half - math.Floor(half)

	for k := range numBins {
		upper := offset + k + halfInt
		lower := offset + k - halfInt

		hi := (1-halfFrc)*scratch[upper-1] + halfFrc*scratch[upper]
		lo := (1-halfFrc)*scratch[lower] + halfFrc*scratch[lower-1]
		pspec[k] = math.Max(hi-lo, envelopeFloor) / (2 * half)
	}

	spectrum.Mirror(pspec, numBins)
}

// lifter removes the harmonic ripple left by smoothing with a sinc-shaped
// cepstral low-pass matched to fo.
func (e *SpEstimator) lifter(fo float64) {
	fs := e.cfg.SampleRate()
	numBins := e.cfg.NumBins()

	for k, p := range e.pspec {
		e.re[k] = math.Log(p + envelopeFloor)
	}

	clear(e.im)
	e.kernel.Inverse(e.re, e.im)

	for k := range numBins {
		t := float64(k) * fo / fs
		x := math.Pi*t + envelopeFloor
		sinc := math.Sin(x) / x
		e.re[k] *= sinc * ((1 - 2*lifterQ) + 2*lifterQ*math.Cos(2*math.Pi*t))
	}

	spectrum.Mirror(e.re, numBins)
	clear(e.im)

	e.kernel.Forward(e.re, e.im)

	for k := range numBins {
		e.pspec[k] = math.Exp(e.re[k])
	}

	spectrum.Mirror(e.pspec, numBins)
}
