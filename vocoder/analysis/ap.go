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
	voicingLowHz      = 100.0
	voicingMidHz      = 4000.0
	voicingHighHz     = 7900.0
	voicingRatio      = 0.7
	voicingMinRate    = 16000.0
	voicingEnergyBias = 1e-6

	// DefaultVoicedAperiodicity is the per-bin aperiodicity reported for
	// voiced frames by [ConstantAperiodicity].
	DefaultVoicedAperiodicity = 1e-3
)

// AperiodicityFunc fills ap (NumBins values in [0, 1]) for a frame that was
// classified as voiced. power is the frame's pitch-synchronous power
// spectrum over the same bins.
type AperiodicityFunc func(ap []float64, fo float64, power []float64)

// ConstantAperiodicity returns an AperiodicityFunc that sets every bin to v.
func ConstantAperiodicity(v float64) AperiodicityFunc {
	return func(ap []float64, _ float64, _ []float64) {
		core.Fill(ap, v)
	}
}

// ApOption configures an ApEstimator.
type ApOption func(*ApEstimator)

// WithAperiodicity replaces the voiced-frame aperiodicity model.
func WithAperiodicity(fn AperiodicityFunc) ApOption {
	return func(e *ApEstimator) {
		if fn != nil {
			e.voiced = fn
		}
	}
}

// ApEstimator decides whether a frame is voiced and fills its aperiodicity.
type ApEstimator struct {
	cfg    *vocoder.Config
	kernel fft.Kernel
	voiced AperiodicityFunc

	win    []float64
	re, im []float64
	power  []float64
}

// NewApEstimator allocates an estimator for cfg.
func NewApEstimator(cfg *vocoder.Config, opts ...ApOption) *ApEstimator {
	size := cfg.FFTSize()

	e := &ApEstimator{
		cfg:    cfg,
		kernel: cfg.Kernel(),
		voiced: ConstantAperiodicity(DefaultVoicedAperiodicity),
		win:    make([]float64, size),
		re:     make([]float64, size),
		im:     make([]float64, size),
		power:  make([]float64, cfg.NumBins()),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e
}

// Estimate classifies frame (FFTSize samples) and writes its aperiodicity to
// ap. Silent frames and frames with fo outside [FoFloor, FoCeil], including
// fo = 0, are unvoiced with ap = 1 everywhere.
func (e *ApEstimator) Estimate(frame []float64, fo float64, silent bool, ap []float64) bool {
	if silent || fo < e.cfg.FoFloor() || fo > e.cfg.FoCeil() {
		core.Fill(ap, 1)
		return false
	}

	e.powerSpectrum(frame, fo)

	if !e.isVoiced() {
		core.Fill(ap, 1)
		return false
	}

	e.voiced(ap, fo, e.power)

	return true
}

func (e *ApEstimator) powerSpectrum(frame []float64, fo float64) {
	size := float64(e.cfg.FFTSize())
	length := math.Min(1.5*e.cfg.SampleRate()/fo, size)

	window.CenteredInto(e.win, window.TypeBlackman, length)
	vecmath.MulBlock(e.re, frame, e.win)
	clear(e.im)
	e.kernel.Forward(e.re, e.im)
	spectrum.PowerFromParts(e.power, e.re, e.im)
}

// isVoiced compares the energy in (100, 4000] Hz with that in (100, 7900] Hz.
// Below 16 kHz there is not enough bandwidth to judge and every frame counts
// as voiced.
func (e *ApEstimator) isVoiced() bool {
	fs := e.cfg.SampleRate()
	if fs < voicingMinRate {
		return true
	}

	size := float64(e.cfg.FFTSize())
	lower := int(math.Floor(voicingLowHz / fs * size))
	mid := min(int(math.Floor(voicingMidHz/fs*size)), len(e.power)-1)
	upper := min(int(math.Floor(voicingHighHz/fs*size)), len(e.power)-1)

	low := voicingEnergyBias
	for k := lower + 1; k <= mid; k++ {
		low += e.power[k]
	}

	all := low
	for k := mid + 1; k <= upper; k++ {
		all += e.power[k]
	}

	return low/all > voicingRatio
}
