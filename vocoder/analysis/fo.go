package analysis

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vocoder/dsp/fft"
	"github.com/cwbudde/algo-vocoder/dsp/filter/bank"
	"github.com/cwbudde/algo-vocoder/dsp/spectrum"
	"github.com/cwbudde/algo-vocoder/dsp/window"
	timestats "github.com/cwbudde/algo-vocoder/stats/time"
	"github.com/cwbudde/algo-vocoder/vocoder"
)

const (
	foHarmonics     = 3
	powerFloor      = 1e-15
	maxRelativeSpan = 1.0
)

// FoTracker estimates the fundamental frequency of each frame with a bank of
// low-pass channels and zero-crossing timing, refined by the instantaneous
// frequency of the first harmonics. It remembers the last accepted estimate
// and offers it as a candidate for the next frame.
type FoTracker struct {
	cfg    *vocoder.Config
	kernel fft.Kernel
	bank   *bank.Bank
	window []float64

	re, im     []float64 // windowed current frame spectrum
	dre, dim   []float64 // windowed delayed frame spectrum
	power      []float64
	ifreq      []float64
	filtRe     []float64 // DC-removed frame spectrum
	filtIm     []float64
	workRe     []float64
	workIm     []float64
	previousFo float64
}

// NewFoTracker builds the channel bank and analysis window for cfg.
func NewFoTracker(cfg *vocoder.Config) (*FoTracker, error) {
	k := cfg.Kernel()
	size := cfg.FFTSize()
	fs := cfg.SampleRate()

	b, err := bank.Lowpass(k, cfg.FoFloor(), cfg.FoCeil(), fs)
	if err != nil {
		return nil, fmt.Errorf("analysis: fo filter bank: %w", err)
	}

	length := math.Min(4*fs/cfg.FoFloor(), float64(size))

	return &FoTracker{
		cfg:    cfg,
		kernel: k,
		bank:   b,
		window: window.Centered(window.TypeNuttall, size, length),
		re:     make([]float64, size),
		im:     make([]float64, size),
		dre:    make([]float64, size),
		dim:    make([]float64, size),
		power:  make([]float64, cfg.NumBins()),
		ifreq:  make([]float64, cfg.NumBins()),
		filtRe: make([]float64, size),
		filtIm: make([]float64, size),
		workRe: make([]float64, size),
		workIm: make([]float64, size),
	}, nil
}

// Channels returns the number of filter bank channels.
func (t *FoTracker) Channels() int {
	return t.bank.NumBands()
}

// Previous returns the last accepted estimate, or 0.
func (t *FoTracker) Previous() float64 {
	return t.previousFo
}

// Reset forgets the previous estimate.
func (t *FoTracker) Reset() {
	t.previousFo = 0
}

// Estimate returns the fo of frame in Hz, or 0 when no candidate inside
// [FoFloor, FoCeil] was found. frame and delayed are FFTSize samples long,
// delayed lagging frame by one sample.
func (t *FoTracker) Estimate(frame, delayed []float64) float64 {
	fs := t.cfg.SampleRate()
	floor, ceil := t.cfg.FoFloor(), t.cfg.FoCeil()

	vecmath.MulBlock(t.re, frame, t.window)
	vecmath.MulBlock(t.dre, delayed, t.window)
	clear(t.im)
	clear(t.dim)
	t.kernel.Forward(t.re, t.im)
	t.kernel.Forward(t.dre, t.dim)

	spectrum.PowerFromParts(t.power, t.re, t.im)
	for k := range t.power {
		t.power[k] += powerFloor
	}

	spectrum.InstantaneousFrequencies(t.ifreq, t.re, t.im, t.dre, t.dim, fs)

	mean := timestats.DC(frame)
	for i, x := range frame {
		t.filtRe[i] = x - mean
	}

	clear(t.filtIm)
	t.kernel.Forward(t.filtRe, t.filtIm)

	bestFo, bestScore := -1.0, -1.0

	if t.previousFo > floor {
		bestFo = t.refine(t.previousFo)
		bestScore = t.score(bestFo)
	}

	for ch, band := range t.bank.Bands() {
		if band.Delay >= len(t.workRe)-2 {
			continue
		}

		copy(t.workRe, t.filtRe)
		copy(t.workIm, t.filtIm)
		t.bank.Apply(ch, t.workRe, t.workIm)
		t.kernel.Inverse(t.workRe, t.workIm)

		fo, rsd, ok := zeroCrossFo(t.workRe[band.Delay:], fs)
		if !ok || math.IsNaN(fo) || fo < floor || fo > ceil || rsd > maxRelativeSpan {
			continue
		}

		refined := t.refine(fo)
		if score := t.score(refined); bestScore < score {
			bestFo = refined
			bestScore = score
		}
	}

	if bestFo < floor || bestFo > ceil || bestScore < 0 {
		return 0
	}

	t.previousFo = bestFo

	return bestFo
}

// refine replaces fo by the power-weighted instantaneous frequency of its
// first harmonics, keeping fo when the result leaves the search range or
// moves by more than fo itself.
func (t *FoTracker) refine(fo float64) float64 {
	fs := t.cfg.SampleRate()

	var sumFreq, den float64

	for h := 1; h <= foHarmonics; h++ {
		f := fo * float64(h)
		w := spectrum.InterpolateBin(t.power, f, fs)
		sumFreq += spectrum.InterpolateBin(t.ifreq, f, fs) * w
		den += float64(h) * w
	}

	refined := sumFreq / den
	if refined < t.cfg.FoFloor() || refined > t.cfg.FoCeil() || math.Abs(refined-fo) > fo {
		return fo
	}

	return refined
}

// score is the product over harmonics of the power at h*fo divided by the
// power half a harmonic below. Higher is better.
func (t *FoTracker) score(fo float64) float64 {
	fs := t.cfg.SampleRate()
	s := 1.0

	for h := 1; h <= foHarmonics; h++ {
		hf := float64(h)
		s *= spectrum.InterpolateBin(t.power, fo*hf, fs)
		s /= spectrum.InterpolateBin(t.power, fo*(hf-0.5), fs)
	}

	return s
}
