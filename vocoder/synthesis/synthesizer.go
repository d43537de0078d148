package synthesis

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vocoder/dsp/buffer"
	"github.com/cwbudde/algo-vocoder/dsp/spectrum"
	"github.com/cwbudde/algo-vocoder/dsp/window"
	"github.com/cwbudde/algo-vocoder/vocoder"
)

const (
	initialFo  = 300.0  // Hz, pulse interval before the first voiced frame
	velvetRate = 2000.0 // Hz, mean density of velvet noise events
)

// Synthesizer turns frame parameters into output samples.
//
// NewFrame installs the filters of a new frame; Next produces one sample.
// The pulse phase and the velvet noise state carry over between frames.
type Synthesizer struct {
	cfg     *vocoder.Config
	builder *spectrum.ImpulseBuilder
	queue   *buffer.Accumulator

	pulseRe, pulseIm []float64
	noiseRe, noiseIm []float64
	pulseImpulse     []float64
	noiseImpulse     []float64

	hasPulse bool
	hasNoise bool

	interval float64 // samples between pulses
	pulseInt int     // whole samples until the next pulse
	pulseFrc float64 // fractional delay of the next pulse

	rng           *Xorshift128
	velvetPeriod  int
	velvetOffset  int
	velvetCounter int
	noiseGain     float64
}

// New allocates a synthesizer for cfg.
func New(cfg *vocoder.Config) (*Synthesizer, error) {
	size := cfg.FFTSize()
	fs := cfg.SampleRate()

	dcWindow, err := window.Vorbis(size, window.WithNormalize())
	if err != nil {
		return nil, fmt.Errorf("synthesis: dc window: %w", err)
	}

	velvetPeriod := max(int(math.Round(fs/velvetRate)), 1)
	capacity := int(math.Ceil(fs/cfg.FoFloor())) + size

	s := &Synthesizer{
		cfg:          cfg,
		builder:      spectrum.NewImpulseBuilder(cfg.Kernel(), dcWindow),
		queue:        buffer.NewAccumulator(capacity),
		pulseRe:      make([]float64, size),
		pulseIm:      make([]float64, size),
		noiseRe:      make([]float64, size),
		noiseIm:      make([]float64, size),
		pulseImpulse: make([]float64, size),
		noiseImpulse: make([]float64, size),
		rng:          NewXorshift128(cfg.NoiseSeed()),
		velvetPeriod: velvetPeriod,
		noiseGain:    math.Sqrt(float64(velvetPeriod)),
	}
	s.Reset()

	return s, nil
}

// HasPulse reports whether the current frame drives the pulse train.
func (s *Synthesizer) HasPulse() bool { return s.hasPulse }

// HasNoise reports whether the current frame drives the velvet noise.
func (s *Synthesizer) HasNoise() bool { return s.hasNoise }

// Pending returns the number of queued output samples.
func (s *Synthesizer) Pending() int { return s.queue.Remaining() }

// Interval returns the current pulse interval in samples.
func (s *Synthesizer) Interval() float64 { return s.interval }

// NewFrame builds the excitation filters for one frame. ap and sp hold
// NumBins values and are not retained.
//
// The envelope is split into sp*(1-ap^2) for the pulse filter and sp*ap^2
// for the noise filter. Silent frames switch off both excitations; unvoiced
// frames keep only the noise.
func (s *Synthesizer) NewFrame(fo float64, voiced, silent bool, ap, sp []float64) {
	numBins := s.cfg.NumBins()

	for k := range numBins {
		a := ap[k] * ap[k]
		s.pulseRe[k] = sp[k] * (1 - a)
		s.noiseRe[k] = sp[k] * a
	}

	spectrum.Mirror(s.pulseRe, numBins)
	spectrum.Mirror(s.noiseRe, numBins)

	s.hasPulse = voiced && !silent && fo > 0
	if s.hasPulse {
		s.interval = s.cfg.SampleRate() / fo
		spectrum.MinimumPhase(s.cfg.Kernel(), s.pulseRe, s.pulseIm, math.Sqrt(s.interval))
	}

	s.hasNoise = !silent
	if s.hasNoise {
		spectrum.MinimumPhase(s.cfg.Kernel(), s.noiseRe, s.noiseIm, s.noiseGain)
		s.builder.Build(s.noiseImpulse, s.noiseRe, s.noiseIm, 0)
	}
}

// Next returns the next output sample.
func (s *Synthesizer) Next() float64 {
	if s.hasPulse {
		if s.pulseInt == 0 {
			s.builder.Build(s.pulseImpulse, s.pulseRe, s.pulseIm, s.pulseFrc)
			s.queue.Add(s.pulseImpulse)
			s.advancePulse()
		}

		s.pulseInt--
	}

	if s.hasNoise {
		s.velvet()
	}

	return s.queue.Pop()
}

// advancePulse schedules the next pulse one interval after the current one,
// carrying the fractional remainder.
func (s *Synthesizer) advancePulse() {
	whole, frac := math.Modf(s.interval)
	next := s.pulseFrc + frac
	carry := math.Floor(next)

	s.pulseInt += int(whole + carry)
	s.pulseFrc = next - carry
}

// velvet emits one noise impulse per velvet period at a random offset.
func (s *Synthesizer) velvet() {
	if s.velvetCounter == s.velvetOffset {
		s.queue.Add(s.noiseImpulse)
	}

	s.velvetCounter++
	if s.velvetCounter == s.velvetPeriod {
		s.velvetCounter = 0
		s.velvetOffset = int(math.Floor(s.rng.Float64() * float64(s.velvetPeriod-1)))
	}
}

// Reset clears the output queue and restores the initial pulse phase and
// noise seed.
func (s *Synthesizer) Reset() {
	s.queue.Reset()
	s.hasPulse = false
	s.hasNoise = false
	s.interval = s.cfg.SampleRate() / initialFo
	s.pulseInt = 0
	s.pulseFrc = 0
	s.rng.Seed(s.cfg.NoiseSeed())
	s.velvetOffset = 0
	s.velvetCounter = 0
}
