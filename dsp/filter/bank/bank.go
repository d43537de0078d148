package bank

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vocoder/dsp/fft"
	"github.com/cwbudde/algo-vocoder/dsp/spectrum"
	"github.com/cwbudde/algo-vocoder/dsp/window"
)

const defaultChannelsPerOctave = 2

var (
	// ErrInvalidRange is returned when the frequency range is empty or non-positive.
	ErrInvalidRange = errors.New("bank: frequency range must satisfy 0 < floor < ceil")
	// ErrInvalidSampleRate is returned for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("bank: sample rate must be > 0")
)

// Band is one low-pass channel.
type Band struct {
	Cutoff   float64   // nominal cutoff frequency in Hz
	Length   float64   // impulse response length in samples
	Delay    int       // samples to trim from the filtered frame
	Response []float64 // magnitude response over the full FFT length
}

// Bank is a set of low-pass channels sharing one FFT size.
type Bank struct {
	bands      []Band
	sampleRate float64
	size       int
}

type bankConfig struct {
	channelsPerOctave float64
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithChannelsPerOctave sets the channel density. Defaults to 2.
func WithChannelsPerOctave(n float64) Option {
	return func(cfg *bankConfig) {
		if n > 0 {
			cfg.channelsPerOctave = n
		}
	}
}

// Lowpass builds a bank covering [floor, ceil] with ceil(log2(ceil/floor)*N)
// channels. Responses are computed with k, whose size sets the frame length.
func Lowpass(k fft.Kernel, floor, ceil, sampleRate float64, opts ...Option) (*Bank, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	if floor <= 0 || ceil <= floor {
		return nil, fmt.Errorf("%w: floor=%g ceil=%g", ErrInvalidRange, floor, ceil)
	}

	cfg := bankConfig{channelsPerOctave: defaultChannelsPerOctave}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	size := k.Size()
	count := int(math.Ceil(math.Log2(ceil/floor) * cfg.channelsPerOctave))
	bands := make([]Band, 0, count)

	re := make([]float64, size)
	im := make([]float64, size)

	for ch := range count {
		cutoff := floor * math.Pow(2, (1+float64(ch))/cfg.channelsPerOctave)
		length := math.Ceil(sampleRate / cutoff)

		window.CenteredInto(re, window.TypeNuttall, length)
		clear(im)
		k.Forward(re, im)

		response := make([]float64, size)
		spectrum.MagnitudeFromParts(response, re, im)

		bands = append(bands, Band{
			Cutoff:   cutoff,
			Length:   length,
			Delay:    int(length),
			Response: response,
		})
	}

	return &Bank{
		bands:      bands,
		sampleRate: sampleRate,
		size:       size,
	}, nil
}

// Bands returns the channels in ascending cutoff order.
func (b *Bank) Bands() []Band {
	return b.bands
}

// NumBands returns the number of channels.
func (b *Bank) NumBands() int {
	return len(b.bands)
}

// SampleRate returns the sample rate the bank was designed for.
func (b *Bank) SampleRate() float64 {
	return b.sampleRate
}

// Size returns the FFT length of the channel responses.
func (b *Bank) Size() int {
	return b.size
}

// Apply filters the full-length spectrum (re, im) in place with channel ch.
func (b *Bank) Apply(ch int, re, im []float64) {
	resp := b.bands[ch].Response
	vecmath.MulBlockInPlace(re, resp)
	vecmath.MulBlockInPlace(im, resp)
}

// MagnitudeDB returns channel ch's gain in dB at freqHz.
func (b *Bank) MagnitudeDB(ch int, freqHz float64) float64 {
	half := b.bands[ch].Response[:b.size/2+1]
	dc := half[0]

	if dc == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(spectrum.InterpolateBin(half, freqHz, b.sampleRate)/dc)
}
