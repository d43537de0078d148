package vocoder

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-vocoder/dsp/core"
	"github.com/cwbudde/algo-vocoder/dsp/fft"
)

// Option configures a Config at construction time.
type Option func(*options) error

type options struct {
	period           float64
	foFloor          float64
	foCeil           float64
	fftSize          int
	silenceThreshold float64
	noiseSeed        [4]uint32
	backend          fft.Backend
	logger           *slog.Logger
}

func defaultOptions() options {
	return options{
		period:           DefaultPeriod,
		foFloor:          DefaultFoFloor,
		foCeil:           DefaultFoCeil,
		fftSize:          DefaultFFTSize,
		silenceThreshold: DefaultSilenceThreshold,
		noiseSeed:        DefaultNoiseSeed,
		backend:          fft.DefaultBackend,
		logger:           slog.New(slog.DiscardHandler),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WithPeriod sets the frame period in milliseconds.
func WithPeriod(ms float64) Option {
	return func(o *options) error {
		if ms <= 0 || !finite(ms) {
			return fmt.Errorf("%w: %g ms", ErrInvalidPeriod, ms)
		}

		o.period = ms

		return nil
	}
}

// WithFoRange sets the fo search range in Hz. The ceiling is checked against
// the Nyquist frequency once the sample rate is known.
func WithFoRange(floor, ceil float64) Option {
	return func(o *options) error {
		if floor <= 0 || ceil <= floor || !finite(floor) || !finite(ceil) {
			return fmt.Errorf("%w: floor=%g ceil=%g", ErrInvalidFoRange, floor, ceil)
		}

		o.foFloor = floor
		o.foCeil = ceil

		return nil
	}
}

// WithFFTSize sets the FFT length. It must be a power of two of at least 8.
func WithFFTSize(n int) Option {
	return func(o *options) error {
		if n < minFFTSize || !core.IsPowerOfTwo(n) {
			return fmt.Errorf("%w: %d", ErrInvalidFFTSize, n)
		}

		o.fftSize = n

		return nil
	}
}

// WithBackend selects the FFT backend by name.
func WithBackend(name fft.Backend) Option {
	return func(o *options) error {
		b, err := fft.ParseBackend(string(name))
		if err != nil {
			return fmt.Errorf("vocoder: %w", err)
		}

		o.backend = b

		return nil
	}
}

// WithSilenceThreshold sets the RMS amplitude below which a frame is silent.
func WithSilenceThreshold(threshold float64) Option {
	return func(o *options) error {
		if threshold < 0 || !finite(threshold) {
			return fmt.Errorf("%w: %g", ErrInvalidThreshold, threshold)
		}

		o.silenceThreshold = threshold

		return nil
	}
}

// WithNoiseSeed sets the initial xorshift128 state of the velvet-noise
// generator.
func WithNoiseSeed(seed [4]uint32) Option {
	return func(o *options) error {
		if seed == [4]uint32{} {
			return ErrInvalidSeed
		}

		o.noiseSeed = seed

		return nil
	}
}

// WithLogger sets the session logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}

		o.logger = l

		return nil
	}
}
