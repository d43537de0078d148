package vocoder

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-vocoder/dsp/core"
	"github.com/cwbudde/algo-vocoder/dsp/fft"
)

const (
	DefaultPeriod           = 5.0     // ms
	DefaultFoFloor          = 71.0    // Hz
	DefaultFoCeil           = 800.0   // Hz
	DefaultFFTSize          = 2048    // samples
	DefaultSilenceThreshold = 0.00025 // about -72 dB

	minFFTSize = 8
)

// DefaultNoiseSeed is the classic xorshift128 initial state.
var DefaultNoiseSeed = [4]uint32{123456789, 362436069, 521288629, 88675123}

// Config is the validated, immutable parameter set of one vocoder session.
type Config struct {
	sampleRate       float64
	period           float64
	foFloor          float64
	foCeil           float64
	fftSize          int
	silenceThreshold float64
	noiseSeed        [4]uint32
	backend          fft.Backend
	kernel           fft.Kernel
	logger           *slog.Logger
}

// New validates the options and builds a Config together with its FFT kernel.
func New(sampleRate float64, opts ...Option) (*Config, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	cfg := defaultOptions()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.period/1000*sampleRate < 1 {
		return nil, fmt.Errorf("%w: %g ms at %g Hz", ErrInvalidPeriod, cfg.period, sampleRate)
	}

	if cfg.foCeil >= sampleRate/2 {
		return nil, fmt.Errorf("%w: ceil %g Hz >= nyquist %g Hz", ErrInvalidFoRange, cfg.foCeil, sampleRate/2)
	}

	kernel, err := fft.New(cfg.backend, cfg.fftSize)
	if err != nil {
		return nil, fmt.Errorf("vocoder: %w", err)
	}

	return &Config{
		sampleRate:       sampleRate,
		period:           cfg.period,
		foFloor:          cfg.foFloor,
		foCeil:           cfg.foCeil,
		fftSize:          cfg.fftSize,
		silenceThreshold: cfg.silenceThreshold,
		noiseSeed:        cfg.noiseSeed,
		backend:          fft.Backend(kernel.Name()),
		kernel:           kernel,
		logger:           cfg.logger,
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (c *Config) SampleRate() float64 { return c.sampleRate }

// Period returns the frame period in milliseconds.
func (c *Config) Period() float64 { return c.period }

// FoFloor returns the lowest trackable fundamental frequency in Hz.
func (c *Config) FoFloor() float64 { return c.foFloor }

// FoCeil returns the highest trackable fundamental frequency in Hz.
func (c *Config) FoCeil() float64 { return c.foCeil }

// FFTSize returns the analysis/synthesis FFT length.
func (c *Config) FFTSize() int { return c.fftSize }

// NumBins returns FFTSize()/2+1.
func (c *Config) NumBins() int { return c.fftSize/2 + 1 }

// FrameSize returns the frame period in samples. It is generally fractional.
func (c *Config) FrameSize() float64 { return c.period / 1000 * c.sampleRate }

// SilenceThreshold returns the RMS amplitude below which a frame is silent.
func (c *Config) SilenceThreshold() float64 { return c.silenceThreshold }

// NoiseSeed returns the initial velvet-noise generator state.
func (c *Config) NoiseSeed() [4]uint32 { return c.noiseSeed }

// Backend returns the name of the FFT backend.
func (c *Config) Backend() fft.Backend { return c.backend }

// Kernel returns the FFT kernel. Kernels keep scratch buffers, so every
// user of one Config must run on the same goroutine.
func (c *Config) Kernel() fft.Kernel { return c.kernel }

// Clone returns a copy of c with its own FFT kernel. Sessions clone their
// configuration so that several of them can share one Config across
// goroutines.
func (c *Config) Clone() (*Config, error) {
	kernel, err := fft.New(c.backend, c.fftSize)
	if err != nil {
		return nil, fmt.Errorf("vocoder: %w", err)
	}

	clone := *c
	clone.kernel = kernel

	return &clone, nil
}

// Logger returns the session logger. It is never nil.
func (c *Config) Logger() *slog.Logger { return c.logger }

// LogValue reports the configuration as structured log attributes.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("sample_rate", c.sampleRate),
		slog.Float64("period_ms", c.period),
		slog.Float64("fo_floor", c.foFloor),
		slog.Float64("fo_ceil", c.foCeil),
		slog.Int("fft_size", c.fftSize),
		slog.Float64("silence_db", core.LinearToDB(c.silenceThreshold)),
		slog.String("backend", string(c.backend)),
	)
}
