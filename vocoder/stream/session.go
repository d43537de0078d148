package stream

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vocoder/dsp/frame"
	"github.com/cwbudde/algo-vocoder/vocoder"
	"github.com/cwbudde/algo-vocoder/vocoder/analysis"
	"github.com/cwbudde/algo-vocoder/vocoder/synthesis"
)

var (
	// ErrInvalidBlockSize is returned for a non-positive block size.
	ErrInvalidBlockSize = errors.New("stream: block size must be > 0")
	// ErrLengthMismatch is returned when ProcessBlock buffers differ in length.
	ErrLengthMismatch = errors.New("stream: dst and src lengths differ")
	// ErrClosed is returned by a session after Close.
	ErrClosed = errors.New("stream: session closed")
)

// Observer receives the parameters of every analysed frame. The Ap and Sp
// slices are reused for the next frame and must be copied to be retained.
type Observer func(analysis.Frame)

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	observer Observer
	apOpts   []analysis.ApOption
}

// WithObserver installs a per-frame callback.
func WithObserver(fn Observer) Option {
	return func(o *sessionOptions) {
		o.observer = fn
	}
}

// WithAperiodicity replaces the voiced-frame aperiodicity model.
func WithAperiodicity(fn analysis.AperiodicityFunc) Option {
	return func(o *sessionOptions) {
		o.apOpts = append(o.apOpts, analysis.WithAperiodicity(fn))
	}
}

// Session is one single-threaded vocoder instance.
type Session struct {
	cfg       *vocoder.Config
	blockSize int
	framer    *frame.Framer
	analyzer  *analysis.Analyzer
	synth     *synthesis.Synthesizer
	params    *analysis.Frame
	observer  Observer
	frames    int
	closed    bool
}

// Initialize builds a session for the given block size and sample rate.
// Session options such as WithObserver and WithAperiodicity need a Config
// built with vocoder.New and passed to NewSession.
func Initialize(blockSize int, sampleRate float64, opts ...vocoder.Option) (*Session, error) {
	cfg, err := vocoder.New(sampleRate, opts...)
	if err != nil {
		return nil, err
	}

	return NewSession(cfg, blockSize)
}

// NewSession builds a session around an existing configuration. The session
// works on a private clone of cfg, so sessions sharing one cfg may run on
// separate goroutines.
func NewSession(cfg *vocoder.Config, blockSize int, opts ...Option) (*Session, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	cfg, err := cfg.Clone()
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	var so sessionOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&so)
		}
	}

	framer, err := frame.New(cfg.FrameSize(), cfg.FFTSize())
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	analyzer, err := analysis.NewAnalyzer(cfg, so.apOpts...)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	synth, err := synthesis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		blockSize: blockSize,
		framer:    framer,
		analyzer:  analyzer,
		synth:     synth,
		params:    analysis.NewFrame(cfg.NumBins()),
		observer:  so.observer,
	}

	cfg.Logger().Debug("stream: session initialized",
		"config", cfg,
		"block_size", blockSize,
		"channels", analyzer.FoTracker().Channels(),
		"latency", s.Latency(),
	)

	return s, nil
}

// Config returns the vocoder configuration.
func (s *Session) Config() *vocoder.Config { return s.cfg }

// BlockSize returns the nominal block size.
func (s *Session) BlockSize() int { return s.blockSize }

// SampleRate returns the processing sample rate in Hz.
func (s *Session) SampleRate() float64 { return s.cfg.SampleRate() }

// Frames returns the number of frames analysed since creation or Reset.
func (s *Session) Frames() int { return s.frames }

// Latency returns the approximate input-to-output delay in samples: half a
// frame for the analysis window center plus half a frame for the centered
// impulse responses.
func (s *Session) Latency() int { return s.cfg.FFTSize() }

// Process consumes one input sample and returns one output sample. A closed
// session returns 0.
func (s *Session) Process(x float64) float64 {
	if s.closed {
		return 0
	}

	if buf, ok := s.framer.Push(x); ok {
		s.analyzeFrame(buf)
	}

	return s.synth.Next()
}

// ProcessBlock processes src into dst. The slices may alias.
func (s *Session) ProcessBlock(dst, src []float64) error {
	if s.closed {
		return ErrClosed
	}

	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(dst), len(src))
	}

	for i, x := range src {
		dst[i] = s.Process(x)
	}

	return nil
}

func (s *Session) analyzeFrame(buf []float64) {
	p := s.params
	s.analyzer.Analyze(buf, p)
	s.synth.NewFrame(p.Fo, p.Voiced, p.Silent, p.Ap, p.Sp)
	s.frames++

	if s.observer != nil {
		s.observer(*p)
	}
}

// Reset returns the session to its freshly initialized state.
func (s *Session) Reset() {
	if s.closed {
		return
	}

	s.framer.Reset()
	s.analyzer.Reset()
	s.synth.Reset()
	s.frames = 0
}

// Close releases the session's buffers. Later calls to Close and
// ProcessBlock return ErrClosed.
func (s *Session) Close() error {
	if s.closed {
		return ErrClosed
	}

	s.closed = true
	s.framer = nil
	s.analyzer = nil
	s.synth = nil
	s.params = nil
	s.observer = nil

	return nil
}
