package vocoder

import "errors"

var (
	// ErrInvalidSampleRate is returned for a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("vocoder: sample rate must be > 0")
	// ErrInvalidPeriod is returned when the frame period is non-positive or
	// shorter than one sample.
	ErrInvalidPeriod = errors.New("vocoder: frame period must span at least one sample")
	// ErrInvalidFFTSize is returned when the FFT size is not a power of two >= 8.
	ErrInvalidFFTSize = errors.New("vocoder: fft size must be a power of two >= 8")
	// ErrInvalidFoRange is returned unless 0 < floor < ceil < sampleRate/2.
	ErrInvalidFoRange = errors.New("vocoder: fo range must satisfy 0 < floor < ceil < nyquist")
	// ErrInvalidThreshold is returned for a negative or non-finite silence threshold.
	ErrInvalidThreshold = errors.New("vocoder: silence threshold must be >= 0")
	// ErrInvalidSeed is returned for an all-zero noise seed.
	ErrInvalidSeed = errors.New("vocoder: noise seed must not be all zero")
)
