// Package frame slices a continuous sample stream into overlapping analysis
// frames at a fixed, possibly fractional, period.
package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vocoder/dsp/buffer"
)

var (
	// ErrInvalidPeriod is returned for a non-positive or non-finite frame period.
	ErrInvalidPeriod = errors.New("frame: period must be > 0")
	// ErrInvalidSize is returned for a non-positive frame length.
	ErrInvalidSize = errors.New("frame: size must be > 0")
)

// Framer emits a frame of Size()+1 history samples every Period() input
// samples. The period may be fractional; the remainder carries from frame to
// frame so the cadence does not drift.
//
// The extra leading sample lets callers derive a one-sample-delayed frame:
// frame[1:] is the current frame and frame[:Size()] is the delayed one.
type Framer struct {
	period     float64
	size       int
	position   float64
	outputSize int
	history    *buffer.History
	frame      []float64
}

// New creates a framer that emits size+1 samples every period samples.
func New(period float64, size int) (*Framer, error) {
	if period <= 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidPeriod, period)
	}

	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return &Framer{
		period:  period,
		size:    size,
		history: buffer.NewHistory(size + 1),
		frame:   make([]float64, size+1),
	}, nil
}

// Period returns the frame period in samples.
func (f *Framer) Period() float64 { return f.period }

// Size returns the analysis frame length, excluding the delayed lead sample.
func (f *Framer) Size() int { return f.size }

// Push appends a sample. When a frame boundary is reached it returns the
// history oldest to newest and true. The returned slice is owned by the
// Framer and is overwritten by the next frame.
func (f *Framer) Push(sample float64) ([]float64, bool) {
	f.history.Push(sample)

	position := f.position
	whole := math.Floor(position)
	ready := whole == 0

	if ready {
		f.history.CopyTo(f.frame)
		f.outputSize = int(math.Floor(f.period + position - whole))
	}

	if f.position >= f.period-1 {
		f.position -= f.period - 1
	} else {
		f.position++
	}

	if !ready {
		return nil, false
	}

	return f.frame, true
}

// OutputSize returns the number of input samples covered by the most recent
// frame, floor(period + carried fraction). It is 0 before the first frame.
func (f *Framer) OutputSize() int {
	return f.outputSize
}

// Reset clears the history and restarts the frame cadence.
func (f *Framer) Reset() {
	f.history.Reset()
	f.position = 0
	f.outputSize = 0
}
