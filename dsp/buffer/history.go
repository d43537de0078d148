package buffer

import "github.com/cwbudde/algo-vocoder/dsp/core"

// History is a fixed-capacity ring holding the most recent samples pushed
// into it. A new History reads as all zeros.
type History struct {
	data []float64
	head int // index of the newest sample
}

// NewHistory returns a zero-filled History. Capacity must be positive.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}

	return &History{data: make([]float64, capacity)}
}

// Len returns the capacity.
func (h *History) Len() int {
	return len(h.data)
}

// Push appends v, overwriting the oldest sample.
func (h *History) Push(v float64) {
	h.head++
	if h.head >= len(h.data) {
		h.head = 0
	}

	h.data[h.head] = v
}

// CopyTo writes the full ring into dst ordered oldest to newest and returns
// the number of samples copied, which is min(len(dst), Len()).
func (h *History) CopyTo(dst []float64) int {
	oldest := h.head + 1
	if oldest >= len(h.data) {
		oldest = 0
	}

	n := copy(dst, h.data[oldest:])
	n += copy(dst[n:], h.data[:oldest])

	return n
}

// Reset clears the ring to zeros.
func (h *History) Reset() {
	core.Zero(h.data)
	h.head = 0
}
