package buffer

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vocoder/dsp/core"
)

// Accumulator is an additive fixed-capacity queue used for overlap-add.
//
// Add sums a block into the queue starting at the read head; Pop returns the
// value at the head, clears that slot and advances. As long as no block is
// longer than the capacity, every popped sample is the exact superposition of
// all blocks that covered it.
type Accumulator struct {
	data      []float64
	head      int
	remaining int
}

// NewAccumulator returns an empty Accumulator. Capacity must be positive.
func NewAccumulator(capacity int) *Accumulator {
	if capacity < 1 {
		capacity = 1
	}

	return &Accumulator{data: make([]float64, capacity)}
}

// Cap returns the capacity.
func (a *Accumulator) Cap() int {
	return len(a.data)
}

// Remaining returns the number of samples that Pop will still return before
// the queue reads as empty.
func (a *Accumulator) Remaining() int {
	return a.remaining
}

// Add superimposes values onto the queue starting at the head.
//
// Values beyond the capacity overwrite the oldest slot and advance the head,
// which discards samples that have not been popped yet.
func (a *Accumulator) Add(values []float64) {
	capacity := len(a.data)

	n := min(len(values), capacity)
	first := min(n, capacity-a.head)
	vecmath.AddBlockInPlace(a.data[a.head:a.head+first], values[:first])

	if first < n {
		vecmath.AddBlockInPlace(a.data[:n-first], values[first:n])
	}

	for _, v := range values[n:] {
		a.data[a.head] = v
		a.head = a.next(a.head)
	}

	a.remaining = min(max(len(values), a.remaining), capacity)
}

// Pop returns and clears the sample at the head. An empty queue yields 0.
func (a *Accumulator) Pop() float64 {
	if a.remaining == 0 {
		return 0
	}

	v := a.data[a.head]
	a.data[a.head] = 0
	a.head = a.next(a.head)
	a.remaining--

	return v
}

// Reset discards all queued samples.
func (a *Accumulator) Reset() {
	core.Zero(a.data)
	a.head = 0
	a.remaining = 0
}

func (a *Accumulator) next(i int) int {
	i++
	if i >= len(a.data) {
		return 0
	}

	return i
}
