package fft

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrSizeNotPowerOfTwo is returned when a kernel size is not a positive power of two.
	ErrSizeNotPowerOfTwo = errors.New("fft: size must be a positive power of two")
	// ErrUnknownBackend is returned for an unregistered backend name.
	ErrUnknownBackend = errors.New("fft: unknown backend")
)

// Backend names a kernel implementation.
type Backend string

const (
	BackendAlgoFFT Backend = "algofft"
	BackendGonum   Backend = "gonum"
	BackendGoDSP   Backend = "godsp"
)

// DefaultBackend is used when no backend is configured.
const DefaultBackend = BackendAlgoFFT

// Kernel is a fixed-size in-place complex DFT.
//
// Forward and Inverse panic if len(re) or len(im) differs from Size.
type Kernel interface {
	// Size returns the transform length.
	Size() int
	// Name returns the backend name.
	Name() string
	// Forward computes the unnormalized forward DFT in place.
	Forward(re, im []float64)
	// Inverse computes the 1/Size-normalized inverse DFT in place.
	Inverse(re, im []float64)
}

type constructor func(size int) (Kernel, error)

var registry = map[Backend]constructor{
	BackendAlgoFFT: newAlgoFFT,
	BackendGonum:   newGonum,
	BackendGoDSP:   newGoDSP,
}

// New creates a kernel of the given size using the named backend.
// An empty backend selects [DefaultBackend].
func New(backend Backend, size int) (Kernel, error) {
	if backend == "" {
		backend = DefaultBackend
	}

	ctor, ok := registry[backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}

	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrSizeNotPowerOfTwo, size)
	}

	return ctor(size)
}

// Backends returns the registered backend names in sorted order.
func Backends() []Backend {
	out := make([]Backend, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, error) {
	b := Backend(name)
	if b == "" {
		return DefaultBackend, nil
	}

	if _, ok := registry[b]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}

	return b, nil
}

// checkLen panics when the caller hands over mismatched buffers.
func checkLen(name string, size int, re, im []float64) {
	if len(re) != size || len(im) != size {
		panic(fmt.Sprintf("fft: %s kernel of size %d got re=%d im=%d", name, size, len(re), len(im)))
	}
}

func pack(dst []complex128, re, im []float64) {
	for i := range dst {
		dst[i] = complex(re[i], im[i])
	}
}

func unpack(re, im []float64, src []complex128, scale float64) {
	for i, c := range src {
		re[i] = real(c) * scale
		im[i] = imag(c) * scale
	}
}
