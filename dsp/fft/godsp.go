package fft

import dspfft "github.com/mjibson/go-dsp/fft"

// godspKernel allocates on every call. It exists as a reference to validate
// the faster backends against.
type godspKernel struct {
	size    int
	scratch []complex128
}

func newGoDSP(size int) (Kernel, error) {
	return &godspKernel{
		size:    size,
		scratch: make([]complex128, size),
	}, nil
}

func (k *godspKernel) Size() int    { return k.size }
func (k *godspKernel) Name() string { return string(BackendGoDSP) }

func (k *godspKernel) Forward(re, im []float64) {
	checkLen(k.Name(), k.size, re, im)
	pack(k.scratch, re, im)
	unpack(re, im, dspfft.FFT(k.scratch), 1)
}

func (k *godspKernel) Inverse(re, im []float64) {
	checkLen(k.Name(), k.size, re, im)
	pack(k.scratch, re, im)
	unpack(re, im, dspfft.IFFT(k.scratch), 1)
}
