package fft

import "gonum.org/v1/gonum/dsp/fourier"

type gonumKernel struct {
	size    int
	fft     *fourier.CmplxFFT
	scratch []complex128
}

func newGonum(size int) (Kernel, error) {
	return &gonumKernel{
		size:    size,
		fft:     fourier.NewCmplxFFT(size),
		scratch: make([]complex128, size),
	}, nil
}

func (k *gonumKernel) Size() int    { return k.size }
func (k *gonumKernel) Name() string { return string(BackendGonum) }

func (k *gonumKernel) Forward(re, im []float64) {
	checkLen(k.Name(), k.size, re, im)
	pack(k.scratch, re, im)
	k.fft.Coefficients(k.scratch, k.scratch)
	unpack(re, im, k.scratch, 1)
}

// Inverse scales by 1/n; gonum's Sequence is unnormalized.
func (k *gonumKernel) Inverse(re, im []float64) {
	checkLen(k.Name(), k.size, re, im)
	pack(k.scratch, re, im)
	k.fft.Sequence(k.scratch, k.scratch)
	unpack(re, im, k.scratch, 1/float64(k.size))
}
