// Package fft provides the fixed-size complex DFT kernel used by the vocoder.
//
// A [Kernel] transforms parallel real/imaginary slices in place. The forward
// transform is unnormalized and the inverse transform is scaled by 1/Size, so
// Inverse(Forward(x)) == x.
//
// Several interchangeable backends are available and selected by name at
// configuration time:
//
//   - [BackendAlgoFFT] (default): github.com/MeKo-Christian/algo-fft plans.
//   - [BackendGonum]: gonum.org/v1/gonum/dsp/fourier complex transforms.
//   - [BackendGoDSP]: github.com/mjibson/go-dsp/fft, an allocating reference.
//
// Basic usage:
//
//	k, err := fft.New(fft.BackendAlgoFFT, 2048)
//	if err != nil { ... }
//	k.Forward(re, im)
//	k.Inverse(re, im)
//
// Kernels keep internal scratch memory and are not safe for concurrent use.
package fft
