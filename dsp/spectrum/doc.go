// Package spectrum provides FFT-adjacent spectrum-domain utilities for the
// vocoder.
//
// Spectra are held as parallel real/imaginary slices of the full FFT length.
// Only the first NumBins = Size/2+1 bins of a real signal's spectrum carry
// information; [Mirror] and [MirrorConjugate] restore the Hermitian upper half
// after the lower half has been modified.
//
// The minimum-phase helpers ([MinimumPhase], [ImpulseBuilder]) run their own
// transforms through an [fft.Kernel] supplied by the caller.
package spectrum
