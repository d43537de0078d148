// Package bank provides the low-pass filter bank used by the DIO-style
// fundamental frequency tracker.
//
// Each channel is a zero-phase FIR low-pass whose impulse response is a
// Nuttall window centered in an FFT frame. The window length is one period of
// the channel's cutoff frequency, so the channel passes only its own
// fundamental and attenuates the harmonics above it:
//
//	f_ch   = floor * 2^((1+ch)/N)   (N channels per octave, default 2)
//	length = ceil(fs / f_ch)
//
// Channels are applied in the frequency domain by multiplying a spectrum with
// the cached magnitude response. Because the filter is centered in the
// frame, the filtered signal must be trimmed by the channel's Delay before it
// is evaluated.
//
// Basic usage:
//
//	k, _ := fft.New(fft.DefaultBackend, 2048)
//	b, _ := bank.Lowpass(k, 71, 800, 48000)
//	for i, band := range b.Bands() {
//	    b.Apply(i, re, im)
//	    ...
//	}
package bank
