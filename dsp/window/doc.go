// Package window generates the tapering windows used by the vocoder's
// analysis and synthesis stages.
//
// Two shapes of window are provided. [Generate] fills a whole buffer with a
// window in the usual way. [Centered] and [CenteredInto] place a window of an
// arbitrary, possibly fractional, length in the middle of a fixed-size frame
// and zero the remainder; analysis stages use this to adapt the effective
// window length to the fundamental frequency without changing the FFT size.
package window
