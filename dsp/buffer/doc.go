// Package buffer provides the fixed-capacity ring buffers used by the
// streaming vocoder.
//
// [History] keeps the most recent N samples of a stream and exposes them
// oldest to newest. [Accumulator] is an additive queue: callers superimpose
// whole impulse responses at the current read position and then pop one
// finished sample at a time, which is the core of overlap-add synthesis.
//
// Neither type grows after construction and neither allocates on the
// per-sample path.
package buffer
