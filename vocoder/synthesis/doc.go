// Package synthesis rebuilds a waveform from per-frame vocoder parameters.
//
// Each frame's spectral envelope is split by the aperiodicity into a periodic
// and an aperiodic part, and both are turned into minimum-phase filters.
// A pitch-synchronous pulse train with sub-sample timing excites the periodic
// filter, and velvet noise excites the aperiodic one. The impulse responses
// are overlap-added into a ring that is drained one sample per call to
// [Synthesizer.Next].
package synthesis
