// Package vocoder holds the immutable configuration shared by every stage of
// the streaming analysis/resynthesis pipeline.
//
// A [Config] is built once per session with [New] and functional options.
// It validates every parameter up front and owns the FFT kernel that the
// analysis and synthesis stages borrow. Nothing in a Config changes after
// construction.
//
// The stages themselves live in sub-packages:
//
//   - vocoder/analysis: silence gate, fo tracker, aperiodicity and spectral
//     envelope estimators.
//   - vocoder/synthesis: minimum-phase pulse/noise excitation and overlap-add.
//   - vocoder/stream: the per-sample session that wires both together.
//
// Basic usage:
//
//	cfg, err := vocoder.New(48000, vocoder.WithFoRange(71, 800))
//	if err != nil { ... }
//	s, err := stream.Initialize(4096, 48000, vocoder.WithFoRange(71, 800))
package vocoder
