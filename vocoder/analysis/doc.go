// Package analysis implements the per-frame estimators of the vocoder:
// a silence gate, a DIO-style fundamental frequency tracker, a voiced/unvoiced
// aperiodicity estimator and a CheapTrick-style spectral envelope estimator.
//
// Every estimator borrows the FFT kernel of the shared [vocoder.Config] and
// owns its scratch buffers, so estimation allocates nothing per frame. None
// of them return errors: an unreliable fo is reported as 0 and downstream
// stages treat it as unvoiced.
//
// Frames passed to [Analyzer.Analyze] hold FFTSize+1 samples oldest to newest
// as produced by dsp/frame; the last FFTSize samples are the current frame
// and the first FFTSize the one-sample-delayed frame.
package analysis
