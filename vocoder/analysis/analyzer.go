package analysis

import "github.com/cwbudde/algo-vocoder/vocoder"

// Analyzer runs the estimators in their fixed order: silence gate, fo
// tracker, aperiodicity, spectral envelope.
type Analyzer struct {
	cfg *vocoder.Config
	fo  *FoTracker
	ap  *ApEstimator
	sp  *SpEstimator
}

// NewAnalyzer builds all estimators for cfg.
func NewAnalyzer(cfg *vocoder.Config, opts ...ApOption) (*Analyzer, error) {
	fo, err := NewFoTracker(cfg)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		cfg: cfg,
		fo:  fo,
		ap:  NewApEstimator(cfg, opts...),
		sp:  NewSpEstimator(cfg),
	}, nil
}

// FoTracker exposes the stateful fo tracker.
func (a *Analyzer) FoTracker() *FoTracker {
	return a.fo
}

// Analyze estimates the parameters of frame, which holds FFTSize+1 samples
// oldest to newest, into out. out.Ap and out.Sp must hold NumBins values.
func (a *Analyzer) Analyze(frame []float64, out *Frame) {
	size := a.cfg.FFTSize()
	current := frame[1 : size+1]
	delayed := frame[:size]

	out.Silent = IsSilent(frame, a.cfg.SilenceThreshold())
	out.Fo = a.fo.Estimate(current, delayed)
	out.Voiced = a.ap.Estimate(current, out.Fo, out.Silent, out.Ap)
	a.sp.Estimate(current, out.Fo, out.Voiced, out.Silent, out.Sp)
}

// Reset clears the fo tracker's memory.
func (a *Analyzer) Reset() {
	a.fo.Reset()
}
