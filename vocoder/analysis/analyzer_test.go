package analysis

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vocoder/internal/testutil"
)

func TestAnalyzerSilence(t *testing.T) {
	cfg := newConfig(t, 48000)

	a, err := NewAnalyzer(cfg)
	if err != nil {
		t.Fatal(err)
	}

	out := NewFrame(cfg.NumBins())
	a.Analyze(make([]float64, cfg.FFTSize()+1), out)

	if out.Fo != 0 || out.Voiced || !out.Silent {
		t.Fatalf("got fo=%g voiced=%v silent=%v", out.Fo, out.Voiced, out.Silent)
	}

	testutil.RequireConstant(t, out.Ap, 1, 0)
	testutil.RequireConstant(t, out.Sp, envelopeFloor, 0)
}

func TestAnalyzerVoicedSine(t *testing.T) {
	cfg := newConfig(t, 48000)

	a, err := NewAnalyzer(cfg)
	if err != nil {
		t.Fatal(err)
	}

	out := NewFrame(cfg.NumBins())
	for _, frame := range sineFrames(cfg, 220, 0.5, 4) {
		a.Analyze(frame, out)
	}

	if out.Silent || !out.Voiced || math.Abs(out.Fo-220) > 2 {
		t.Fatalf("got fo=%g voiced=%v silent=%v", out.Fo, out.Voiced, out.Silent)
	}

	testutil.RequireFinite(t, out.Sp)

	a.Reset()

	if a.FoTracker().Previous() != 0 {
		t.Fatal("Reset did not clear the fo tracker")
	}
}

func TestFrameClone(t *testing.T) {
	f := NewFrame(3)
	f.Fo = 100
	f.Sp[1] = 2

	c := f.Clone()
	c.Sp[1] = 5
	c.Ap[0] = 1

	if f.Sp[1] != 2 || f.Ap[0] != 0 || c.Fo != 100 {
		t.Fatal("Clone shares parameter storage")
	}
}
