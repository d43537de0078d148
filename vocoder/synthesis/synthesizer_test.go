package synthesis

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vocoder/internal/testutil"
	"github.com/cwbudde/algo-vocoder/vocoder"
)

func newSynth(t testing.TB, opts ...vocoder.Option) (*Synthesizer, *vocoder.Config) {
	t.Helper()

	opts = append([]vocoder.Option{vocoder.WithFFTSize(256)}, opts...)

	cfg, err := vocoder.New(8000, opts...)
	if err != nil {
		t.Fatalf("vocoder.New() error = %v", err)
	}

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return s, cfg
}

func render(s *Synthesizer, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Next()
	}

	return out
}

func TestSynthesizerInitialState(t *testing.T) {
	s, cfg := newSynth(t)

	if s.HasPulse() || s.HasNoise() || s.Pending() != 0 {
		t.Fatal("fresh synthesizer must be idle")
	}

	if want := cfg.SampleRate() / 300; s.Interval() != want {
		t.Fatalf("Interval() = %g, want %g", s.Interval(), want)
	}

	if got := s.queue.Cap(); got != 113+256 {
		t.Fatalf("queue capacity = %d, want %d", got, 113+256)
	}
}

func TestSynthesizerSilence(t *testing.T) {
	s, cfg := newSynth(t)
	n := cfg.NumBins()

	s.NewFrame(0, false, true, testutil.Ones(n), testutil.DC(1e-12, n))

	if s.HasPulse() || s.HasNoise() {
		t.Fatal("silent frame must not excite")
	}

	for i, v := range render(s, 1000) {
		if v != 0 {
			t.Fatalf("sample %d = %g, want 0", i, v)
		}
	}
}

func TestSynthesizerSilentVoicedFrameHasNoPulse(t *testing.T) {
	s, cfg := newSynth(t)
	n := cfg.NumBins()

	s.NewFrame(200, true, true, make([]float64, n), testutil.Ones(n))

	if s.HasPulse() || s.HasNoise() {
		t.Fatal("silence overrides voicing")
	}
}

func TestSynthesizerPulseTrain(t *testing.T) {
	tests := []struct {
		name   string
		fo     float64
		period int
	}{
		{"integer interval", 250, 32},
		{"half sample interval", 8000 / 32.5, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, cfg := newSynth(t)
			n := cfg.NumBins()

			// ap = 0 routes the flat envelope entirely to the pulse filter.
			s.NewFrame(tt.fo, true, false, make([]float64, n), testutil.Ones(n))

			if !s.HasPulse() || !s.HasNoise() {
				t.Fatal("voiced frame must drive both excitations")
			}

			out := render(s, 1200)
			testutil.RequireFinite(t, out)

			center := cfg.NumBins() - 1
			if out[center] < 5 {
				t.Fatalf("first pulse peak = %g, want > 5", out[center])
			}

			for i := 400; i < 900; i++ {
				if d := math.Abs(out[i] - out[i+tt.period]); d > 1e-4 {
					t.Fatalf("sample %d differs from one period later by %g", i, d)
				}
			}
		})
	}
}

func TestSynthesizerVelvetNoiseDensity(t *testing.T) {
	s, cfg := newSynth(t)
	n := cfg.NumBins()

	s.NewFrame(0, false, false, testutil.Ones(n), testutil.Ones(n))

	if s.HasPulse() || !s.HasNoise() {
		t.Fatal("unvoiced frame must drive only the noise")
	}

	out := render(s, 900)
	center := cfg.NumBins() - 1

	// One event per velvet period of round(8000/2000) = 4 samples.
	events := 0
	for i := 300 + center; i < 700+center; i++ {
		if out[i] > 0.5 {
			events++
		}
	}

	if events != 100 {
		t.Fatalf("events = %d, want 100", events)
	}
}

func TestSynthesizerDeterministic(t *testing.T) {
	run := func(seed [4]uint32) []float64 {
		s, cfg := newSynth(t, vocoder.WithNoiseSeed(seed))
		n := cfg.NumBins()
		s.NewFrame(0, false, false, testutil.Ones(n), testutil.Ones(n))

		return render(s, 2000)
	}

	a := run(vocoder.DefaultNoiseSeed)
	b := run(vocoder.DefaultNoiseSeed)
	testutil.RequireSliceNearlyEqual(t, a, b, 0)

	c := run([4]uint32{1, 2, 3, 4})
	if d, _ := testutil.MaxAbsDiff(a, c); d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestSynthesizerReset(t *testing.T) {
	s, cfg := newSynth(t)
	n := cfg.NumBins()
	ap := testutil.DC(0.5, n)
	sp := testutil.Ones(n)

	s.NewFrame(180, true, false, ap, sp)
	first := render(s, 700)

	s.Reset()

	if s.HasPulse() || s.HasNoise() || s.Pending() != 0 {
		t.Fatal("Reset must leave the synthesizer idle")
	}

	s.NewFrame(180, true, false, ap, sp)
	testutil.RequireSliceNearlyEqual(t, render(s, 700), first, 0)
}

func BenchmarkSynthesizerNext(b *testing.B) {
	s, cfg := newSynth(b)
	n := cfg.NumBins()
	s.NewFrame(220, true, false, testutil.DC(0.3, n), testutil.Ones(n))

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		s.Next()
	}
}
