package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vocoder/internal/testutil"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestMeanSquareAndRMS(t *testing.T) {
	tests := []struct {
		name   string
		signal []float64
		ms     float64
	}{
		{"empty", nil, 0},
		{"zeros", make([]float64, 16), 0},
		{"dc", testutil.DC(-0.5, 10), 0.25},
		{"square", []float64{1, -1, 1, -1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeanSquare(tt.signal); !almostEqual(got, tt.ms, tolerance) {
				t.Errorf("MeanSquare() = %g, want %g", got, tt.ms)
			}

			if got := RMS(tt.signal); !almostEqual(got, math.Sqrt(tt.ms), tolerance) {
				t.Errorf("RMS() = %g, want %g", got, math.Sqrt(tt.ms))
			}
		})
	}
}

func TestSineRMS(t *testing.T) {
	// 100 full cycles of 480 Hz at 48 kHz.
	sig := testutil.DeterministicSine(480, 48000, 2, 10000)

	if got := RMS(sig); !almostEqual(got, math.Sqrt2, 1e-9) {
		t.Errorf("RMS() = %g, want %g", got, math.Sqrt2)
	}

	if got := DC(sig); !almostEqual(got, 0, 1e-9) {
		t.Errorf("DC() = %g, want 0", got)
	}
}

func TestPeak(t *testing.T) {
	if got := Peak([]float64{0.1, -0.9, 0.5}); got != 0.9 {
		t.Errorf("Peak() = %g, want 0.9", got)
	}

	if got := Peak(nil); got != 0 {
		t.Errorf("Peak(nil) = %g, want 0", got)
	}
}

func TestVariance(t *testing.T) {
	if got := Variance([]float64{1, 2, 3, 4}); !almostEqual(got, 1.25, tolerance) {
		t.Errorf("Variance() = %g, want 1.25", got)
	}

	if got := Variance(testutil.DC(3, 100)); !almostEqual(got, 0, tolerance) {
		t.Errorf("Variance(dc) = %g, want 0", got)
	}
}

func TestMeasure(t *testing.T) {
	l := Measure([]float64{0.5, -0.5, 0.5, -0.5})

	if l.Length != 4 || !almostEqual(l.RMS, 0.5, tolerance) || !almostEqual(l.Peak, 0.5, tolerance) {
		t.Fatalf("Measure() = %+v", l)
	}

	if !almostEqual(l.RMS_dB, 20*math.Log10(0.5), tolerance) {
		t.Errorf("RMS_dB = %g", l.RMS_dB)
	}

	empty := Measure(nil)
	if !math.IsInf(empty.RMS_dB, -1) || !math.IsInf(empty.Peak_dB, -1) {
		t.Errorf("Measure(nil) = %+v, want -Inf levels", empty)
	}
}

func BenchmarkMeanSquare(b *testing.B) {
	sig := testutil.DeterministicNoise(1, 1, 2048)

	b.ReportAllocs()

	for range b.N {
		_ = MeanSquare(sig)
	}
}
