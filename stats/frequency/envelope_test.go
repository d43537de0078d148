package frequency

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vocoder/internal/testutil"
)

func TestDescribeSingleBin(t *testing.T) {
	power := make([]float64, 513)
	power[64] = 2

	e := Describe(power, 8000)

	// 64 * 8000 / 1024
	if e.PeakHz != 500 || e.Centroid != 500 || e.Rolloff != 500 {
		t.Fatalf("peak=%g centroid=%g rolloff=%g, want 500", e.PeakHz, e.Centroid, e.Rolloff)
	}

	if e.Energy != 2 || e.Flatness != 0 || !math.IsInf(e.TiltDB, -1) {
		t.Fatalf("energy=%g flatness=%g tilt=%g", e.Energy, e.Flatness, e.TiltDB)
	}
}

func TestDescribeFlat(t *testing.T) {
	power := testutil.Ones(9)

	e := Describe(power, 16)

	if math.Abs(e.Centroid-4) > 1e-12 {
		t.Fatalf("centroid = %g, want 4", e.Centroid)
	}

	if math.Abs(e.Flatness-1) > 1e-3 {
		t.Fatalf("flatness = %g, want 1", e.Flatness)
	}

	// 5 of 9 bins in the upper half.
	if want := 10 * math.Log10(5.0/4); math.Abs(e.TiltDB-want) > 1e-12 {
		t.Fatalf("tilt = %g, want %g", e.TiltDB, want)
	}
}

func TestDescribeDegenerate(t *testing.T) {
	tests := map[string][]float64{
		"nil":       nil,
		"one bin":   {1},
		"all zeros": make([]float64, 8),
	}

	for name, power := range tests {
		if e := Describe(power, 8000); e != (Envelope{}) {
			t.Errorf("%s: got %+v, want zero", name, e)
		}
	}
}

func TestRolloff(t *testing.T) {
	power := []float64{0, 1, 1, 1, 1}

	tests := []struct {
		fraction float64
		want     float64
	}{
		{0.25, 1},
		{0.5, 2},
		{0.85, 4},
		{1, 4},
	}

	for _, tt := range tests {
		if got := Rolloff(power, 8, tt.fraction); got != tt.want {
			t.Errorf("Rolloff(%g) = %g, want %g", tt.fraction, got, tt.want)
		}
	}

	if got := Rolloff(make([]float64, 4), 8, 0.5); got != 0 {
		t.Fatalf("Rolloff of silence = %g", got)
	}
}

func TestFlatnessOrdersNoiseAboveTone(t *testing.T) {
	noise := testutil.DeterministicNoise(9, 0.5, 257)
	for i := range noise {
		noise[i] += 1
	}

	tone := testutil.DC(1e-6, 257)
	tone[20] = 1

	if Flatness(noise) <= Flatness(tone) {
		t.Fatalf("flatness noise=%g tone=%g", Flatness(noise), Flatness(tone))
	}

	if Centroid(tone, 512) <= 0 {
		t.Fatal("centroid of a tone must be positive")
	}
}
