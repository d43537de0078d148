package buffer

import (
	"testing"

	"github.com/cwbudde/algo-vocoder/internal/testutil"
)

func TestHistoryOrdering(t *testing.T) {
	tests := []struct {
		name   string
		pushes []float64
		want   []float64
	}{
		{"initially zero", nil, []float64{0, 0, 0, 0}},
		{"partial fill", []float64{1, 2}, []float64{0, 0, 1, 2}},
		{"exact fill", []float64{1, 2, 3, 4}, []float64{1, 2, 3, 4}},
		{"wrapped", []float64{1, 2, 3, 4, 5}, []float64{2, 3, 4, 5}},
		{"wrapped twice", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, []float64{6, 7, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(4)
			for _, v := range tt.pushes {
				h.Push(v)
			}

			got := make([]float64, 4)
			if n := h.CopyTo(got); n != 4 {
				t.Fatalf("CopyTo() = %d, want 4", n)
			}

			testutil.RequireSliceNearlyEqual(t, got, tt.want, 0)
		})
	}
}

func TestHistoryShortDestination(t *testing.T) {
	h := NewHistory(4)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		h.Push(v)
	}

	got := make([]float64, 3)
	if n := h.CopyTo(got); n != 3 {
		t.Fatalf("CopyTo() = %d, want 3", n)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 3, 4}, 0)
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(3)
	h.Push(1)
	h.Push(2)
	h.Reset()
	h.Push(7)

	got := make([]float64, 3)
	h.CopyTo(got)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0, 7}, 0)
}

func BenchmarkHistoryPushCopy(b *testing.B) {
	h := NewHistory(2049)
	dst := make([]float64, 2049)

	b.ReportAllocs()

	for i := range b.N {
		h.Push(float64(i))
		if i%240 == 0 {
			h.CopyTo(dst)
		}
	}
}
