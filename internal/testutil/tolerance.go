package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails when the lengths differ or any element of
// got is more than eps away from want.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireConstant fails unless every element is within eps of want.
func RequireConstant(t testing.TB, data []float64, want, eps float64) {
	t.Helper()

	for i, v := range data {
		if d := math.Abs(v - want); d > eps || math.IsNaN(v) {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
}

// RequireFinite fails on the first NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest element-wise distance of a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	var m float64
	for i := range a {
		m = math.Max(m, math.Abs(a[i]-b[i]))
	}

	return m, nil
}
