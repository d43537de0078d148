//go:build fastmath

package frequency

import "github.com/meko-christian/algo-approx"

// The descriptors are for display and ranking only, so the fast
// approximations are accurate enough.

func logf(x float64) float64 { return approx.FastLog(x) }

func expf(x float64) float64 { return approx.FastExp(x) }
