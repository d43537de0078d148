//go:build !fastmath

package frequency

import "math"

func logf(x float64) float64 { return math.Log(x) }

func expf(x float64) float64 { return math.Exp(x) }
