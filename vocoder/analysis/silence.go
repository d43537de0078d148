package analysis

import timestats "github.com/cwbudde/algo-vocoder/stats/time"

// IsSilent reports whether the current part of frame (all but the delayed
// lead sample) has an RMS level below threshold. An all-zero frame is always
// silent.
func IsSilent(frame []float64, threshold float64) bool {
	if len(frame) < 2 {
		return true
	}

	ms := timestats.MeanSquare(frame[1:])

	return ms == 0 || ms < threshold*threshold
}
