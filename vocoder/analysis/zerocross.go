package analysis

import "math"

// eventTracker accumulates the frequencies implied by the distance between
// consecutive events of one kind, weighted by that distance.
type eventTracker struct {
	last int
}

type zeroCrossStats struct {
	weight   float64
	sumFreq  float64
	sumSqFrq float64
}

func (s *zeroCrossStats) mark(e *eventTracker, i int, sampleRate float64) {
	if e.last >= 0 {
		interval := float64(i - e.last)
		freq := sampleRate / interval
		s.weight += interval
		s.sumFreq += freq * interval
		s.sumSqFrq += freq * freq * interval
	}

	e.last = i
}

// zeroCrossFo estimates the fundamental of a low-passed signal from the
// spacing of its positive- and negative-going zero crossings, crests and
// troughs.
// It returns the interval-weighted mean frequency and its relative standard
// deviation. ok is false when no pair of events was found.
func zeroCrossFo(x []float64, sampleRate float64) (fo, rsd float64, ok bool) {
	if len(x) < 3 {
		return 0, 0, false
	}

	positive := eventTracker{last: -1}
	negative := eventTracker{last: -1}
	trough := eventTracker{last: -1}
	crest := eventTracker{last: -1}

	var s zeroCrossStats

	prev := x[0]
	prevDiff := x[1] - x[0]

	for i := 1; i < len(x)-1; i++ {
		cur := x[i]
		diff := x[i+1] - x[i]

		switch {
		case prev < 0 && cur >= 0:
			s.mark(&positive, i, sampleRate)
		case prev > 0 && cur <= 0:
			s.mark(&negative, i, sampleRate)
		}

		switch {
		case prevDiff < 0 && diff >= 0:
			s.mark(&trough, i, sampleRate)
		case prevDiff > 0 && diff <= 0:
			s.mark(&crest, i, sampleRate)
		}

		prev = cur
		prevDiff = diff
	}

	if s.weight <= 0 {
		return 0, 0, false
	}

	mean := s.sumFreq / s.weight
	if mean <= 0 || mean > sampleRate/2 {
		return 0, 0, false
	}

	variance := math.Max(s.sumSqFrq/s.weight-mean*mean, 0)

	return mean, math.Sqrt(variance) / mean, true
}
