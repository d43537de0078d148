package spectrum

// Mirror fills x[numBins:] from x[1:numBins-1] so that x holds the even
// (real-signal) extension of its first numBins values. len(x) must be
// 2*(numBins-1).
func Mirror(x []float64, numBins int) {
	for k := range numBins - 2 {
		x[numBins+k] = x[numBins-2-k]
	}
}

// MirrorConjugate completes the Hermitian-symmetric upper half of a complex
// spectrum from its first numBins bins.
func MirrorConjugate(re, im []float64, numBins int) {
	for k := range numBins - 2 {
		re[numBins+k] = re[numBins-2-k]
		im[numBins+k] = -im[numBins-2-k]
	}
}
