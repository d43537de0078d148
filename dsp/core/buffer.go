package core

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Fill sets all values in buf to v.
func Fill(buf []float64, v float64) {
	for i := range buf {
		buf[i] = v
	}
}
