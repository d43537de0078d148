package analysis

// Frame holds the parameters estimated for one analysis frame.
type Frame struct {
	Fo     float64   // fundamental frequency in Hz, 0 when none
	Voiced bool      // periodic excitation present
	Silent bool      // frame below the silence threshold
	Ap     []float64 // aperiodicity per bin, 1 = fully aperiodic
	Sp     []float64 // power spectral envelope per bin
}

// NewFrame allocates a Frame with numBins-long parameter vectors.
func NewFrame(numBins int) *Frame {
	return &Frame{
		Ap: make([]float64, numBins),
		Sp: make([]float64, numBins),
	}
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	c := *f
	c.Ap = append([]float64(nil), f.Ap...)
	c.Sp = append([]float64(nil), f.Sp...)

	return &c
}
