package analysis

import (
	"testing"

	"github.com/cwbudde/algo-vocoder/internal/testutil"
	"github.com/cwbudde/algo-vocoder/vocoder"
)

func newConfig(t *testing.T, sampleRate float64, opts ...vocoder.Option) *vocoder.Config {
	t.Helper()

	cfg, err := vocoder.New(sampleRate, opts...)
	if err != nil {
		t.Fatalf("vocoder.New() error = %v", err)
	}

	return cfg
}

// sineFrames cuts count consecutive FFTSize+1 frames, one frame period
// apart, out of a sine at freq Hz.
func sineFrames(cfg *vocoder.Config, freq, amplitude float64, count int) [][]float64 {
	hop := int(cfg.FrameSize())
	n := cfg.FFTSize() + 1
	sig := testutil.DeterministicSine(freq, cfg.SampleRate(), amplitude, n+hop*count)

	frames := make([][]float64, count)
	for i := range frames {
		frames[i] = sig[i*hop : i*hop+n]
	}

	return frames
}
