package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-vocoder/stats/time"
)

func ExampleMeasure() {
	l := timestats.Measure([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f peak=%.1f dB=%.1f\n", l.RMS, l.Peak, l.RMS_dB)

	// Output:
	// rms=1.0 peak=1.0 dB=0.0
}
