package wavio

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-vocoder/internal/testutil"
	timestats "github.com/cwbudde/algo-vocoder/stats/time"
)

func TestWriteReadRoundTrip(t *testing.T) {
	tests := []struct {
		bitDepth int
		eps      float64
	}{
		{16, 1.0 / 32768},
		{24, 1.0 / 8388608},
	}

	for _, tt := range tests {
		in := &Signal{
			SampleRate: 16000,
			BitDepth:   tt.bitDepth,
			Samples:    testutil.DeterministicSine(440, 16000, 0.5, 1600),
		}

		path := filepath.Join(t.TempDir(), "tone.wav")
		if err := WriteFile(path, in); err != nil {
			t.Fatalf("%d bit: WriteFile() error = %v", tt.bitDepth, err)
		}

		out, err := ReadFile(path)
		if err != nil {
			t.Fatalf("%d bit: ReadFile() error = %v", tt.bitDepth, err)
		}

		if out.SampleRate != 16000 || out.BitDepth != tt.bitDepth {
			t.Fatalf("%d bit: rate=%g depth=%d", tt.bitDepth, out.SampleRate, out.BitDepth)
		}

		testutil.RequireSliceNearlyEqual(t, out.Samples, in.Samples, tt.eps)

		if math.Abs(out.Duration()-0.1) > 1e-12 {
			t.Fatalf("Duration() = %g", out.Duration())
		}
	}
}

func TestEncodeClips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := WriteFile(path, &Signal{SampleRate: 8000, Samples: []float64{2, -2, 1, -1}}); err != nil {
		t.Fatal(err)
	}

	out, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{32767.0 / 32768, -1, 32767.0 / 32768, -1}
	testutil.RequireSliceNearlyEqual(t, out.Samples, want, 1e-12)
}

func TestEncodeErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")

	if err := WriteFile(path, &Signal{SampleRate: 0}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("error = %v, want ErrInvalidSampleRate", err)
	}

	if err := WriteFile(path, &Signal{SampleRate: 8000, BitDepth: 12}); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Fatalf("error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("definitely not a riff file"))); !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("error = %v, want ErrInvalidFile", err)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want ErrNotExist", err)
	}
}

func TestResample(t *testing.T) {
	in := testutil.DeterministicSine(200, 16000, 0.5, 8000)

	same, err := Resample(in, 16000, 16000)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, same, in, 0)

	out, err := Resample(in, 16000, 48000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	if len(out) != 24000 {
		t.Fatalf("len = %d, want 24000", len(out))
	}

	testutil.RequireFinite(t, out)

	rms := timestats.RMS(out[6000:18000])
	if want := 0.5 / math.Sqrt2; math.Abs(rms-want) > 0.1*want {
		t.Fatalf("RMS = %g, want about %g", rms, want)
	}

	if _, err := Resample(in, 0, 48000); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("error = %v, want ErrInvalidSampleRate", err)
	}
}
