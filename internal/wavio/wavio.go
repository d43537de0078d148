// Package wavio reads and writes mono PCM WAV files as float64 samples and
// converts between sample rates.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	resampling "github.com/tphakala/go-audio-resampling"
)

const wavFormatPCM = 1

var (
	// ErrInvalidFile is returned when the input is not a PCM WAV file.
	ErrInvalidFile = errors.New("wavio: not a valid WAV file")
	// ErrUnsupportedBitDepth is returned for bit depths other than 8, 16, 24 or 32.
	ErrUnsupportedBitDepth = errors.New("wavio: unsupported bit depth")
	// ErrInvalidSampleRate is returned for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("wavio: sample rate must be > 0")
)

// Signal is a mono signal in [-1, 1].
type Signal struct {
	SampleRate float64
	BitDepth   int
	Samples    []float64
}

// Duration returns the length of the signal in seconds.
func (s *Signal) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}

	return float64(len(s.Samples)) / s.SampleRate
}

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
		return math.Ldexp(1, bitDepth-1), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// Decode reads a PCM WAV stream. Only the first channel of multichannel
// files is kept.
func Decode(r io.ReadSeeker) (*Signal, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrInvalidFile
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode: %w", err)
	}

	bitDepth := int(d.BitDepth)

	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	channels := max(buf.Format.NumChannels, 1)
	frames := len(buf.Data) / channels

	samples := make([]float64, frames)
	for i := range samples {
		samples[i] = float64(buf.Data[i*channels]) / scale
	}

	// 8-bit WAV is unsigned.
	if bitDepth == 8 {
		for i := range samples {
			samples[i] -= 1
		}
	}

	return &Signal{
		SampleRate: float64(buf.Format.SampleRate),
		BitDepth:   bitDepth,
		Samples:    samples,
	}, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: %w", err)
	}
	defer f.Close()

	sig, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sig, nil
}

// Encode writes sig as mono PCM at sig.BitDepth, 16 bits when unset.
// Samples are clipped to [-1, 1].
func Encode(w io.WriteSeeker, sig *Signal) error {
	if sig.SampleRate <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRate, sig.SampleRate)
	}

	bitDepth := sig.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}

	rate := int(math.Round(sig.SampleRate))
	data := make([]int, len(sig.Samples))

	for i, x := range sig.Samples {
		v := math.Round(math.Max(-1, math.Min(1, x)) * scale)
		v = math.Min(v, scale-1)

		if bitDepth == 8 {
			v += scale
		}

		data[i] = int(v)
	}

	enc := wav.NewEncoder(w, rate, bitDepth, 1, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}

	return nil
}

// WriteFile encodes sig into a new file at path.
func WriteFile(path string, sig *Signal) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	if err := Encode(f, sig); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

// Resample converts samples from rate from to rate to. Equal rates return a
// copy. The output is trimmed or zero-padded to round(len*to/from) samples.
func Resample(samples []float64, from, to float64) ([]float64, error) {
	if from <= 0 || to <= 0 {
		return nil, fmt.Errorf("%w: %g -> %g", ErrInvalidSampleRate, from, to)
	}

	if from == to {
		return append([]float64(nil), samples...), nil
	}

	r, err := resampling.New(&resampling.Config{
		InputRate:  from,
		OutputRate: to,
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("wavio: resampler: %w", err)
	}

	// Trailing silence pushes the filter tail out of the resampler.
	tail := int(math.Ceil(from / 10))
	padded := make([]float64, len(samples)+tail)
	copy(padded, samples)

	out, err := r.Process(padded)
	if err != nil {
		return nil, fmt.Errorf("wavio: resample: %w", err)
	}

	want := int(math.Round(float64(len(samples)) * to / from))
	if len(out) >= want {
		return out[:want], nil
	}

	return append(out, make([]float64, want-len(out))...), nil
}
