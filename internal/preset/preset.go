// Package preset loads vocoder parameter sets from YAML files.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-vocoder/dsp/fft"
	"github.com/cwbudde/algo-vocoder/vocoder"
)

// ErrInvalidSeed is returned when noise_seed does not hold four words.
var ErrInvalidSeed = errors.New("preset: noise_seed must hold exactly 4 values")

// Preset mirrors the vocoder options. Zero or missing fields keep the
// vocoder defaults.
type Preset struct {
	PeriodMs         float64  `yaml:"period_ms,omitempty"`
	FoFloor          float64  `yaml:"fo_floor,omitempty"`
	FoCeil           float64  `yaml:"fo_ceil,omitempty"`
	FFTSize          int      `yaml:"fft_size,omitempty"`
	Backend          string   `yaml:"backend,omitempty"`
	SilenceThreshold *float64 `yaml:"silence_threshold,omitempty"`
	NoiseSeed        []uint32 `yaml:"noise_seed,omitempty,flow"`
}

// Load parses a preset. Unknown keys are rejected.
func Load(r io.Reader) (*Preset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Preset
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("preset: parse: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile reads a preset from path.
func LoadFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}

	p, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Validate checks the fields that the vocoder options cannot check on their
// own.
func (p *Preset) Validate() error {
	if len(p.NoiseSeed) != 0 && len(p.NoiseSeed) != 4 {
		return fmt.Errorf("%w: got %d", ErrInvalidSeed, len(p.NoiseSeed))
	}

	if p.Backend != "" {
		if _, err := fft.ParseBackend(p.Backend); err != nil {
			return fmt.Errorf("preset: %w", err)
		}
	}

	return nil
}

// Options converts the preset into vocoder options. Range and value checks
// happen when the options are applied by vocoder.New.
func (p *Preset) Options() ([]vocoder.Option, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var opts []vocoder.Option

	if p.PeriodMs != 0 {
		opts = append(opts, vocoder.WithPeriod(p.PeriodMs))
	}

	if p.FoFloor != 0 || p.FoCeil != 0 {
		floor, ceil := p.FoFloor, p.FoCeil
		if floor == 0 {
			floor = vocoder.DefaultFoFloor
		}

		if ceil == 0 {
			ceil = vocoder.DefaultFoCeil
		}

		opts = append(opts, vocoder.WithFoRange(floor, ceil))
	}

	if p.FFTSize != 0 {
		opts = append(opts, vocoder.WithFFTSize(p.FFTSize))
	}

	if p.Backend != "" {
		b, err := fft.ParseBackend(p.Backend)
		if err != nil {
			return nil, fmt.Errorf("preset: %w", err)
		}

		opts = append(opts, vocoder.WithBackend(b))
	}

	if p.SilenceThreshold != nil {
		opts = append(opts, vocoder.WithSilenceThreshold(*p.SilenceThreshold))
	}

	if len(p.NoiseSeed) == 4 {
		opts = append(opts, vocoder.WithNoiseSeed([4]uint32(p.NoiseSeed)))
	}

	return opts, nil
}

// FromConfig captures cfg as a preset.
func FromConfig(cfg *vocoder.Config) *Preset {
	threshold := cfg.SilenceThreshold()
	seed := cfg.NoiseSeed()

	return &Preset{
		PeriodMs:         cfg.Period(),
		FoFloor:          cfg.FoFloor(),
		FoCeil:           cfg.FoCeil(),
		FFTSize:          cfg.FFTSize(),
		Backend:          string(cfg.Backend()),
		SilenceThreshold: &threshold,
		NoiseSeed:        seed[:],
	}
}

// Encode writes p as YAML.
func (p *Preset) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("preset: encode: %w", err)
	}

	return enc.Close()
}
