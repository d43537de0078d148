package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeBlackman
	TypeNuttall
	TypeVorbis
)

var (
	hannCoeffs     = []float64{0.5, -0.5}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
	nuttallCoeffs  = []float64{0.355768, -0.487396, 0.144232, -0.012604}
)

var typeNames = map[Type]string{
	TypeRectangular: "Rectangular",
	TypeHann:        "Hann",
	TypeBlackman:    "Blackman",
	TypeNuttall:     "Nuttall",
	TypeVorbis:      "Vorbis",
}

// String returns the window name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "Unknown"
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic  bool
	normalize bool
	scale     float64
}

func defaultConfig() config {
	return config{scale: 1}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// WithNormalize scales coefficients so they sum to one.
func WithNormalize() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// WithScale multiplies every coefficient by s.
func WithScale(s float64) Option {
	return func(c *config) {
		c.scale = s
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := applyOptions(opts)

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(t, i, length, cfg.periodic))
	}

	postProcess(out, cfg)

	return out
}

// Centered returns a frame of size samples holding a window of the given
// (fractional) length centered at (size-1)/2. Samples outside the support are
// zero. This is the shape used to weight analysis frames whose length depends
// on the current fundamental frequency.
func Centered(t Type, size int, length float64, opts ...Option) []float64 {
	if size <= 0 {
		return nil
	}

	out := make([]float64, size)
	CenteredInto(out, t, length, opts...)

	return out
}

// CenteredInto writes a centered window of the given length into dst.
func CenteredInto(dst []float64, t Type, length float64, opts ...Option) {
	if len(dst) == 0 {
		return
	}

	cfg := applyOptions(opts)
	center := float64(len(dst)-1) / 2

	for i := range dst {
		if length <= 0 {
			dst[i] = 0
			continue
		}

		x := 0.5 + (float64(i)-center)/length
		if x < 0 || x > 1 {
			dst[i] = 0
			continue
		}

		dst[i] = evalWindow(t, x)
	}

	postProcess(dst, cfg)
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHann, size, opts...), validateLength(size)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeBlackman, size, opts...), validateLength(size)
}

// Nuttall returns 4-term Nuttall window coefficients.
func Nuttall(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeNuttall, size, opts...), validateLength(size)
}

// Vorbis returns the power-complementary Vorbis window
// sin(pi/2 * sin^2(pi*(n+0.5)/N)).
func Vorbis(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeVorbis, size, opts...), validateLength(size)
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficients multiplies samples with coefficients into dst.
func ApplyCoefficients(dst, samples, coeffs []float64) error {
	if len(samples) != len(coeffs) || len(dst) != len(samples) {
		return errMismatchedLength
	}

	vecmath.MulBlock(dst, samples, coeffs)

	return nil
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// evalWindow evaluates t at x in [0, 1], where 0.5 is the window center.
func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeRectangular:
		return 1
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeNuttall:
		return cosineFromCoeffs(x, nuttallCoeffs)
	case TypeVorbis:
		s := math.Sin(math.Pi * x)
		return math.Sin(math.Pi / 2 * s * s)
	default:
		return 1
	}
}

func postProcess(coeffs []float64, cfg config) {
	if cfg.normalize {
		sum := 0.0
		for _, v := range coeffs {
			sum += v
		}

		if sum != 0 {
			vecmath.ScaleBlock(coeffs, coeffs, 1/sum)
		}
	}

	if cfg.scale != 1 {
		vecmath.ScaleBlock(coeffs, coeffs, cfg.scale)
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// samplePosition maps sample n of size to [0, 1]. The Vorbis window is
// sampled at half-sample offsets so neither end reaches zero.
func samplePosition(t Type, n, size int, periodic bool) float64 {
	if t == TypeVorbis {
		return (float64(n) + 0.5) / float64(size)
	}

	if size <= 1 {
		return 0.5
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
