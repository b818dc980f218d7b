package window

import (
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeNuttall
	TypeFlatTop
	TypeBartlett
	TypeTriangle
	TypeCosine
	TypeTukey
	TypeLanczos
)

// DefaultTukeyAlpha is the taper fraction used by Tukey windows unless
// WithAlpha is given.
const DefaultTukeyAlpha = 0.5

var (
	hannCoeffs           = []float64{0.5, -0.5}
	hammingCoeffs        = []float64{0.54, -0.46}
	blackmanCoeffs       = []float64{0.42, -0.5, 0.08}
	blackmanHarrisCoeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	nuttallCoeffs        = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
	flatTopCoeffs        = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var namesByType = map[Type]string{
	TypeRectangular:    "boxcar",
	TypeHann:           "hann",
	TypeHamming:        "hamming",
	TypeBlackman:       "blackman",
	TypeBlackmanHarris: "blackmanharris",
	TypeNuttall:        "nuttall",
	TypeFlatTop:        "flattop",
	TypeBartlett:       "bartlett",
	TypeTriangle:       "triang",
	TypeCosine:         "cosine",
	TypeTukey:          "tukey",
	TypeLanczos:        "lanczos",
}

var aliases = map[string]Type{
	"rectangular": TypeRectangular,
	"rect":        TypeRectangular,
	"box":         TypeRectangular,
	"ones":        TypeRectangular,
	"hanning":     TypeHann,
	"han":         TypeHann,
	"ham":         TypeHamming,
	"black":       TypeBlackman,
	"blk":         TypeBlackman,
	"blackharr":   TypeBlackmanHarris,
	"bkh":         TypeBlackmanHarris,
	"nut":         TypeNuttall,
	"flat":        TypeFlatTop,
	"flat-top":    TypeFlatTop,
	"bart":        TypeBartlett,
	"brt":         TypeBartlett,
	"triangle":    TypeTriangle,
	"tri":         TypeTriangle,
	"cos":         TypeCosine,
	"halfcosine":  TypeCosine,
	"tuk":         TypeTukey,
	"sinc":        TypeLanczos,
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
	alpha    float64
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// WithAlpha sets the taper fraction of a Tukey window, clamped to [0, 1].
// 0 gives a rectangular window and 1 a Hann window.
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		c.alpha = math.Min(math.Max(alpha, 0), 1)
	}
}

// Parse resolves a window name such as "hann" or "blackman". Matching is
// case-insensitive and accepts a few common aliases.
func Parse(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for t, n := range namesByType {
		if n == key {
			return t, nil
		}
	}
	if t, ok := aliases[key]; ok {
		return t, nil
	}
	return 0, unknownWindow(name)
}

// Names returns the canonical window names in sorted order.
func Names() []string {
	out := make([]string, 0, len(namesByType))
	for _, n := range namesByType {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// String returns the canonical name of t.
func (t Type) String() string {
	if n, ok := namesByType[t]; ok {
		return n
	}
	return "unknown"
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := config{alpha: DefaultTukeyAlpha}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// The periodic form is the symmetric window one sample longer with
	// its last sample dropped.
	size := length
	if cfg.periodic {
		size++
	}

	out := make([]float64, length)
	if size == 1 {
		out[0] = 1
		return out
	}
	for i := range out {
		out[i] = evalWindow(t, i, size, cfg.alpha)
	}

	return out
}

// Apply multiplies buf in-place by coeffs.
func Apply(buf, coeffs []float64) error {
	if len(buf) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// SumSquares returns the window energy sum(w[n]^2), the density scaling
// term of a periodogram.
func SumSquares(coeffs []float64) float64 {
	s := 0.0
	for _, c := range coeffs {
		s += c * c
	}
	return s
}

// evalWindow returns sample n of the symmetric window of the given size
// (size >= 2).
func evalWindow(t Type, n, size int, alpha float64) float64 {
	x := float64(n) / float64(size-1)

	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeBlackmanHarris:
		return cosineFromCoeffs(x, blackmanHarrisCoeffs)
	case TypeNuttall:
		return cosineFromCoeffs(x, nuttallCoeffs)
	case TypeFlatTop:
		return cosineFromCoeffs(x, flatTopCoeffs)
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeTriangle:
		return triangleAt(n, size)
	case TypeCosine:
		return math.Sin(math.Pi * (float64(n) + 0.5) / float64(size))
	case TypeTukey:
		return tukeyAt(n, size, alpha)
	case TypeLanczos:
		return sinc(2*x - 1)
	default:
		return 1
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

// triangleAt is the triangle whose endpoints stay above zero: the ramp
// reaches 1 at the centre but starts one step in from the edge.
func triangleAt(n, size int) float64 {
	k := float64(min(n, size-1-n) + 1)
	if size%2 == 0 {
		return (2*k - 1) / float64(size)
	}

	return 2 * k / float64(size+1)
}

// tukeyAt is a flat top with cosine tapers covering alpha of the window.
func tukeyAt(n, size int, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	m := float64(size - 1)
	if alpha >= 1 {
		return cosineFromCoeffs(float64(n)/m, hannCoeffs)
	}

	width := int(math.Floor(alpha * m / 2))
	switch {
	case n <= width:
		return 0.5 * (1 + math.Cos(math.Pi*(-1+2*float64(n)/alpha/m)))
	case n >= size-width-1:
		return 0.5 * (1 + math.Cos(math.Pi*(-2/alpha+1+2*float64(n)/alpha/m)))
	default:
		return 1
	}
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
