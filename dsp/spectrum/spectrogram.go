package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-draw/dsp/core"
	"github.com/cwbudde/algo-draw/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
)

// ErrEmptySignal is returned when a spectrogram is requested for no samples.
var ErrEmptySignal = errors.New("spectrum: empty signal")

// Config controls spectrogram analysis.
type Config struct {
	// SampleRate scales the frequency and time axes. Frequencies are
	// reported in the same unit (e.g. kHz in, kHz out).
	SampleRate float64
	Window     window.Type
	// Length is the segment length in samples.
	Length int
	// Overlap is the number of samples shared by consecutive segments.
	// A negative value selects Length/8.
	Overlap int
}

// DefaultConfig returns a Hann-windowed configuration with 256-sample
// segments at unit sample rate.
func DefaultConfig() Config {
	return Config{
		SampleRate: 1,
		Window:     window.TypeHann,
		Length:     256,
		Overlap:    -1,
	}
}

// Spectrogram is a one-sided power spectral density over time.
type Spectrogram struct {
	// Freq holds bin frequencies in SampleRate units.
	Freq []float64
	// Time holds segment centres in 1/SampleRate units.
	Time []float64
	// Power is indexed [freq][time].
	Power [][]float64
	// Length is the segment length actually used, which is shortened to
	// the signal length for short inputs.
	Length int
}

// Compute returns the spectrogram of x.
//
// Each segment is mean-detrended, windowed with a periodic window and
// transformed by an FFT of the segment length. Power is density
// scaled by 1/(fs*sum(w^2)) with interior bins doubled for the one-sided
// spectrum.
func Compute(x []float64, cfg Config) (Spectrogram, error) {
	if len(x) == 0 {
		return Spectrogram{}, ErrEmptySignal
	}
	if cfg.SampleRate <= 0 {
		return Spectrogram{}, fmt.Errorf("spectrogram sample rate must be > 0: %f", cfg.SampleRate)
	}
	if cfg.Length <= 0 {
		return Spectrogram{}, fmt.Errorf("spectrogram segment length must be > 0: %d", cfg.Length)
	}

	length := cfg.Length
	if length > len(x) {
		length = len(x)
	}

	overlap := cfg.Overlap
	if overlap < 0 {
		overlap = length / 8
	}
	if overlap >= length {
		return Spectrogram{}, fmt.Errorf("spectrogram overlap must be < segment length: %d >= %d", overlap, length)
	}
	step := length - overlap

	fftSize := length
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrogram{}, fmt.Errorf("spectrogram: failed to create FFT plan: %w", err)
	}

	win := window.Generate(cfg.Window, length, window.WithPeriodic())
	scale := 1 / (cfg.SampleRate * window.SumSquares(win))

	segments := (len(x) - overlap) / step
	bins := fftSize/2 + 1

	out := Spectrogram{
		Freq:   make([]float64, bins),
		Time:   make([]float64, segments),
		Power:  make([][]float64, bins),
		Length: length,
	}
	for k := range out.Freq {
		out.Freq[k] = float64(k) * cfg.SampleRate / float64(fftSize)
		out.Power[k] = make([]float64, segments)
	}

	seg := make([]float64, length)
	in := make([]complex128, fftSize)
	spec := make([]complex128, fftSize)
	pow := make([]float64, bins)

	for s := 0; s < segments; s++ {
		start := s * step
		core.CopyInto(seg, x[start:start+length])
		removeMean(seg)
		if err := window.Apply(seg, win); err != nil {
			return Spectrogram{}, err
		}

		for i, v := range seg {
			in[i] = complex(v, 0)
		}

		if err := plan.Forward(spec, in); err != nil {
			return Spectrogram{}, fmt.Errorf("spectrogram: forward FFT failed: %w", err)
		}

		PowerInto(pow, spec)
		for k, p := range pow {
			p *= scale
			if k > 0 && (k < bins-1 || fftSize%2 == 1) {
				p *= 2
			}
			out.Power[k][s] = p
		}

		out.Time[s] = (float64(length)/2 + float64(start)) / cfg.SampleRate
	}

	return out, nil
}

func removeMean(buf []float64) {
	sum := 0.0
	for _, v := range buf {
		sum += v
	}
	mean := sum / float64(len(buf))
	for i := range buf {
		buf[i] -= mean
	}
}
