package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-draw/dsp/window"
	"github.com/cwbudde/algo-draw/internal/testutil"
)

func TestPower(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, -2), 0}
	testutil.RequireSliceNearlyEqual(t, Power(in), []float64{25, 4, 0}, 1e-12)

	if Power(nil) != nil {
		t.Fatal("Power(nil) should be nil")
	}

	dst := make([]float64, 2)
	PowerInto(dst, in)
	testutil.RequireSliceNearlyEqual(t, dst, []float64{25, 4}, 1e-12)
}

func TestComputeShape(t *testing.T) {
	x := testutil.DeterministicNoise(7, 1, 4096)
	cfg := DefaultConfig()
	cfg.SampleRate = 16

	s, err := Compute(x, cfg)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// 256-sample segments with 32 samples overlap.
	wantSegments := (4096 - 32) / 224
	if len(s.Time) != wantSegments {
		t.Fatalf("segments = %d, want %d", len(s.Time), wantSegments)
	}
	if len(s.Freq) != 129 || len(s.Power) != 129 {
		t.Fatalf("bins = %d/%d, want 129", len(s.Freq), len(s.Power))
	}
	if s.Freq[128] != 8 {
		t.Fatalf("nyquist = %v, want 8", s.Freq[128])
	}
	if math.Abs(s.Time[0]-128.0/16) > 1e-12 {
		t.Fatalf("time[0] = %v, want %v", s.Time[0], 128.0/16)
	}
	if math.Abs(s.Time[1]-s.Time[0]-224.0/16) > 1e-12 {
		t.Fatalf("time step = %v", s.Time[1]-s.Time[0])
	}
	for k := range s.Power {
		testutil.RequireFinite(t, s.Power[k])
		if len(s.Power[k]) != wantSegments {
			t.Fatalf("power[%d] len = %d", k, len(s.Power[k]))
		}
	}
}

func TestComputeSinePeakAndDensity(t *testing.T) {
	const (
		fs  = 1024.0
		amp = 2.0
	)
	// 64 Hz is bin 16 of a 256-point FFT at 1024 Hz.
	x := testutil.DeterministicSine(64, fs, amp, 2048)

	cfg := Config{SampleRate: fs, Window: window.TypeHann, Length: 256, Overlap: 0}
	s, err := Compute(x, cfg)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	df := s.Freq[1] - s.Freq[0]
	for seg := range s.Time {
		peak := 0
		total := 0.0
		for k := range s.Power {
			if s.Power[k][seg] > s.Power[peak][seg] {
				peak = k
			}
			total += s.Power[k][seg] * df
		}
		if peak != 16 {
			t.Fatalf("segment %d: peak bin = %d, want 16", seg, peak)
		}
		want := amp * amp / 2
		if math.Abs(total-want)/want > 0.05 {
			t.Fatalf("segment %d: integrated power = %v, want ~%v", seg, total, want)
		}
	}
}

func TestComputeShortSignalShrinksSegment(t *testing.T) {
	s, err := Compute(testutil.DeterministicSine(1, 8, 1, 100), Config{SampleRate: 8, Length: 512, Overlap: -1})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if s.Length != 100 {
		t.Fatalf("Length = %d, want 100", s.Length)
	}
	if len(s.Time) != 1 {
		t.Fatalf("segments = %d, want 1", len(s.Time))
	}
	if len(s.Freq) != 51 {
		t.Fatalf("bins = %d, want 51", len(s.Freq))
	}
}

func TestComputeNonPowerOfTwoLength(t *testing.T) {
	const fs = 16.0
	x := testutil.DeterministicNoise(3, 1, 2000)
	s, err := Compute(x, Config{SampleRate: fs, Window: window.TypeBlackman, Length: 400, Overlap: -1})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(s.Freq) != 201 {
		t.Fatalf("bins = %d, want 201", len(s.Freq))
	}
	if s.Freq[200] != fs/2 {
		t.Fatalf("nyquist = %v, want %v", s.Freq[200], fs/2)
	}
	if math.Abs(s.Freq[1]-fs/400) > 1e-12 {
		t.Fatalf("bin spacing = %v, want %v", s.Freq[1], fs/400)
	}
	// 400-sample segments with 50 samples overlap.
	if want := (2000 - 50) / 350; len(s.Time) != want {
		t.Fatalf("segments = %d, want %d", len(s.Time), want)
	}
}

func TestComputeErrors(t *testing.T) {
	if _, err := Compute(nil, DefaultConfig()); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("Compute(nil) error = %v, want ErrEmptySignal", err)
	}

	x := testutil.Ones(64)
	bad := []Config{
		{SampleRate: 0, Length: 16},
		{SampleRate: 1, Length: 0},
		{SampleRate: 1, Length: 16, Overlap: 16},
	}
	for i, cfg := range bad {
		if _, err := Compute(x, cfg); err == nil {
			t.Fatalf("case %d: Compute() should fail", i)
		}
	}
}

func TestComputeConstantSignalIsDetrended(t *testing.T) {
	s, err := Compute(testutil.DC(3, 512), Config{SampleRate: 1, Window: window.TypeHann, Length: 128, Overlap: 0})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for k := range s.Power {
		for _, p := range s.Power[k] {
			if p > 1e-20 {
				t.Fatalf("bin %d power = %v, want ~0 after detrend", k, p)
			}
		}
	}
}
