package core

import (
	"math"
	"testing"
)

func TestLinearPowerToDB(t *testing.T) {
	if db := LinearPowerToDB(100); math.Abs(db-20) > 1e-12 {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", db)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}

func TestPowerToDBFloor(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{name: "finite", in: []float64{1, 10, 100}, want: []float64{0, 10, 20}},
		{name: "zero floored", in: []float64{0, 0.1, 10}, want: []float64{-10, -10, 10}},
		{name: "all zero", in: []float64{0, 0}, want: []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]float64, len(tt.in))
			PowerToDBFloor(got, tt.in)
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Fatalf("index %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs([]float64{1, -3, 2}); got != 3 {
		t.Fatalf("MaxAbs() = %v, want 3", got)
	}
	if got := MaxAbs(nil); got != 0 {
		t.Fatalf("MaxAbs(nil) = %v, want 0", got)
	}
}
