package core

import "math"

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// PowerToDBFloor converts src to dB into dst. Zero-power entries, which
// would map to -Inf, are replaced by the smallest finite dB value found so
// the result can be colour-mapped. An all-zero input yields all zeros.
func PowerToDBFloor(dst, src []float64) {
	floor := math.Inf(1)
	for i, p := range src {
		v := LinearPowerToDB(p)
		dst[i] = v
		if !math.IsInf(v, 0) && !math.IsNaN(v) && v < floor {
			floor = v
		}
	}

	if math.IsInf(floor, 1) {
		floor = 0
	}

	for i, v := range dst[:len(src)] {
		if math.IsInf(v, -1) || math.IsNaN(v) {
			dst[i] = floor
		}
	}
}

// MaxAbs returns max(|x[i]|), or 0 for an empty slice.
func MaxAbs(x []float64) float64 {
	m := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}
