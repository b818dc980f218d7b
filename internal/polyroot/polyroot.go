// Package polyroot finds the roots of real polynomials so that transfer
// function coefficients can be drawn on the z-plane.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// Roots returns the roots of the real polynomial
// coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
// Leading zero coefficients are ignored and trailing zeros contribute roots
// at the origin. A constant polynomial has no roots. The result is sorted by
// real part, then imaginary part; real parts within 1e-9 compare equal.
func Roots(coeff []float64) ([]complex128, error) {
	start := 0
	for start < len(coeff) && coeff[start] == 0 {
		start++
	}
	if start == len(coeff) {
		return nil, ErrDegeneratePolynomial
	}
	coeff = coeff[start:]

	end := len(coeff)
	for end > 1 && coeff[end-1] == 0 {
		end--
	}
	zeros := len(coeff) - end

	roots := make([]complex128, 0, len(coeff)-1)
	for range zeros {
		roots = append(roots, 0)
	}

	if end > 1 {
		c := make([]complex128, end)
		for i := range c {
			c[i] = complex(coeff[i], 0)
		}

		found, err := DurandKerner(c)
		if err != nil {
			return nil, err
		}

		for _, r := range found {
			roots = append(roots, cleanRoot(r))
		}
	}

	sort.Slice(roots, func(i, j int) bool {
		if math.Abs(real(roots[i])-real(roots[j])) > 1e-9 {
			return real(roots[i]) < real(roots[j])
		}
		return imag(roots[i]) < imag(roots[j])
	})

	return roots, nil
}

// cleanRoot snaps numerically tiny imaginary parts of real roots to zero.
func cleanRoot(r complex128) complex128 {
	if math.Abs(imag(r)) <= 1e-10*math.Max(1, cmplx.Abs(r)) {
		return complex(real(r), 0)
	}
	return r
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		if res := cmplx.Abs(PolyEval(norm, r)); res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}
