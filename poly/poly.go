// SPDX-License-Identifier: MIT

package poly

import "math"

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial. Exact comparison; see Trim for tolerance-based cleanup.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}

	return -1
}

// MaxAbs returns the largest coefficient magnitude (0 for the zero polynomial).
func (p Polynomial) MaxAbs() float64 {
	m := 0.0
	for _, c := range p {
		if a := math.Abs(c); a > m {
			m = a
		}
	}

	return m
}

// IsZero reports whether every coefficient magnitude is at most tol.
// A nil or empty polynomial is zero.
func (p Polynomial) IsZero(tol float64) bool {
	return p.MaxAbs() <= tol
}

// Trim drops leading coefficients whose magnitude is at most tol·MaxAbs().
// Trim of the zero polynomial is an empty Polynomial.
//
// Complexity: O(n).
func (p Polynomial) Trim(tol float64) Polynomial {
	scale := p.MaxAbs()
	if scale == 0 {
		return Polynomial{}
	}
	n := len(p)
	for n > 0 && math.Abs(p[n-1]) <= tol*scale {
		n--
	}

	return New(p[:n]...)
}

// Eval evaluates p at x by Horner's rule.
//
// Complexity: O(n).
func (p Polynomial) Eval(x float64) float64 {
	acc := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*x + p[i]
	}

	return acc
}

// Derivative returns dp/dx. The derivative of a constant is the empty polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p) <= 1 {
		return Polynomial{}
	}
	d := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}

	return d
}

// DivideLinear divides p by (x − r) with synthetic division and returns the
// quotient and the remainder (which equals p(r)).
//
// Complexity: O(n).
func (p Polynomial) DivideLinear(r float64) (Polynomial, float64) {
	if len(p) == 0 {
		return Polynomial{}, 0
	}
	q := make(Polynomial, len(p)-1)
	carry := 0.0
	for i := len(p) - 1; i >= 1; i-- {
		carry = carry*r + p[i]
		q[i-1] = carry
	}

	return q, carry*r + p[0]
}

// Deflate divides out (x − r) for as long as r remains a root, i.e. while
// |p(r)| ≤ tol·MaxAbs(p). It returns the deflated polynomial and the
// multiplicity removed. The zero polynomial is returned unchanged.
//
// Implementation:
//   - r == 0 is handled by shifting coefficients (exact).
//   - Otherwise synthetic division; the (tiny) remainder is discarded.
func (p Polynomial) Deflate(r, tol float64) (Polynomial, int) {
	q := New(p...)
	mult := 0
	for q.Degree() >= 1 {
		scale := q.MaxAbs()
		if math.Abs(q.Eval(r)) > tol*scale {
			break
		}
		if r == 0 {
			q = New(q[1:]...)
		} else {
			q, _ = q.DivideLinear(r)
		}
		mult++
	}

	return q, mult
}

// Polish refines an approximate real root x with at most steps Newton
// iterations, keeping only steps that do not increase |p(x)|.
func (p Polynomial) Polish(x float64, steps int) float64 {
	d := p.Derivative()
	best, bestVal := x, math.Abs(p.Eval(x))
	for i := 0; i < steps && bestVal > 0; i++ {
		slope := d.Eval(best)
		if slope == 0 {
			break
		}
		next := best - p.Eval(best)/slope
		nextVal := math.Abs(p.Eval(next))
		if math.IsNaN(next) || nextVal > bestVal {
			break
		}
		if next == best {
			break
		}
		best, bestVal = next, nextVal
	}

	return best
}
