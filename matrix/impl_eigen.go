// SPDX-License-Identifier: MIT
// Package matrix: general (non-symmetric) eigenvalue kernel.
//
// Purpose:
//   - Compute all eigenvalues (real and complex-conjugate pairs) of a real square matrix.
//   - Serve as the numeric engine behind companion-matrix polynomial root finding.
//
// Pipeline:
//   - balance:    diagonal similarity with powers of two (exact in binary floating point).
//   - hessenberg: stabilized elementary similarity reduction to upper Hessenberg form.
//   - hqr:        Francis implicit double-shift QR on the Hessenberg matrix.
//
// Notes:
//   - The working copy uses 1-based indices (row/col 0 unused) so the bulge-chasing
//     index arithmetic stays identical to its textbook statement.
//   - The input matrix is never mutated.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Operation name constants for unified error wrapping.
const (
	opEigenvalues = "Eigenvalues"
)

// balanceRadix is the floating-point base; scaling by its powers introduces no rounding.
const balanceRadix = 2.0

// balanceThreshold: a row/column pair is rescaled only when it shrinks the
// combined norm below this fraction of the original.
const balanceThreshold = 0.95

// Exceptional-shift schedule and constants for the Francis step: an ad hoc
// shift replaces the Wilkinson shift after every exceptionalShiftEvery
// stalled sweeps on the same block.
const (
	exceptionalShiftEvery = 10
	exceptionalScale      = 0.75
	exceptionalW          = -0.4375
)

// Eigenvalues returns every eigenvalue of the square matrix m as complex128,
// sorted ascending by real part and then by imaginary part.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); copy into a 1-based working array,
//     rejecting NaN/±Inf entries.
//   - Stage 2: optional balancing (DefaultBalance), then Hessenberg reduction.
//   - Stage 3: Francis double-shift QR; each converged 1×1 block yields a real
//     eigenvalue, each 2×2 block a real pair or a complex-conjugate pair.
//
// Inputs:
//   - m: non-nil square Matrix (n ≥ 1).
//   - opts: WithMaxIterations, WithoutBalancing.
//
// Returns:
//   - []complex128: n eigenvalues with multiplicity, deterministically ordered.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrNaNInf (non-finite input entry).
//   - ErrMatrixEigenFailed (an eigenvalue failed to deflate within maxIter sweeps).
//
// Determinism:
//   - Fixed loop orders and a stable final sort produce bit-identical output for identical input.
//
// Complexity:
//   - Time O(n³) reduction + O(n²) per QR sweep (typically ~2 sweeps per eigenvalue).
//   - Space O(n²).
//
// AI-Hints:
//   - Companion matrices are already Hessenberg; the reduction then costs only the pivot scans.
//   - Keep balancing on for polynomial roots; coefficients often span many orders of magnitude.
func Eigenvalues(m Matrix, opts ...Option) ([]complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opEigenvalues, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	a, err := workingCopy(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEigenvalues, err)
	}
	if o.balance {
		balance(a, n)
	}
	hessenberg(a, n)

	wr, wi, err := hqr(a, n, o.maxIter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEigenvalues, err)
	}

	eigs := make([]complex128, n)
	for i := 1; i <= n; i++ {
		eigs[i-1] = complex(wr[i], wi[i])
	}
	sort.SliceStable(eigs, func(i, j int) bool {
		if real(eigs[i]) != real(eigs[j]) {
			return real(eigs[i]) < real(eigs[j])
		}
		return imag(eigs[i]) < imag(eigs[j])
	})

	return eigs, nil
}

// workingCopy copies m into an (n+1)×(n+1) 1-based array.
// Fast path reads the flat *Dense buffer; fallback goes through At.
func workingCopy(m Matrix) ([][]float64, error) {
	n := m.Rows()
	a := make([][]float64, n+1)
	for i := range a {
		a[i] = make([]float64, n+1)
	}

	var (
		i, j int
		v    float64
		err  error
	)
	d, fast := m.(*Dense)
	var stride int
	if fast {
		_, stride = d.Shape()
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if fast {
				v = d.data[i*stride+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			a[i+1][j+1] = v
		}
	}

	return a, nil
}

// balance replaces a by D⁻¹·a·D with D diagonal (powers of balanceRadix) so
// that each row and its matching column have comparable norms.
// Eigenvalues are unchanged; zero patterns (and Hessenberg form) are preserved.
func balance(a [][]float64, n int) {
	sqrdx := balanceRadix * balanceRadix
	var (
		i, j          int
		c, r, f, g, s float64
	)
	for done := false; !done; {
		done = true
		for i = 1; i <= n; i++ {
			r, c = 0, 0
			for j = 1; j <= n; j++ {
				if j != i {
					c += math.Abs(a[j][i])
					r += math.Abs(a[i][j])
				}
			}
			if c == 0 || r == 0 {
				continue
			}
			g = r / balanceRadix
			f = 1.0
			s = c + r
			for c < g {
				f *= balanceRadix
				c *= sqrdx
			}
			g = r * balanceRadix
			for c > g {
				f /= balanceRadix
				c /= sqrdx
			}
			if (c+r)/f < balanceThreshold*s {
				done = false
				g = 1.0 / f
				for j = 1; j <= n; j++ {
					a[i][j] *= g
				}
				for j = 1; j <= n; j++ {
					a[j][i] *= f
				}
			}
		}
	}
}

// hessenberg reduces a to upper Hessenberg form by Gaussian elimination with
// pivoting, applied as a similarity transform. Entries below the subdiagonal
// are cleared afterwards so hqr sees a clean Hessenberg matrix.
func hessenberg(a [][]float64, n int) {
	var (
		m, i, j int
		x, y    float64
	)
	for m = 2; m < n; m++ {
		x = 0
		i = m
		// Pivot: largest |a[j][m-1]| on or below the subdiagonal.
		for j = m; j <= n; j++ {
			if math.Abs(a[j][m-1]) > math.Abs(x) {
				x = a[j][m-1]
				i = j
			}
		}
		if i != m {
			for j = m - 1; j <= n; j++ {
				a[i][j], a[m][j] = a[m][j], a[i][j]
			}
			for j = 1; j <= n; j++ {
				a[j][i], a[j][m] = a[j][m], a[j][i]
			}
		}
		if x == 0 {
			continue
		}
		for i = m + 1; i <= n; i++ {
			y = a[i][m-1]
			if y == 0 {
				continue
			}
			y /= x
			a[i][m-1] = y
			for j = m; j <= n; j++ {
				a[i][j] -= y * a[m][j]
			}
			for j = 1; j <= n; j++ {
				a[j][m] += y * a[j][i]
			}
		}
	}
	// The multipliers left below the subdiagonal are not part of the reduced matrix.
	for i = 3; i <= n; i++ {
		for j = 1; j < i-1; j++ {
			a[i][j] = 0
		}
	}
}

// hqr runs the Francis implicit double-shift QR iteration on the upper
// Hessenberg matrix a (destroyed on return) and returns the real and
// imaginary parts of its eigenvalues (1-based slices).
//
// Behavior highlights:
//   - Small subdiagonal entries are detected relative to their diagonal
//     neighbours and zeroed, splitting the problem.
//   - An exceptional shift every 10 stalled sweeps breaks stagnation cycles
//     (e.g. spectra symmetric about a point, as in odd-size majority mixes).
//
// Errors:
//   - ErrMatrixEigenFailed when a block needs more than maxIter sweeps.
func hqr(a [][]float64, n, maxIter int) (wr, wi []float64, err error) {
	wr = make([]float64, n+1)
	wi = make([]float64, n+1)

	var (
		nn, m, l, k, j, its, i, mmin           int
		z, y, x, w, v, u, t, s, r, q, p, anorm float64
	)

	// Norm of the Hessenberg part; scale reference for negligible entries.
	for i = 1; i <= n; i++ {
		for j = max(i-1, 1); j <= n; j++ {
			anorm += math.Abs(a[i][j])
		}
	}

	nn = n
	t = 0 // accumulated exceptional shifts
	for nn >= 1 {
		its = 0
		for {
			// Look for a single small subdiagonal element.
			for l = nn; l >= 2; l-- {
				s = math.Abs(a[l-1][l-1]) + math.Abs(a[l][l])
				if s == 0 {
					s = anorm
				}
				if math.Abs(a[l][l-1])+s == s {
					a[l][l-1] = 0
					break
				}
			}
			x = a[nn][nn]
			if l == nn {
				// One root found.
				wr[nn] = x + t
				wi[nn] = 0
				nn--
			} else {
				y = a[nn-1][nn-1]
				w = a[nn][nn-1] * a[nn-1][nn]
				if l == nn-1 {
					// Two roots found: real pair or complex-conjugate pair.
					p = 0.5 * (y - x)
					q = p*p + w
					z = math.Sqrt(math.Abs(q))
					x += t
					if q >= 0 {
						z = p + signOf(z, p)
						wr[nn-1] = x + z
						wr[nn] = x + z
						if z != 0 {
							wr[nn] = x - w/z
						}
						wi[nn-1] = 0
						wi[nn] = 0
					} else {
						wr[nn-1] = x + p
						wr[nn] = x + p
						wi[nn-1] = -z
						wi[nn] = z
					}
					nn -= 2
				} else {
					// No roots found yet; continue iterating.
					if its == maxIter {
						return nil, nil, fmt.Errorf("no convergence after %d sweeps at block %d: %w", its, nn, ErrMatrixEigenFailed)
					}
					if its > 0 && its%exceptionalShiftEvery == 0 {
						t += x
						for i = 1; i <= nn; i++ {
							a[i][i] -= x
						}
						s = math.Abs(a[nn][nn-1]) + math.Abs(a[nn-1][nn-2])
						x = exceptionalScale * s
						y = x
						w = exceptionalW * s * s
					}
					its++

					// Form the shift and look for two consecutive small subdiagonal elements.
					for m = nn - 2; m >= l; m-- {
						z = a[m][m]
						r = x - z
						s = y - z
						p = (r*s-w)/a[m+1][m] + a[m][m+1]
						q = a[m+1][m+1] - z - r - s
						r = a[m+2][m+1]
						s = math.Abs(p) + math.Abs(q) + math.Abs(r)
						p /= s
						q /= s
						r /= s
						if m == l {
							break
						}
						u = math.Abs(a[m][m-1]) * (math.Abs(q) + math.Abs(r))
						v = math.Abs(p) * (math.Abs(a[m-1][m-1]) + math.Abs(z) + math.Abs(a[m+1][m+1]))
						if u+v == v {
							break
						}
					}
					for i = m + 2; i <= nn; i++ {
						a[i][i-2] = 0
						if i != m+2 {
							a[i][i-3] = 0
						}
					}

					// Double QR step on rows l..nn and columns m..nn (bulge chase).
					for k = m; k <= nn-1; k++ {
						if k != m {
							p = a[k][k-1]
							q = a[k+1][k-1]
							r = 0
							if k != nn-1 {
								r = a[k+2][k-1]
							}
							x = math.Abs(p) + math.Abs(q) + math.Abs(r)
							if x != 0 {
								p /= x
								q /= x
								r /= x
							}
						}
						s = signOf(math.Sqrt(p*p+q*q+r*r), p)
						if s == 0 {
							continue
						}
						if k == m {
							if l != m {
								a[k][k-1] = -a[k][k-1]
							}
						} else {
							a[k][k-1] = -s * x
						}
						p += s
						x = p / s
						y = q / s
						z = r / s
						q /= p
						r /= p
						// Row modification.
						for j = k; j <= nn; j++ {
							p = a[k][j] + q*a[k+1][j]
							if k != nn-1 {
								p += r * a[k+2][j]
								a[k+2][j] -= p * z
							}
							a[k+1][j] -= p * y
							a[k][j] -= p * x
						}
						// Column modification.
						mmin = min(nn, k+3)
						for i = l; i <= mmin; i++ {
							p = x*a[i][k] + y*a[i][k+1]
							if k != nn-1 {
								p += z * a[i][k+2]
								a[i][k+2] -= p * r
							}
							a[i][k+1] -= p * q
							a[i][k] -= p
						}
					}
				}
			}
			if l >= nn-1 {
				break
			}
		}
	}

	return wr, wi, nil
}

// signOf returns |a| carrying the sign of b, treating b == 0 as positive.
func signOf(a, b float64) float64 {
	if b >= 0 {
		return math.Abs(a)
	}
	return -math.Abs(a)
}
