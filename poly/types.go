// SPDX-License-Identifier: MIT

package poly

// Polynomial holds real coefficients in ascending order of power.
// The zero value (nil) is the zero polynomial.
// Methods never mutate the receiver; they return fresh slices.
type Polynomial []float64

// New copies coeffs (ascending powers) into a Polynomial.
func New(coeffs ...float64) Polynomial {
	p := make(Polynomial, len(coeffs))
	copy(p, coeffs)

	return p
}
