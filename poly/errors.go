// SPDX-License-Identifier: MIT

package poly

import "errors"

var (
	// ErrZeroPolynomial indicates a root query on the identically-zero
	// polynomial, whose root set is the whole line.
	ErrZeroPolynomial = errors.New("poly: zero polynomial has no isolated roots")

	// ErrInvalidInterval indicates lo >= hi or a non-finite bound.
	ErrInvalidInterval = errors.New("poly: invalid interval")
)

// ErrConstant indicates a companion matrix request for a degree-0 polynomial.
var ErrConstant = errors.New("poly: constant polynomial has no companion matrix")
