// SPDX-License-Identifier: MIT

package galam

import "errors"

// Sentinel errors. Callers match them with errors.Is; call sites attach
// context with fmt.Errorf("Op: %w", err).
var (
	// ErrDegenerateDistribution indicates all-zero, negative or non-finite
	// interaction weights; normalization is impossible.
	ErrDegenerateDistribution = errors.New("galam: degenerate interaction distribution")

	// ErrGroupSize indicates a group size outside 1..MaxGroupSize or more
	// than MaxGroupSize weights.
	ErrGroupSize = errors.New("galam: group size out of range")

	// ErrNoInteriorRoot indicates that F(x) = x has zero or several solutions
	// in (0,1), or infinitely many (F is the identity).
	ErrNoInteriorRoot = errors.New("galam: no unique interior fixed point")

	// ErrInvalidRatio indicates a belief ratio outside [0,1] or NaN.
	ErrInvalidRatio = errors.New("galam: belief ratio must be within [0,1]")

	// ErrInvalidDays indicates a trajectory length below 1.
	ErrInvalidDays = errors.New("galam: days must be >= 1")

	// ErrInvalidDelta indicates a bracket offset outside (0,1).
	ErrInvalidDelta = errors.New("galam: bracket delta must be within (0,1)")

	// ErrInvalidRange indicates a sweep range with a non-positive step,
	// from > to, or non-finite bounds.
	ErrInvalidRange = errors.New("galam: invalid sweep range")
)
