// SPDX-License-Identifier: MIT

package galam

import (
	"fmt"
	"math"
)

const opEvolve = "Evolve"

// Evolve iterates the update map for days-1 steps starting from
// initialRatio and returns the full trajectory of length days.
// The same distribution is applied on every day.
//
// Errors (checked before any iteration; no partial trajectory is returned):
//   - ErrDegenerateDistribution for a zero-value Distribution.
//   - ErrInvalidRatio for initialRatio outside [0,1] or NaN.
//   - ErrInvalidDays for days < 1.
//
// Complexity: O(days · MaxGroupSize²).
func Evolve(d Distribution, initialRatio float64, days int) (Trajectory, error) {
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opEvolve, err)
	}
	if err := validateRatio(initialRatio); err != nil {
		return nil, fmt.Errorf("%s: %w", opEvolve, err)
	}
	if days < 1 {
		return nil, fmt.Errorf("%s: days=%d: %w", opEvolve, days, ErrInvalidDays)
	}

	traj := make(Trajectory, days)
	traj[0] = initialRatio
	for t := 1; t < days; t++ {
		traj[t] = d.Step(traj[t-1])
	}

	return traj, nil
}

// validateRatio accepts only finite values in [0,1].
func validateRatio(r float64) error {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return fmt.Errorf("ratio %g: %w", r, ErrInvalidRatio)
	}

	return nil
}

// Final returns the last ratio of the trajectory (NaN when empty).
func (t Trajectory) Final() float64 {
	if len(t) == 0 {
		return math.NaN()
	}

	return t[len(t)-1]
}

// SettleDay returns the first day on which the ratio is within tol of a
// consensus (0 or 1), or -1 if the trajectory never gets there.
func (t Trajectory) SettleDay(tol float64) int {
	for day, x := range t {
		if x <= tol || x >= 1-tol {
			return day
		}
	}

	return -1
}

// IsMonotone reports whether the trajectory is entirely non-decreasing or
// entirely non-increasing.
func (t Trajectory) IsMonotone() bool {
	up, down := true, true
	for i := 1; i < len(t); i++ {
		if t[i] < t[i-1] {
			up = false
		}
		if t[i] > t[i-1] {
			down = false
		}
	}

	return up || down
}
