// SPDX-License-Identifier: MIT

package galam

import (
	"fmt"
	"math"
)

const (
	opPredict = "Predict"
	opBracket = "Bracket"
)

// Predict compares a starting truth ratio with the killing point of d and
// returns the long-run outcome together with the killing point.
//
// Errors:
//   - ErrInvalidRatio, and any FindKillingPoint error.
func Predict(d Distribution, ratio float64, opts ...Option) (Outcome, float64, error) {
	if err := validateRatio(ratio); err != nil {
		return RumorWins, 0, fmt.Errorf("%s: %w", opPredict, err)
	}
	k, err := FindKillingPoint(d, opts...)
	if err != nil {
		return RumorWins, 0, fmt.Errorf("%s: %w", opPredict, err)
	}

	switch {
	case ratio > k:
		return TruthWins, k, nil
	case ratio < k:
		return RumorWins, k, nil
	default:
		return Balanced, k, nil
	}
}

// Bracket evolves three trajectories for days steps: starting at
// K·(1+delta) (capped at 1), at K, and at K·(1−delta). It shows how fast a
// rumor invades compared with how slowly it recedes for the same offset.
//
// Errors:
//   - ErrInvalidDelta for delta outside (0,1), plus FindKillingPoint and
//     Evolve errors.
func Bracket(d Distribution, delta float64, days int, opts ...Option) (BracketResult, error) {
	if math.IsNaN(delta) || delta <= 0 || delta >= 1 {
		return BracketResult{}, fmt.Errorf("%s: delta=%g: %w", opBracket, delta, ErrInvalidDelta)
	}
	k, err := FindKillingPoint(d, opts...)
	if err != nil {
		return BracketResult{}, fmt.Errorf("%s: %w", opBracket, err)
	}

	res := BracketResult{KillingPoint: k, Delta: delta}
	starts := []struct {
		ratio float64
		dst   *Trajectory
	}{
		{min(k*(1+delta), 1), &res.Above},
		{k, &res.At},
		{k * (1 - delta), &res.Below},
	}
	for _, s := range starts {
		traj, err := Evolve(d, s.ratio, days)
		if err != nil {
			return BracketResult{}, fmt.Errorf("%s: %w", opBracket, err)
		}
		*s.dst = traj
	}

	return res, nil
}
