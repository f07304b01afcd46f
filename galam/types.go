// SPDX-License-Identifier: MIT

package galam

import "fmt"

// MaxGroupSize is the largest interaction group the model supports. The
// closed-form fixed-point polynomial is derived for exactly this size.
const MaxGroupSize = 7

// DefaultWeights returns the reference interaction pattern: one interaction a
// day in each of the group sizes 2, 3 and 4. Each call returns a fresh slice.
func DefaultWeights() []float64 {
	return []float64{0, 1, 1, 1, 0, 0, 0}
}

// Distribution is a normalized interaction distribution over group sizes
// 1..MaxGroupSize. It is a value type: copies are independent and no method
// mutates the receiver.
type Distribution struct {
	weights [MaxGroupSize]float64 // caller-supplied raw weights
	p       [MaxGroupSize]float64 // weights / total
	total   float64               // > 0 for a constructed distribution
}

// Trajectory is the day-by-day sequence of truth-belief ratios; index 0 is
// the initial ratio.
type Trajectory []float64

// Outcome is the long-run verdict for a starting ratio.
type Outcome int

const (
	// RumorWins: the ratio lies below the killing point and flows to 0.
	RumorWins Outcome = iota
	// Balanced: the ratio sits exactly on the (unstable) killing point.
	Balanced
	// TruthWins: the ratio lies above the killing point and flows to 1.
	TruthWins
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case RumorWins:
		return "rumor spreads"
	case Balanced:
		return "balanced"
	case TruthWins:
		return "rumor dies out"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// BracketResult holds trajectories started just above, on, and just below
// the killing point.
type BracketResult struct {
	KillingPoint float64
	Delta        float64
	Above        Trajectory // starts at K·(1+Delta), capped at 1
	At           Trajectory // starts at K
	Below        Trajectory // starts at K·(1−Delta)
}

// SweepPoint is one evaluation of a sensitivity sweep.
type SweepPoint struct {
	Weight       float64      // raw weight assigned to the swept group size
	Distribution Distribution // the fresh distribution evaluated
	KillingPoint float64
}
