// Package report wraps model results in run envelopes and renders them as
// a table, JSON, YAML or CSV.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/rumorsim/galam"
)

// Kind names the operation that produced a report.
type Kind string

const (
	KindKillingPoint Kind = "killing-point"
	KindEvolve       Kind = "evolve"
	KindPredict      Kind = "predict"
	KindBracket      Kind = "bracket"
	KindSweep        Kind = "sweep"
)

// Report is one CLI run: inputs, results and identity. Fields that do not
// apply to Kind are left empty and omitted from JSON and YAML.
type Report struct {
	RunID        string     `json:"run_id" yaml:"run_id"`
	Kind         Kind       `json:"kind" yaml:"kind"`
	CreatedAt    time.Time  `json:"created_at" yaml:"created_at"`
	Weights      []float64  `json:"weights" yaml:"weights"`
	KillingPoint *float64   `json:"killing_point,omitempty" yaml:"killing_point,omitempty"`
	InitialRatio *float64   `json:"initial_ratio,omitempty" yaml:"initial_ratio,omitempty"`
	Outcome      string     `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Trajectory   []float64  `json:"trajectory,omitempty" yaml:"trajectory,omitempty"`
	Bracket      *Bracket   `json:"bracket,omitempty" yaml:"bracket,omitempty"`
	GroupSize    int        `json:"group_size,omitempty" yaml:"group_size,omitempty"`
	Sweep        []SweepRow `json:"sweep,omitempty" yaml:"sweep,omitempty"`
}

// Bracket holds the three trajectories around the killing point.
type Bracket struct {
	Delta float64   `json:"delta" yaml:"delta"`
	Above []float64 `json:"above" yaml:"above"`
	At    []float64 `json:"at" yaml:"at"`
	Below []float64 `json:"below" yaml:"below"`
}

// SweepRow is one sweep point.
type SweepRow struct {
	Weight       float64 `json:"weight" yaml:"weight"`
	KillingPoint float64 `json:"killing_point" yaml:"killing_point"`
}

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

func newReport(kind Kind, d galam.Distribution) Report {
	return Report{
		RunID:     uuid.NewString(),
		Kind:      kind,
		CreatedAt: now(),
		Weights:   d.Weights(),
	}
}

// NewKillingPoint reports the killing point of d.
func NewKillingPoint(d galam.Distribution, k float64) Report {
	r := newReport(KindKillingPoint, d)
	r.KillingPoint = &k

	return r
}

// NewEvolve reports a trajectory started at traj[0].
func NewEvolve(d galam.Distribution, traj galam.Trajectory) Report {
	r := newReport(KindEvolve, d)
	if len(traj) > 0 {
		initial := traj[0]
		r.InitialRatio = &initial
	}
	r.Trajectory = append([]float64(nil), traj...)

	return r
}

// NewPredict reports the verdict for a starting ratio.
func NewPredict(d galam.Distribution, ratio float64, out galam.Outcome, k float64) Report {
	r := newReport(KindPredict, d)
	r.InitialRatio = &ratio
	r.KillingPoint = &k
	r.Outcome = out.String()

	return r
}

// NewBracket reports the trajectories around the killing point.
func NewBracket(d galam.Distribution, res galam.BracketResult) Report {
	r := newReport(KindBracket, d)
	k := res.KillingPoint
	r.KillingPoint = &k
	r.Bracket = &Bracket{
		Delta: res.Delta,
		Above: append([]float64(nil), res.Above...),
		At:    append([]float64(nil), res.At...),
		Below: append([]float64(nil), res.Below...),
	}

	return r
}

// NewSweep reports a sweep over the weight of group size k.
func NewSweep(base galam.Distribution, k int, points []galam.SweepPoint) Report {
	r := newReport(KindSweep, base)
	r.GroupSize = k
	r.Sweep = make([]SweepRow, len(points))
	for i, pt := range points {
		r.Sweep[i] = SweepRow{Weight: pt.Weight, KillingPoint: pt.KillingPoint}
	}

	return r
}

// Rows flattens the result into a header row followed by data rows; it
// backs both the table and the CSV renderers.
func (r Report) Rows() [][]string {
	switch r.Kind {
	case KindEvolve:
		rows := [][]string{{"day", "ratio"}}
		for day, x := range r.Trajectory {
			rows = append(rows, []string{fmt.Sprint(day), formatFloat(x)})
		}

		return rows
	case KindBracket:
		rows := [][]string{{"day", "above", "at", "below"}}
		if r.Bracket == nil {
			return rows
		}
		for day := range r.Bracket.At {
			rows = append(rows, []string{
				fmt.Sprint(day),
				formatFloat(at(r.Bracket.Above, day)),
				formatFloat(r.Bracket.At[day]),
				formatFloat(at(r.Bracket.Below, day)),
			})
		}

		return rows
	case KindSweep:
		rows := [][]string{{"weight", "killing_point"}}
		for _, s := range r.Sweep {
			rows = append(rows, []string{formatFloat(s.Weight), formatFloat(s.KillingPoint)})
		}

		return rows
	default:
		rows := [][]string{{"field", "value"}}
		if r.KillingPoint != nil {
			rows = append(rows, []string{"killing_point", formatFloat(*r.KillingPoint)})
		}
		if r.InitialRatio != nil {
			rows = append(rows, []string{"initial_ratio", formatFloat(*r.InitialRatio)})
		}
		if r.Outcome != "" {
			rows = append(rows, []string{"outcome", r.Outcome})
		}

		return rows
	}
}

func at(xs []float64, i int) float64 {
	if i < len(xs) {
		return xs[i]
	}

	return 0
}

func formatFloat(x float64) string {
	return fmt.Sprintf("%.6f", x)
}
