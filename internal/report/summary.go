package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

// Summary is the one-line view of a stored run used by history listings.
type Summary struct {
	RunID        string    `json:"run_id" yaml:"run_id"`
	Kind         Kind      `json:"kind" yaml:"kind"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	Weights      []float64 `json:"weights" yaml:"weights"`
	KillingPoint *float64  `json:"killing_point,omitempty" yaml:"killing_point,omitempty"`
}

// Summarize extracts the history view of r.
func Summarize(r Report) Summary {
	return Summary{
		RunID:        r.RunID,
		Kind:         r.Kind,
		CreatedAt:    r.CreatedAt,
		Weights:      r.Weights,
		KillingPoint: r.KillingPoint,
	}
}

// RenderSummaries writes a history listing in the given format.
func RenderSummaries(w io.Writer, ss []Summary, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(ss)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ss); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}

		return enc.Close()
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(summaryRows(ss)); err != nil {
			return fmt.Errorf("report: csv: %w", err)
		}

		return nil
	case FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, row := range summaryRows(ss) {
			for i, cell := range row {
				if i > 0 {
					fmt.Fprint(tw, "\t")
				}
				fmt.Fprint(tw, cell)
			}
			fmt.Fprintln(tw)
		}

		return tw.Flush()
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

func summaryRows(ss []Summary) [][]string {
	rows := [][]string{{"run_id", "kind", "created_at", "weights", "killing_point"}}
	for _, s := range ss {
		k := "-"
		if s.KillingPoint != nil {
			k = formatFloat(*s.KillingPoint)
		}
		rows = append(rows, []string{
			s.RunID,
			string(s.Kind),
			s.CreatedAt.Format(time.RFC3339),
			formatWeights(s.Weights),
			k,
		})
	}

	return rows
}
