package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects a renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// ErrUnknownFormat indicates an output format other than table, json, yaml or csv.
var ErrUnknownFormat = errors.New("report: unknown output format")

// ParseFormat validates a user-supplied format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Render writes r to w in the given format.
func Render(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatTable:
		return renderTable(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}

		return enc.Close()
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(r.Rows()); err != nil {
			return fmt.Errorf("report: csv: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

func renderTable(w io.Writer, r Report) error {
	fmt.Fprintf(w, "run %s  %s  weights %s\n", r.RunID, r.Kind, formatWeights(r.Weights))
	if r.Kind == KindSweep {
		fmt.Fprintf(w, "swept group size %d\n", r.GroupSize)
	}
	if r.Kind == KindBracket && r.KillingPoint != nil && r.Bracket != nil {
		fmt.Fprintf(w, "killing point %s  delta %g\n", formatFloat(*r.KillingPoint), r.Bracket.Delta)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range r.Rows() {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

func formatWeights(ws []float64) string {
	parts := make([]string, len(ws))
	for i, x := range ws {
		parts[i] = fmt.Sprintf("%g", x)
	}

	return "[" + strings.Join(parts, ",") + "]"
}
