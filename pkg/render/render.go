// Package render turns analysis results into human or machine readable
// reports: a colored table for terminals, JSON or YAML for pipelines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/migrasafe/migrasafe/pkg/analyzer"
	"github.com/migrasafe/migrasafe/pkg/types"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// finding is the wire shape of one finding in JSON/YAML reports.
type finding struct {
	Rule        string `json:"rule" yaml:"rule"`
	Severity    string `json:"severity" yaml:"severity"`
	Line        int    `json:"line" yaml:"line"`
	Message     string `json:"message" yaml:"message"`
	Score       int    `json:"score" yaml:"score"`
	Remediation string `json:"remediation" yaml:"remediation"`
}

// report is the wire shape of a whole batch report.
type report struct {
	Findings   []finding `json:"findings" yaml:"findings"`
	TotalScore int       `json:"total_score" yaml:"total_score"`
	Passed     bool      `json:"passed" yaml:"passed"`
}

func buildReport(batch *types.BatchResult, threshold int) report {
	r := report{
		Findings:   []finding{},
		TotalScore: batch.TotalScore(),
		Passed:     batch.Passed(threshold),
	}
	for _, f := range batch.Findings() {
		r.Findings = append(r.Findings, finding{
			Rule:        f.RuleID,
			Severity:    f.Severity.String(),
			Line:        f.Line,
			Message:     f.Message,
			Score:       f.Score,
			Remediation: f.Remediation,
		})
	}
	return r
}

// Render writes the batch report to w in the requested format: "table",
// "json" or "yaml".
func Render(w io.Writer, format string, batch *types.BatchResult, threshold int) error {
	switch format {
	case "json":
		return JSON(w, batch, threshold)
	case "yaml":
		return YAML(w, batch, threshold)
	case "table", "text":
		return Table(w, batch, threshold)
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, batch *types.BatchResult, threshold int) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildReport(batch, threshold))
}

// YAML writes the report as YAML.
func YAML(w io.Writer, batch *types.BatchResult, threshold int) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(buildReport(batch, threshold))
}

// severityColors maps risk labels to their terminal color.
var severityColors = map[string]*color.Color{
	"CRITICAL": color.New(color.FgRed, color.Bold),
	"HIGH":     color.New(color.FgYellow),
	"MEDIUM":   color.New(color.FgBlue),
	"LOW":      color.New(color.FgGreen),
}

func colorize(label string) string {
	if c, ok := severityColors[label]; ok {
		return c.Sprint(label)
	}
	return label
}

// Table writes a human-readable report: one row per finding, the
// remediation list, and a risk score footer with the pass/block verdict.
func Table(w io.Writer, batch *types.BatchResult, threshold int) error {
	findings := batch.Findings()
	if len(findings) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RULE\tSEVERITY\tLN\tISSUE\tPTS")
		for _, f := range findings {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\n",
				f.RuleID, colorize(f.Severity.String()), f.Line, f.Message, f.Score)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Remediations:")
		for _, f := range findings {
			fmt.Fprintf(w, "  %s: %s\n", f.RuleID, f.Remediation)
		}
	}

	total := batch.TotalScore()
	label := analyzer.RiskLabel(total)
	score := fmt.Sprint(total)
	if c, ok := severityColors[label]; ok {
		score = c.Sprint(score)
	}
	fmt.Fprintf(w, "\nRisk Score: %s (%s) | Threshold: %d\n", score, label, threshold)
	if batch.Passed(threshold) {
		fmt.Fprintf(w, "%s — score %d < %d\n", color.GreenString("✓ PASSED"), total, threshold)
	} else {
		fmt.Fprintf(w, "%s — score %d >= %d\n", color.RedString("✗ BLOCKED"), total, threshold)
	}
	return nil
}
