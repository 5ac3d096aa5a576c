package types

import (
	"fmt"
)

// Severity represents how dangerous a detected migration operation is.
// Severities are ordered: LOW < MEDIUM < HIGH < CRITICAL.
type Severity int32

const (
	Severity_SEVERITY_UNSPECIFIED Severity = 0
	Severity_LOW                  Severity = 1
	Severity_MEDIUM               Severity = 2
	Severity_HIGH                 Severity = 3
	Severity_CRITICAL             Severity = 4
)

func (s Severity) String() string {
	switch s {
	case Severity_LOW:
		return "LOW"
	case Severity_MEDIUM:
		return "MEDIUM"
	case Severity_HIGH:
		return "HIGH"
	case Severity_CRITICAL:
		return "CRITICAL"
	default:
		return "SEVERITY_UNSPECIFIED"
	}
}

// MarshalJSON encodes the severity as its label, matching the report format.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// MarshalYAML encodes the severity as its label.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Finding is one concrete hazard detected in a migration script.
//
// A Finding ties a catalog rule to a location in the analyzed text. The
// rule's severity, score, message and remediation are copied at detection
// time, so a Finding is a self-contained value with no reference back to
// the catalog.
type Finding struct {
	// RuleID is the short code of the rule that fired (e.g. "MS001").
	RuleID string

	// Severity is the rule's severity, copied from the catalog.
	Severity Severity

	// Score is the rule's risk weight, always positive.
	Score int

	// Line is the 1-based line number where the match starts.
	Line int

	// Message describes the hazard.
	Message string

	// Snippet is the matched text, whitespace-trimmed and truncated
	// to at most 80 characters.
	Snippet string

	// Remediation suggests a safer way to apply the change.
	Remediation string
}

// AnalysisResult holds all findings for one analyzed input.
//
// Findings are ordered by rule-catalog order, and within one rule by order
// of appearance in the text.
type AnalysisResult struct {
	// Source identifies the analyzed input: a file path, or a
	// placeholder such as "<input>" for ad-hoc text.
	Source string

	// Findings contains all detected hazards. Empty if the input is safe.
	Findings []Finding
}

// TotalScore returns the sum of all finding scores. It is 0 exactly when
// the result has no findings.
func (r *AnalysisResult) TotalScore() int {
	total := 0
	for _, f := range r.Findings {
		total += f.Score
	}
	return total
}

// HasFindings returns true if the analysis detected at least one hazard.
func (r *AnalysisResult) HasFindings() bool {
	return len(r.Findings) > 0
}

// String returns a human-readable one-line summary.
//
// Example output:
//
//	migrations/0042_drop_legacy.sql: 2 finding(s), risk score 75
func (r *AnalysisResult) String() string {
	return fmt.Sprintf("%s: %d finding(s), risk score %d",
		r.Source, len(r.Findings), r.TotalScore())
}

// BatchResult aggregates the results of several inputs analyzed in one
// invocation, in input order.
//
// Aggregation is pure concatenation: findings are not deduplicated across
// files and the batch score is the sum of the per-file scores.
type BatchResult struct {
	Results []*AnalysisResult
}

// NewBatchResult builds a batch from per-input results, preserving order.
func NewBatchResult(results ...*AnalysisResult) *BatchResult {
	return &BatchResult{Results: results}
}

// Findings returns every finding in the batch, concatenated in input order.
func (b *BatchResult) Findings() []Finding {
	var all []Finding
	for _, r := range b.Results {
		all = append(all, r.Findings...)
	}
	return all
}

// TotalScore returns the sum of all per-input scores.
func (b *BatchResult) TotalScore() int {
	total := 0
	for _, r := range b.Results {
		total += r.TotalScore()
	}
	return total
}

// Passed reports whether the batch score is below the blocking threshold.
func (b *BatchResult) Passed(threshold int) bool {
	return b.TotalScore() < threshold
}
