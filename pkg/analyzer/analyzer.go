// Package analyzer scans migration script text against the rule catalog
// and produces scored findings.
//
// # Quick Start
//
//	result := analyzer.Analyze("DROP TABLE old_users;")
//	fmt.Println(result.TotalScore())           // 50
//	fmt.Println(analyzer.RiskLabel(result.TotalScore())) // CRITICAL
//
// # Analyzing Files
//
//	result, err := analyzer.AnalyzeFile("migrations/0042_drop_legacy.sql")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Analysis is pure and stateless: the only shared state is the read-only
// rule catalog, so independent inputs may be analyzed concurrently (e.g.
// one goroutine per file) without locking.
package analyzer

import (
	"os"
	"strings"

	"github.com/migrasafe/migrasafe/pkg/catalog"
	"github.com/migrasafe/migrasafe/pkg/types"
	"github.com/pkg/errors"
)

// DefaultSource is the source identifier recorded when analyzing ad-hoc
// text rather than a file.
const DefaultSource = "<input>"

// snippetMaxLen bounds the matched-text excerpt kept on each finding.
const snippetMaxLen = 80

// Analyze scans text against the active rules and returns the findings.
//
// It never fails: malformed, empty, binary-garbled or arbitrarily large
// input yields fewer or zero findings, never an error. Findings are
// ordered by catalog order, then by position in the text within one rule.
func Analyze(text string, opts ...Option) *types.AnalysisResult {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	result := &types.AnalysisResult{Source: options.source}
	for _, rule := range catalog.ActiveRules(options.includeDjango, options.disabledRules...) {
		result.Findings = append(result.Findings, matchRule(rule, text)...)
	}
	return result
}

// AnalyzeFile reads a migration file and analyzes its contents.
//
// The source identifier on the result is the given path. Read errors are
// returned wrapped with the path and are never retried or masked.
func AnalyzeFile(path string, opts ...Option) (*types.AnalysisResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read migration file: %s", path)
	}
	opts = append([]Option{WithSource(path)}, opts...)
	return Analyze(string(content), opts...), nil
}

// matchRule finds every non-overlapping occurrence of the rule's pattern
// and emits one finding per occurrence that survives the rule's
// NotFollowedBy guard.
func matchRule(rule *catalog.Rule, text string) []types.Finding {
	var findings []types.Finding
	for _, loc := range rule.Pattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if rule.NotFollowedBy != nil && rule.NotFollowedBy.MatchString(text[end:]) {
			continue
		}
		findings = append(findings, types.Finding{
			RuleID:      rule.ID,
			Severity:    rule.Severity,
			Score:       rule.Score,
			Line:        1 + strings.Count(text[:start], "\n"),
			Message:     rule.Message,
			Snippet:     truncate(strings.TrimSpace(text[start:end]), snippetMaxLen),
			Remediation: rule.Remediation,
		})
	}
	return findings
}

// truncate caps s at max characters, counting runes so a multi-byte
// character is never split.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
