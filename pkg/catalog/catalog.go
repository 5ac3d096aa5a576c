// Package catalog holds the fixed, ordered set of migration risk rules.
//
// The catalog is pure data: every rule is evaluated the same way by the
// analyzer (match pattern, emit finding), so there is no per-rule dispatch.
// It is built once at init and never mutated, which makes it safe to share
// across concurrent analyses without locking.
package catalog

import (
	"regexp"
	"strings"

	"github.com/migrasafe/migrasafe/pkg/types"
)

// Rule is one immutable risk-detection rule.
type Rule struct {
	// ID is the unique short code, e.g. "MS001". IDs of the form MS1xx
	// mark Django-migration rules; all lower-numbered IDs are generic SQL.
	ID string

	// Severity classifies the hazard.
	Severity types.Severity

	// Score is the positive risk weight added per match.
	Score int

	// Pattern matches the hazardous statement, case-insensitively.
	Pattern *regexp.Regexp

	// NotFollowedBy, when set, suppresses a match if it matches at the
	// position immediately after the base pattern. This stands in for
	// negative lookahead, which RE2 does not support: the expression is
	// anchored with ^ and applied to the text following the match.
	NotFollowedBy *regexp.Regexp

	// Message describes the hazard for humans.
	Message string

	// Remediation suggests a safer migration strategy.
	Remediation string
}

// djangoRulePrefix tags framework-specific rules by ID convention.
const djangoRulePrefix = "MS1"

// IsDjangoRule reports whether a rule ID names a Django-migration rule.
func IsDjangoRule(id string) bool {
	return strings.HasPrefix(id, djangoRulePrefix)
}

// rules is the full catalog, in evaluation order. Findings are emitted in
// this order, so reordering entries changes report output.
var rules = []*Rule{
	{
		ID:       "MS001",
		Severity: types.Severity_CRITICAL,
		Score:    40,
		Pattern:  regexp.MustCompile(`(?i)ALTER\s+TABLE\s+\S+\s+ADD\s+(?:COLUMN\s+)?\w+\s+\w+[^;]*\bNOT\s+NULL\b`),
		// No DEFAULT in the rest of the same statement. The scan stops at
		// the next semicolon, so a DEFAULT in a later statement does not
		// suppress the finding.
		NotFollowedBy: regexp.MustCompile(`(?i)^[^;]*\bDEFAULT\b`),
		Message:       "ADD NOT NULL column without DEFAULT — fails on non-empty tables",
		Remediation:   "Add DEFAULT value or split: add nullable -> backfill -> SET NOT NULL",
	},
	{
		ID:          "MS002",
		Severity:    types.Severity_HIGH,
		Score:       30,
		Pattern:     regexp.MustCompile(`(?i)ALTER\s+TABLE\s+\S+\s+DROP\s+COLUMN\s+\w+`),
		Message:     "DROP COLUMN is backward-incompatible; running code may still reference it",
		Remediation: "Expand-contract: stop reading -> deploy -> drop in later migration",
	},
	{
		ID:            "MS003",
		Severity:      types.Severity_HIGH,
		Score:         25,
		Pattern:       regexp.MustCompile(`(?i)CREATE\s+(?:UNIQUE\s+)?INDEX\s+`),
		NotFollowedBy: regexp.MustCompile(`(?i)^CONCURRENTLY`),
		Message:       "CREATE INDEX without CONCURRENTLY locks the table for writes",
		Remediation:   "Use CREATE INDEX CONCURRENTLY to avoid blocking writes",
	},
	{
		ID:          "MS004",
		Severity:    types.Severity_HIGH,
		Score:       30,
		Pattern:     regexp.MustCompile(`(?i)ALTER\s+TABLE\s+\S+\s+RENAME\s+COLUMN\s+\w+`),
		Message:     "RENAME COLUMN is backward-incompatible; old code uses old name",
		Remediation: "Add new column -> copy data -> update code -> drop old column",
	},
	{
		ID:          "MS005",
		Severity:    types.Severity_CRITICAL,
		Score:       50,
		Pattern:     regexp.MustCompile(`(?i)DROP\s+TABLE\s+(?:IF\s+EXISTS\s+)?\w+`),
		Message:     "DROP TABLE causes irreversible data loss",
		Remediation: "Ensure all services stopped using table; consider renaming first",
	},
	{
		ID:          "MS006",
		Severity:    types.Severity_HIGH,
		Score:       35,
		Pattern:     regexp.MustCompile(`(?i)ALTER\s+TABLE\s+\S+\s+ALTER\s+COLUMN\s+\w+\s+(?:SET\s+DATA\s+)?TYPE`),
		Message:     "ALTER COLUMN TYPE may cause full table rewrite and lock",
		Remediation: "Use expand-contract or ensure cast is safe (e.g. varchar->text)",
	},
	{
		ID:          "MS007",
		Severity:    types.Severity_MEDIUM,
		Score:       20,
		Pattern:     regexp.MustCompile(`(?i)ALTER\s+TABLE\s+\S+\s+ADD\s+(?:CONSTRAINT\s+\w+\s+)?UNIQUE`),
		Message:     "ADD UNIQUE constraint requires full table scan and lock",
		Remediation: "Create UNIQUE INDEX CONCURRENTLY first, then ADD CONSTRAINT USING INDEX",
	},
	{
		ID:       "MS101",
		Severity: types.Severity_MEDIUM,
		Score:    20,
		// Exactly one bare identifier argument: a two-argument call
		// registers a reverse function and is fine.
		Pattern:     regexp.MustCompile(`(?i)RunPython\s*\(\s*\w+\s*\)`),
		Message:     "RunPython without reverse function makes migration irreversible",
		Remediation: "Add reverse: RunPython(forward, reverse) or RunPython(forward, RunPython.noop)",
	},
}

// Rules returns the full catalog in evaluation order. Callers must not
// modify the returned slice or the rules it points to.
func Rules() []*Rule {
	return rules
}

// ActiveRules returns the rules to evaluate, in catalog order. Django
// rules are removed when includeDjango is false; disabled lists rule IDs
// to exclude regardless of category.
func ActiveRules(includeDjango bool, disabled ...string) []*Rule {
	var active []*Rule
	for _, r := range rules {
		if !includeDjango && IsDjangoRule(r.ID) {
			continue
		}
		if contains(disabled, r.ID) {
			continue
		}
		active = append(active, r)
	}
	return active
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
