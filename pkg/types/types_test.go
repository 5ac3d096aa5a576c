package types

import (
	"encoding/json"
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{Severity_LOW, "LOW"},
		{Severity_MEDIUM, "MEDIUM"},
		{Severity_HIGH, "HIGH"},
		{Severity_CRITICAL, "CRITICAL"},
		{Severity_SEVERITY_UNSPECIFIED, "SEVERITY_UNSPECIFIED"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.expected {
				t.Errorf("String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(Severity_LOW < Severity_MEDIUM && Severity_MEDIUM < Severity_HIGH && Severity_HIGH < Severity_CRITICAL) {
		t.Error("severities must be ordered LOW < MEDIUM < HIGH < CRITICAL")
	}
}

func TestSeverityMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Severity_HIGH)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"HIGH"` {
		t.Errorf("Marshal() = %s, want %q", data, "HIGH")
	}
}

func TestAnalysisResultTotalScore(t *testing.T) {
	tests := []struct {
		name     string
		result   *AnalysisResult
		expected int
	}{
		{
			name:     "no findings",
			result:   &AnalysisResult{Source: "<input>"},
			expected: 0,
		},
		{
			name: "single finding",
			result: &AnalysisResult{
				Findings: []Finding{{RuleID: "MS005", Score: 50}},
			},
			expected: 50,
		},
		{
			name: "multiple findings accumulate",
			result: &AnalysisResult{
				Findings: []Finding{
					{RuleID: "MS002", Score: 30},
					{RuleID: "MS003", Score: 25},
					{RuleID: "MS005", Score: 50},
				},
			},
			expected: 105,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.TotalScore(); got != tt.expected {
				t.Errorf("TotalScore() = %v, want %v", got, tt.expected)
			}
			hasFindings := tt.expected > 0
			if got := tt.result.HasFindings(); got != hasFindings {
				t.Errorf("HasFindings() = %v, want %v", got, hasFindings)
			}
		})
	}
}

func TestAnalysisResultString(t *testing.T) {
	result := &AnalysisResult{
		Source:   "migrations/0042.sql",
		Findings: []Finding{{RuleID: "MS005", Score: 50}},
	}
	expected := "migrations/0042.sql: 1 finding(s), risk score 50"
	if got := result.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}

func TestBatchResult(t *testing.T) {
	first := &AnalysisResult{
		Source: "a.sql",
		Findings: []Finding{
			{RuleID: "MS002", Score: 30},
		},
	}
	second := &AnalysisResult{
		Source: "b.sql",
		Findings: []Finding{
			{RuleID: "MS005", Score: 50},
			{RuleID: "MS003", Score: 25},
		},
	}
	batch := NewBatchResult(first, second)

	t.Run("score sums across inputs", func(t *testing.T) {
		if got := batch.TotalScore(); got != 105 {
			t.Errorf("TotalScore() = %v, want 105", got)
		}
	})

	t.Run("findings concatenate in input order", func(t *testing.T) {
		findings := batch.Findings()
		if len(findings) != 3 {
			t.Fatalf("Findings() returned %d findings, want 3", len(findings))
		}
		wantOrder := []string{"MS002", "MS005", "MS003"}
		for i, want := range wantOrder {
			if findings[i].RuleID != want {
				t.Errorf("Findings()[%d].RuleID = %v, want %v", i, findings[i].RuleID, want)
			}
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		empty := NewBatchResult()
		if got := empty.TotalScore(); got != 0 {
			t.Errorf("TotalScore() = %v, want 0", got)
		}
		if findings := empty.Findings(); len(findings) != 0 {
			t.Errorf("Findings() returned %d findings, want 0", len(findings))
		}
	})
}

func TestBatchResultPassed(t *testing.T) {
	batch := NewBatchResult(&AnalysisResult{
		Findings: []Finding{{RuleID: "MS002", Score: 30}},
	})

	tests := []struct {
		name      string
		threshold int
		expected  bool
	}{
		{"below threshold", 31, true},
		{"at threshold blocks", 30, false},
		{"above threshold blocks", 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := batch.Passed(tt.threshold); got != tt.expected {
				t.Errorf("Passed(%d) = %v, want %v", tt.threshold, got, tt.expected)
			}
		})
	}
}
