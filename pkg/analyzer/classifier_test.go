package analyzer

import "testing"

func TestRiskLabel(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{0, "LOW"},
		{14, "LOW"},
		{15, "MEDIUM"},
		{29, "MEDIUM"},
		{30, "HIGH"},
		{49, "HIGH"},
		{50, "CRITICAL"},
		{1000, "CRITICAL"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := RiskLabel(tt.score)
			if got != tt.expected {
				t.Errorf("RiskLabel(%d) = %v, want %v", tt.score, got, tt.expected)
			}
		})
	}
}
