package analyzer

// Risk label boundaries, inclusive lower bounds evaluated highest first.
const (
	criticalThreshold = 50
	highThreshold     = 30
	mediumThreshold   = 15
)

// RiskLabel maps a total risk score to a coarse severity label.
//
// The mapping is total over non-negative scores and has no side effects:
// >= 50 CRITICAL, >= 30 HIGH, >= 15 MEDIUM, otherwise LOW.
func RiskLabel(score int) string {
	switch {
	case score >= criticalThreshold:
		return "CRITICAL"
	case score >= highThreshold:
		return "HIGH"
	case score >= mediumThreshold:
		return "MEDIUM"
	default:
		return "LOW"
	}
}
