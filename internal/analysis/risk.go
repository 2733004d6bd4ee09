package analysis

import "github.com/credaudit/credaudit/internal/model"

// Risk scoring weights and thresholds.
const (
	// reuseWeight is the score contribution per account sharing the password.
	reuseWeight = 10

	// weakWeight is the flat score contribution of a weak password.
	weakWeight = 15

	// reuseThreshold is the count at which a password counts as reused.
	reuseThreshold = 2

	// heavyReuseThreshold is the count at which reuse alone dominates
	// the risk picture.
	heavyReuseThreshold = 10
)

// Score computes the numeric risk score for an account from its reuse
// count and weakness flag. The score exists strictly for sort ordering
// and is never displayed.
func Score(reuseCount int, isWeak bool) int {
	score := reuseCount * reuseWeight
	if isWeak {
		score += weakWeight
	}
	return score
}

// Level maps a reuse count and weakness flag to a triage level.
// First match wins:
//   - heavily reused and weak          -> HIGH
//   - weak, or reused at all           -> MEDIUM
//   - unique and strong                -> LOW
func Level(reuseCount int, isWeak bool) model.RiskLevel {
	switch {
	case reuseCount >= heavyReuseThreshold && isWeak:
		return model.RiskHigh
	case isWeak || reuseCount >= reuseThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
