package model

// RiskLevel represents the triage priority of one account.
// It combines the account's password-reuse count and weakness flag into
// a three-level ordinal used for sorting and display.
//
// Design decision: We use iota-based constants rather than string
// constants for efficiency in comparisons and sorting. The String()
// method provides human-readable output when needed.
type RiskLevel int

const (
	// RiskLow indicates an account whose password is neither weak nor
	// shared with any other account.
	RiskLow RiskLevel = iota

	// RiskMedium indicates an account whose password is weak, reused,
	// or both (but not heavily reused and weak at the same time).
	RiskMedium

	// RiskHigh indicates an account whose password is both weak and
	// heavily reused. These are the first candidates for rotation.
	RiskHigh
)

// String returns a human-readable representation of the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}
