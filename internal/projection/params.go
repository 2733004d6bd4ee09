package projection

import "fmt"

// IssueMode selects which rows the projection keeps.
type IssueMode string

const (
	// IssueAll keeps every row.
	IssueAll IssueMode = "all"

	// IssueReuse keeps only rows whose password is shared by at least
	// two accounts.
	IssueReuse IssueMode = "reuse"

	// IssueWeak keeps only rows that are weak under the live policy.
	IssueWeak IssueMode = "weak"
)

// SortMode selects the display ordering of the projection.
type SortMode string

const (
	// SortRisk orders rows by descending risk score. This is the default.
	SortRisk SortMode = "risk"

	// SortReuse orders rows by descending reuse count.
	SortReuse SortMode = "reuse"

	// SortDomain orders rows lexicographically by derived domain label.
	SortDomain SortMode = "domain"
)

// Policy bounds for the live minimum-length parameter.
// Out-of-range values are clamped or defaulted rather than propagated
// into the length-reason recomputation.
const (
	// DefaultMinLength is the baseline minimum password length.
	DefaultMinLength = 12

	// MaxMinLength caps the live threshold at a value beyond which a
	// length policy stops being meaningful.
	MaxMinLength = 128
)

// ParseIssueMode validates an issue-mode string from the CLI or a config
// file. An empty string means IssueAll.
func ParseIssueMode(s string) (IssueMode, error) {
	switch IssueMode(s) {
	case IssueAll, IssueReuse, IssueWeak:
		return IssueMode(s), nil
	case "":
		return IssueAll, nil
	default:
		return "", fmt.Errorf("invalid issue mode %q (valid: all, reuse, weak)", s)
	}
}

// ParseSortMode validates a sort-mode string from the CLI or a config
// file. An empty string means SortRisk.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortRisk, SortReuse, SortDomain:
		return SortMode(s), nil
	case "":
		return SortRisk, nil
	default:
		return "", fmt.Errorf("invalid sort mode %q (valid: risk, reuse, domain)", s)
	}
}

// Params is the immutable snapshot of projection parameters.
// All five projector inputs (the entries, the report, and these three
// policy parameters plus the search query) are captured together before
// projection begins, so a recomputation never observes a half-updated
// parameter set.
type Params struct {
	// MinLength is the live minimum password length. Values below 1
	// fall back to DefaultMinLength; values above MaxMinLength clamp.
	MinLength int

	// Issues is the issue-mode filter.
	Issues IssueMode

	// Sort is the sort ordering.
	Sort SortMode

	// Search is the free-text query. Matching is case-folded substring
	// search over domain, site, username, and URL.
	Search string
}

// DefaultParams returns the parameter snapshot the UI starts from.
func DefaultParams() Params {
	return Params{
		MinLength: DefaultMinLength,
		Issues:    IssueAll,
		Sort:      SortRisk,
	}
}

// EffectiveMinLength returns the clamped live threshold. Callers that
// display the active policy should use this value, not the raw field.
func (p Params) EffectiveMinLength() int {
	switch {
	case p.MinLength < 1:
		return DefaultMinLength
	case p.MinLength > MaxMinLength:
		return MaxMinLength
	default:
		return p.MinLength
	}
}
