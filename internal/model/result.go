package model

import "time"

// ResultRow is the per-entry triage view produced by the projector.
// It joins the entry's reuse count with its policy-adjusted weak reasons
// and the derived risk level. Rows are a projection, never persisted.
type ResultRow struct {
	// Site is the entry's site name.
	Site string `json:"site"`

	// Username is the entry's login identifier.
	Username string `json:"username"`

	// URL is the entry's origin URL, if any.
	URL string `json:"url,omitempty"`

	// Domain is the derived domain label used for sorting and search.
	// Display/sort key only, not identity.
	Domain string `json:"domain"`

	// ReuseCount is how many accounts share this entry's password.
	// Zero when the password is unique.
	ReuseCount int `json:"reuse_count"`

	// Reasons lists the violated rules under the live policy, in
	// classifier order with the policy-derived length reason first.
	// Empty when the entry is not weak under the live policy.
	Reasons []string `json:"reasons,omitempty"`

	// IsWeak is true when Reasons is non-empty.
	IsWeak bool `json:"is_weak"`

	// Risk is the derived triage level.
	Risk RiskLevel `json:"risk"`

	// RiskText is the human-readable form of Risk.
	RiskText string `json:"risk_text"`
}

// View records the projection parameters an AuditResult was produced
// under, for display and for reproducing the view.
type View struct {
	// MinLength is the live minimum password length policy.
	MinLength int `json:"min_length"`

	// Issues is the issue-mode filter ("all", "reuse", or "weak").
	Issues string `json:"issues"`

	// Sort is the sort mode ("risk", "reuse", or "domain").
	Sort string `json:"sort"`

	// Search is the free-text search query, if any.
	Search string `json:"search,omitempty"`
}

// AuditResult is the complete audit output handed to report writers.
// It wraps the pure Report with the projected triage rows and display
// metadata (which is why timestamps live here rather than in Report).
type AuditResult struct {
	// GeneratedAt is when the audit ran. Display only.
	GeneratedAt time.Time `json:"generated_at"`

	// Sources lists the input files the entries came from.
	Sources []string `json:"sources,omitempty"`

	// View records the projection parameters used for Rows.
	View View `json:"view"`

	// Report is the static analysis result.
	Report *Report `json:"report"`

	// Rows is the projected triage sequence in display order.
	Rows []ResultRow `json:"rows"`
}
