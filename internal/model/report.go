package model

// Report is the static analysis result for one entry sequence.
// It is a pure function of the entries: the same input always produces
// the same Report, so the struct deliberately carries no timestamps or
// other environment-dependent fields. Display metadata lives in
// AuditResult instead.
type Report struct {
	// Summary contains the headline counts.
	Summary Summary `json:"summary"`

	// WeakFindings lists entries violating at least one strength rule,
	// in entry order. Entries with no violations do not appear.
	WeakFindings []WeakFinding `json:"weak_findings"`

	// ReuseGroups lists groups of accounts sharing one exact password
	// value, sorted by descending size. Equal-count groups retain
	// first-seen password order.
	ReuseGroups []ReuseGroup `json:"reuse_groups"`
}

// Summary contains the headline counts of a Report.
type Summary struct {
	// Total is the number of analyzed entries.
	Total int `json:"total"`

	// Weak is the number of entries with at least one violated rule.
	// Equals len(Report.WeakFindings).
	Weak int `json:"weak"`

	// ReusedGroups is the number of distinct reused password values.
	// Equals len(Report.ReuseGroups).
	ReusedGroups int `json:"reused_groups"`

	// ReusedAccounts is the number of accounts involved in any reuse
	// group. Equals the sum of all group counts.
	ReusedAccounts int `json:"reused_accounts"`
}

// WeakFinding flags one entry as violating one or more strength rules.
type WeakFinding struct {
	// Index is the entry's position in the analyzed sequence.
	Index int `json:"index"`

	// Site is the entry's site name.
	Site string `json:"site"`

	// Username is the entry's login identifier.
	Username string `json:"username"`

	// Reasons lists the violated rules in classifier order
	// (length, lowercase, uppercase, digit, symbol, common pattern).
	// The order is a contract: consumers may display only the first
	// reason.
	Reasons []string `json:"reasons"`
}

// ReuseGroup is the set of accounts sharing one exact password value.
// Groups always have at least two members.
type ReuseGroup struct {
	// Count is the number of accounts in the group.
	// Always equals len(Accounts).
	Count int `json:"count"`

	// Fingerprint is a short one-way fingerprint of the shared password,
	// so reports can refer to a group without disclosing the secret.
	Fingerprint string `json:"fingerprint,omitempty"`

	// Accounts lists the member accounts in first-seen order.
	Accounts []AccountKey `json:"accounts"`
}

// NewReport creates an empty Report with non-nil slices.
// An empty entry sequence yields exactly this value.
func NewReport() *Report {
	return &Report{
		WeakFindings: make([]WeakFinding, 0),
		ReuseGroups:  make([]ReuseGroup, 0),
	}
}
