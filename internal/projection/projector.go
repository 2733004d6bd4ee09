package projection

import (
	"sort"
	"strings"

	"github.com/credaudit/credaudit/internal/analysis"
	"github.com/credaudit/credaudit/internal/model"
	"golang.org/x/text/cases"
)

// Project computes the display sequence from the entries, the static
// report, and the live parameter snapshot.
//
// The report's character-class reasons are reused as cached facts; only
// the length reason is re-derived against the live threshold. This keeps
// parameter changes cheap without mutating the baseline classification.
//
// All lookups are keyed by AccountKey. When two entries share a key with
// different passwords, last-write-wins applies uniformly to every lookup
// (reuse count, password length, baseline reasons). See DESIGN.md for
// the duplicate-key policy.
func Project(entries []model.Entry, report *model.Report, p Params) []model.ResultRow {
	if report == nil {
		report = model.NewReport()
	}
	minLength := p.EffectiveMinLength()

	// Step 1: reuse-count lookup. Accounts outside every group
	// implicitly have reuse count 0.
	reuseCount := make(map[model.AccountKey]int, len(entries))
	for _, g := range report.ReuseGroups {
		for _, key := range g.Accounts {
			reuseCount[key] = g.Count
		}
	}

	// Step 2: policy-adjusted weak-reasons lookup. Strip the baseline
	// length reason, then prepend a live one when the entry's actual
	// password length is nonzero and below the live threshold. Keys
	// whose adjusted reasons come out empty are dropped: the account is
	// not weak under the live policy.
	passwordLength := make(map[model.AccountKey]int, len(entries))
	for _, e := range entries {
		passwordLength[e.Key()] = analysis.PasswordLength(e.Password)
	}

	baseline := make(map[model.AccountKey][]string, len(report.WeakFindings))
	for _, f := range report.WeakFindings {
		baseline[model.AccountKey{Site: f.Site, Username: f.Username}] = f.Reasons
	}

	adjusted := make(map[model.AccountKey][]string, len(baseline))
	for key, length := range passwordLength {
		reasons := adjustReasons(baseline[key], length, minLength)
		if len(reasons) > 0 {
			adjusted[key] = reasons
		}
	}

	// Step 3: candidate rows in entry order.
	rows := make([]model.ResultRow, 0, len(entries))
	for _, e := range entries {
		key := e.Key()
		reasons := adjusted[key]
		risk := analysis.Level(reuseCount[key], len(reasons) > 0)
		rows = append(rows, model.ResultRow{
			Site:       e.Site,
			Username:   e.Username,
			URL:        e.URL,
			Domain:     DeriveDomain(e.Site),
			ReuseCount: reuseCount[key],
			Reasons:    reasons,
			IsWeak:     len(reasons) > 0,
			Risk:       risk,
			RiskText:   risk.String(),
		})
	}

	// Steps 4-5: issue-mode and search filters.
	rows = filterIssues(rows, p.Issues)
	rows = filterSearch(rows, p.Search)

	// Step 6: sort. The risk score is recomputed from each row's
	// current reuse count and weakness flag so the ordering always
	// reflects the live policy.
	sortRows(rows, p.Sort)

	return rows
}

// adjustReasons derives the live-policy reasons from the cached baseline.
func adjustReasons(baseline []string, passwordLength, minLength int) []string {
	var reasons []string
	if passwordLength > 0 && passwordLength < minLength {
		reasons = append(reasons, analysis.LengthReason(minLength))
	}
	for _, r := range baseline {
		if analysis.IsLengthReason(r) {
			continue
		}
		reasons = append(reasons, r)
	}
	return reasons
}

// filterIssues applies the issue-mode filter.
func filterIssues(rows []model.ResultRow, mode IssueMode) []model.ResultRow {
	if mode == IssueAll || mode == "" {
		return rows
	}
	kept := rows[:0]
	for _, row := range rows {
		switch mode {
		case IssueReuse:
			if row.ReuseCount >= 2 {
				kept = append(kept, row)
			}
		case IssueWeak:
			if row.IsWeak {
				kept = append(kept, row)
			}
		}
	}
	return kept
}

// caseFolder performs Unicode case folding for search matching.
var caseFolder = cases.Fold()

// filterSearch keeps rows whose folded domain, site, username, or URL
// contains the folded query as a substring. An empty or whitespace-only
// query keeps everything.
func filterSearch(rows []model.ResultRow, query string) []model.ResultRow {
	query = strings.TrimSpace(query)
	if query == "" {
		return rows
	}
	folded := caseFolder.String(query)

	kept := rows[:0]
	for _, row := range rows {
		haystack := caseFolder.String(row.Domain + " " + row.Site + " " + row.Username + " " + row.URL)
		if strings.Contains(haystack, folded) {
			kept = append(kept, row)
		}
	}
	return kept
}

// sortRows orders rows according to the sort mode. All orderings are
// stable so equal rows keep entry order.
func sortRows(rows []model.ResultRow, mode SortMode) {
	switch mode {
	case SortDomain:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Domain < rows[j].Domain
		})
	case SortReuse:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].ReuseCount > rows[j].ReuseCount
		})
	default: // SortRisk
		sort.SliceStable(rows, func(i, j int) bool {
			return analysis.Score(rows[i].ReuseCount, rows[i].IsWeak) >
				analysis.Score(rows[j].ReuseCount, rows[j].IsWeak)
		})
	}
}
