package analysis

import "github.com/credaudit/credaudit/internal/model"

// Analyze runs the full classification pipeline over an entry sequence
// and returns the resulting Report.
//
// Analyze is pure: it performs no I/O, mutates nothing it is given, and
// calling it twice on the same entries yields identical Reports. An
// empty (or nil) entry sequence yields a Report with all summary counts
// zero and empty finding/group slices.
func Analyze(entries []model.Entry) *model.Report {
	report := model.NewReport()
	report.Summary.Total = len(entries)

	for i, e := range entries {
		reasons := Classify(e.Password)
		if len(reasons) == 0 {
			continue
		}
		report.WeakFindings = append(report.WeakFindings, model.WeakFinding{
			Index:    i,
			Site:     e.Site,
			Username: e.Username,
			Reasons:  reasons,
		})
	}
	report.Summary.Weak = len(report.WeakFindings)

	report.ReuseGroups = GroupReused(entries)
	report.Summary.ReusedGroups = len(report.ReuseGroups)
	for _, g := range report.ReuseGroups {
		report.Summary.ReusedAccounts += g.Count
	}

	return report
}
