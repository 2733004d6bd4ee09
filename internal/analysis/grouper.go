package analysis

import (
	"sort"

	"github.com/credaudit/credaudit/internal/model"
)

// GroupReused partitions entries by exact password value and returns one
// ReuseGroup per password shared by two or more accounts.
//
// The comparison is byte-exact and case-sensitive; no trimming happens
// here beyond what normalization already did. Members keep first-seen
// order within each group. Groups are sorted by descending count;
// equal-count groups retain first-seen password order (stable sort).
//
// This is the only stage that needs an auxiliary index: a hash index
// from password value to member keys, built in one O(n) pass. The index
// is local to this function and is never logged or persisted; only the
// one-way fingerprint of each reused password leaves it.
func GroupReused(entries []model.Entry) []model.ReuseGroup {
	index := make(map[string][]model.AccountKey, len(entries))
	order := make([]string, 0, len(entries))

	for _, e := range entries {
		if _, seen := index[e.Password]; !seen {
			order = append(order, e.Password)
		}
		index[e.Password] = append(index[e.Password], e.Key())
	}

	groups := make([]model.ReuseGroup, 0)
	for _, password := range order {
		accounts := index[password]
		if len(accounts) < 2 {
			continue
		}
		groups = append(groups, model.ReuseGroup{
			Count:       len(accounts),
			Fingerprint: Fingerprint(password),
			Accounts:    accounts,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	return groups
}
