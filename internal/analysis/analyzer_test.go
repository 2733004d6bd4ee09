package analysis

import (
	"reflect"
	"testing"

	"github.com/credaudit/credaudit/internal/model"
)

// TestAnalyzeEmpty tests that an empty entry sequence yields an all-zero report.
func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()

	report := Analyze(nil)

	if report.Summary != (model.Summary{}) {
		t.Errorf("expected zero summary, got %+v", report.Summary)
	}
	if len(report.WeakFindings) != 0 {
		t.Errorf("expected no weak findings, got %d", len(report.WeakFindings))
	}
	if len(report.ReuseGroups) != 0 {
		t.Errorf("expected no reuse groups, got %d", len(report.ReuseGroups))
	}
}

// TestAnalyzeSummaryConsistency tests the summary invariants against a
// mixed entry sequence.
func TestAnalyzeSummaryConsistency(t *testing.T) {
	t.Parallel()

	entries := []model.Entry{
		{Site: "github.com", Username: "alice", Password: "Tr0ub4dor&Sk1es!"},
		{Site: "gitlab.com", Username: "alice", Password: "hunter2"},
		{Site: "example.com", Username: "bob", Password: "hunter2"},
		{Site: "forum", Username: "carol", Password: "hunter2"},
		{Site: "bank", Username: "dave", Password: "qwertyuiop123"},
	}

	report := Analyze(entries)

	if report.Summary.Total != len(entries) {
		t.Errorf("expected total %d, got %d", len(entries), report.Summary.Total)
	}
	if report.Summary.Weak != len(report.WeakFindings) {
		t.Errorf("summary.weak %d != len(weakFindings) %d",
			report.Summary.Weak, len(report.WeakFindings))
	}
	if report.Summary.ReusedGroups != len(report.ReuseGroups) {
		t.Errorf("summary.reusedGroups %d != len(reuseGroups) %d",
			report.Summary.ReusedGroups, len(report.ReuseGroups))
	}

	sum := 0
	for _, g := range report.ReuseGroups {
		sum += g.Count
		if g.Count != len(g.Accounts) {
			t.Errorf("group count %d != len(accounts) %d", g.Count, len(g.Accounts))
		}
	}
	if report.Summary.ReusedAccounts != sum {
		t.Errorf("summary.reusedAccounts %d != sum of group counts %d",
			report.Summary.ReusedAccounts, sum)
	}
}

// TestAnalyzeWeakFindingIndexes tests that finding indexes point back at
// the analyzed sequence and strong entries are excluded entirely.
func TestAnalyzeWeakFindingIndexes(t *testing.T) {
	t.Parallel()

	entries := []model.Entry{
		{Site: "a", Username: "u1", Password: "Tr0ub4dor&Sk1es!"},
		{Site: "b", Username: "u2", Password: "weak"},
		{Site: "c", Username: "u3", Password: "V3ry.Strong-Indeed"},
		{Site: "d", Username: "u4", Password: "password1234"},
	}

	report := Analyze(entries)

	if len(report.WeakFindings) != 2 {
		t.Fatalf("expected 2 weak findings, got %d", len(report.WeakFindings))
	}
	if report.WeakFindings[0].Index != 1 || report.WeakFindings[0].Site != "b" {
		t.Errorf("unexpected first finding: %+v", report.WeakFindings[0])
	}
	if report.WeakFindings[1].Index != 3 || report.WeakFindings[1].Site != "d" {
		t.Errorf("unexpected second finding: %+v", report.WeakFindings[1])
	}
}

// TestAnalyzeIdempotent tests that analyzing the same sequence twice
// yields identical reports (pure function, no hidden state).
func TestAnalyzeIdempotent(t *testing.T) {
	t.Parallel()

	entries := []model.Entry{
		{Site: "a", Username: "u1", Password: "hunter2"},
		{Site: "b", Username: "u2", Password: "hunter2"},
		{Site: "c", Username: "u3", Password: "Tr0ub4dor&Sk1es!"},
	}

	first := Analyze(entries)
	second := Analyze(entries)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical reports from repeated analysis")
	}
}
