package model

import "testing"

// TestNewReport tests that an empty report has non-nil slices and zero counts.
func TestNewReport(t *testing.T) {
	t.Parallel()

	r := NewReport()

	if r.WeakFindings == nil {
		t.Error("expected non-nil WeakFindings")
	}
	if r.ReuseGroups == nil {
		t.Error("expected non-nil ReuseGroups")
	}
	if r.Summary != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", r.Summary)
	}
}

// TestEntryKey tests the account key derivation.
func TestEntryKey(t *testing.T) {
	t.Parallel()

	e := Entry{Site: "GitHub", Username: "alice", Password: "hunter2"}
	want := AccountKey{Site: "GitHub", Username: "alice"}

	if e.Key() != want {
		t.Errorf("got %+v, expected %+v", e.Key(), want)
	}
}

// TestAccountKeyEquality tests that keys compare structurally, so fields
// containing a would-be separator character cannot collide.
func TestAccountKeyEquality(t *testing.T) {
	t.Parallel()

	a := AccountKey{Site: "a|b", Username: "c"}
	b := AccountKey{Site: "a", Username: "b|c"}

	if a == b {
		t.Error("expected keys with shifted field boundaries to differ")
	}
}
