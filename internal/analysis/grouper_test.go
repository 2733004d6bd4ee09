package analysis

import (
	"reflect"
	"testing"

	"github.com/credaudit/credaudit/internal/model"
)

// TestGroupReused tests reuse-group detection and ordering.
func TestGroupReused(t *testing.T) {
	t.Parallel()

	t.Run("two entries with identical password form one group", func(t *testing.T) {
		t.Parallel()

		entries := []model.Entry{
			{Site: "a", Username: "u1", Password: "shared"},
			{Site: "b", Username: "u2", Password: "unique"},
			{Site: "c", Username: "u3", Password: "shared"},
		}

		groups := GroupReused(entries)

		if len(groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(groups))
		}
		if groups[0].Count != 2 {
			t.Errorf("expected count 2, got %d", groups[0].Count)
		}
		expected := []model.AccountKey{
			{Site: "a", Username: "u1"},
			{Site: "c", Username: "u3"},
		}
		if !reflect.DeepEqual(groups[0].Accounts, expected) {
			t.Errorf("expected members in first-seen order %v, got %v", expected, groups[0].Accounts)
		}
	})

	t.Run("groups sorted by descending count", func(t *testing.T) {
		t.Parallel()

		entries := []model.Entry{
			{Site: "a", Username: "u", Password: "pair"},
			{Site: "b", Username: "u", Password: "pair"},
			{Site: "c", Username: "u", Password: "trio"},
			{Site: "d", Username: "u", Password: "trio"},
			{Site: "e", Username: "u", Password: "trio"},
		}

		groups := GroupReused(entries)

		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].Count != 3 || groups[1].Count != 2 {
			t.Errorf("expected counts [3 2], got [%d %d]", groups[0].Count, groups[1].Count)
		}
	})

	t.Run("equal counts keep first-seen password order", func(t *testing.T) {
		t.Parallel()

		entries := []model.Entry{
			{Site: "a", Username: "u", Password: "first"},
			{Site: "b", Username: "u", Password: "second"},
			{Site: "c", Username: "u", Password: "first"},
			{Site: "d", Username: "u", Password: "second"},
		}

		groups := GroupReused(entries)

		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].Accounts[0].Site != "a" {
			t.Errorf("expected group of first-seen password first, got member %+v", groups[0].Accounts[0])
		}
		if groups[1].Accounts[0].Site != "b" {
			t.Errorf("expected group of second-seen password second, got member %+v", groups[1].Accounts[0])
		}
	})

	t.Run("comparison is case-sensitive and exact", func(t *testing.T) {
		t.Parallel()

		entries := []model.Entry{
			{Site: "a", Username: "u", Password: "Secret"},
			{Site: "b", Username: "u", Password: "secret"},
			{Site: "c", Username: "u", Password: "secret "},
		}

		if groups := GroupReused(entries); len(groups) != 0 {
			t.Errorf("expected no groups for near-identical passwords, got %d", len(groups))
		}
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		t.Parallel()

		groups := GroupReused(nil)
		if groups == nil {
			t.Fatal("expected non-nil slice")
		}
		if len(groups) != 0 {
			t.Errorf("expected no groups, got %d", len(groups))
		}
	})

	t.Run("group carries a password fingerprint", func(t *testing.T) {
		t.Parallel()

		entries := []model.Entry{
			{Site: "a", Username: "u1", Password: "shared"},
			{Site: "b", Username: "u2", Password: "shared"},
		}

		groups := GroupReused(entries)
		if len(groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(groups))
		}
		if groups[0].Fingerprint != Fingerprint("shared") {
			t.Errorf("expected fingerprint %q, got %q", Fingerprint("shared"), groups[0].Fingerprint)
		}
		if groups[0].Fingerprint == "shared" {
			t.Error("fingerprint must not expose the password")
		}
	})
}

// TestFingerprint tests stability and shape of the group fingerprint.
func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := Fingerprint("secret")
	b := Fingerprint("secret")
	c := Fingerprint("Secret")

	if a != b {
		t.Error("expected fingerprint to be deterministic")
	}
	if a == c {
		t.Error("expected distinct secrets to fingerprint differently")
	}
	if len(a) != fingerprintBytes*2 {
		t.Errorf("expected %d hex chars, got %d", fingerprintBytes*2, len(a))
	}
}
