package projection

import "testing"

// TestParseIssueMode tests issue-mode validation.
func TestParseIssueMode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected IssueMode
		wantErr  bool
	}{
		{"all", IssueAll, false},
		{"reuse", IssueReuse, false},
		{"weak", IssueWeak, false},
		{"", IssueAll, false},
		{"bogus", "", true},
	}

	for _, tc := range testCases {
		t.Run("input_"+tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseIssueMode(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}

// TestParseSortMode tests sort-mode validation.
func TestParseSortMode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected SortMode
		wantErr  bool
	}{
		{"risk", SortRisk, false},
		{"reuse", SortReuse, false},
		{"domain", SortDomain, false},
		{"", SortRisk, false},
		{"alphabetical", "", true},
	}

	for _, tc := range testCases {
		t.Run("input_"+tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSortMode(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}

// TestEffectiveMinLength tests threshold clamping.
func TestEffectiveMinLength(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    int
		expected int
	}{
		{-3, DefaultMinLength},
		{0, DefaultMinLength},
		{1, 1},
		{12, 12},
		{MaxMinLength, MaxMinLength},
		{MaxMinLength + 1, MaxMinLength},
	}

	for _, tc := range testCases {
		p := Params{MinLength: tc.input}
		if got := p.EffectiveMinLength(); got != tc.expected {
			t.Errorf("EffectiveMinLength(%d) = %d, expected %d", tc.input, got, tc.expected)
		}
	}
}
