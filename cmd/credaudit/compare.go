package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/credaudit/credaudit/internal/model"
	"github.com/credaudit/credaudit/internal/report"
	"github.com/spf13/cobra"
)

// NewCompareCmd creates the compare command.
// This command compares two JSON reports produced by `credaudit audit --json`.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <old.json> <new.json>",
		Short: "Compare two JSON audit reports",
		Long: `Compare shows how password hygiene changed between two audits.

Both arguments must be JSON reports written by 'credaudit audit --json'.
The output lists:
- Changes in the headline counts (accounts, weak passwords, reuse)
- Accounts that became weak since the old audit
- Accounts whose weaknesses were resolved

Examples:
  # Take a baseline, fix some passwords, then measure progress
  credaudit audit --json -o before.json export.csv
  credaudit audit --json -o after.json export.csv
  credaudit compare before.json after.json

  # Machine-readable comparison
  credaudit compare --json before.json after.json`,
		Args: cobra.ExactArgs(2),
		RunE: runCompareCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	oldReport, err := loadJSONReport(args[0])
	if err != nil {
		return err
	}
	newReport, err := loadJSONReport(args[1])
	if err != nil {
		return err
	}

	comparison := compareReports(oldReport, newReport)

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	if jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(comparison)
	}

	printComparison(cmd, comparison)
	return nil
}

// loadJSONReport reads and parses one JSON report file.
func loadJSONReport(path string) (*report.JSONReport, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open report %s: %w", path, err)
	}
	defer f.Close()

	jr, err := report.ReadJSONReport(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	if jr.Result == nil || jr.Result.Report == nil {
		return nil, fmt.Errorf("report %s has no audit result (was it written by 'credaudit audit --json'?)", path)
	}
	return jr, nil
}

// Comparison is the difference between two audit reports.
type Comparison struct {
	// Old and New are the headline counts of each report.
	Old model.Summary `json:"old"`
	New model.Summary `json:"new"`

	// NewlyWeak lists accounts weak in the new report but not the old.
	NewlyWeak []model.AccountKey `json:"newly_weak"`

	// Resolved lists accounts weak in the old report but not the new.
	Resolved []model.AccountKey `json:"resolved"`
}

// Improved reports whether hygiene got strictly better: fewer weak
// passwords and no new weak accounts.
func (c *Comparison) Improved() bool {
	return c.New.Weak < c.Old.Weak && len(c.NewlyWeak) == 0
}

// compareReports diffs the weak-account sets and summaries of two reports.
func compareReports(oldReport, newReport *report.JSONReport) *Comparison {
	oldWeak := weakAccountSet(oldReport.Result.Report)
	newWeak := weakAccountSet(newReport.Result.Report)

	c := &Comparison{
		Old:       oldReport.Result.Report.Summary,
		New:       newReport.Result.Report.Summary,
		NewlyWeak: make([]model.AccountKey, 0),
		Resolved:  make([]model.AccountKey, 0),
	}

	for key := range newWeak {
		if !oldWeak[key] {
			c.NewlyWeak = append(c.NewlyWeak, key)
		}
	}
	for key := range oldWeak {
		if !newWeak[key] {
			c.Resolved = append(c.Resolved, key)
		}
	}

	// Map iteration order is random; sort for stable output.
	sortAccounts(c.NewlyWeak)
	sortAccounts(c.Resolved)

	return c
}

// weakAccountSet collects the accounts with weak findings in a report.
func weakAccountSet(r *model.Report) map[model.AccountKey]bool {
	set := make(map[model.AccountKey]bool, len(r.WeakFindings))
	for _, f := range r.WeakFindings {
		set[model.AccountKey{Site: f.Site, Username: f.Username}] = true
	}
	return set
}

// sortAccounts orders accounts by site, then username.
func sortAccounts(accounts []model.AccountKey) {
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Site != accounts[j].Site {
			return accounts[i].Site < accounts[j].Site
		}
		return accounts[i].Username < accounts[j].Username
	})
}

// printComparison writes the comparison in human-readable form.
func printComparison(cmd *cobra.Command, c *Comparison) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "              AUDIT COMPARISON")
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %-20s %8s %8s %8s\n", "Metric", "Old", "New", "Change")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 48))
	printDelta(out, "Accounts", c.Old.Total, c.New.Total)
	printDelta(out, "Weak passwords", c.Old.Weak, c.New.Weak)
	printDelta(out, "Reuse groups", c.Old.ReusedGroups, c.New.ReusedGroups)
	printDelta(out, "Reused accounts", c.Old.ReusedAccounts, c.New.ReusedAccounts)
	fmt.Fprintln(out)

	if len(c.NewlyWeak) > 0 {
		fmt.Fprintf(out, "Newly weak accounts (%d):\n", len(c.NewlyWeak))
		for _, a := range c.NewlyWeak {
			fmt.Fprintf(out, "  + %s (%s)\n", a.Site, a.Username)
		}
		fmt.Fprintln(out)
	}

	if len(c.Resolved) > 0 {
		fmt.Fprintf(out, "Resolved accounts (%d):\n", len(c.Resolved))
		for _, a := range c.Resolved {
			fmt.Fprintf(out, "  - %s (%s)\n", a.Site, a.Username)
		}
		fmt.Fprintln(out)
	}

	switch {
	case c.Improved():
		fmt.Fprintln(out, "Password hygiene improved since the old audit.")
	case len(c.NewlyWeak) == 0 && len(c.Resolved) == 0 && c.Old == c.New:
		fmt.Fprintln(out, "No changes between the two audits.")
	default:
		fmt.Fprintln(out, "Review the accounts listed above.")
	}
}

// printDelta writes one metric row with a signed change column.
func printDelta(out io.Writer, name string, oldVal, newVal int) {
	change := fmt.Sprintf("%+d", newVal-oldVal)
	if newVal == oldVal {
		change = "0"
	}
	fmt.Fprintf(out, "  %-20s %8d %8d %8s\n", name, oldVal, newVal, change)
}
