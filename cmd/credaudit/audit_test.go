package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/credaudit/credaudit/internal/config"
	"github.com/credaudit/credaudit/internal/report"
)

// writeTestExport writes a CSV export and returns its path.
func writeTestExport(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleExport = `name,url,username,password
GitHub,https://github.com,alice,shared-secret
GitLab,https://gitlab.com,alice,shared-secret
Example,https://example.com,bob,short
`

func TestAuditCmdFlags(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()

	for _, name := range []string{
		"min-length", "issues", "sort", "search", "exclude-local",
		"config", "json", "markdown", "output", "mask",
	} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag %q", name)
		}
	}
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewAuditCmd()
		if err := cmd.ParseFlags([]string{}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"export.csv"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		if cfg.MinLength != config.DefaultMinLength {
			t.Errorf("MinLength = %d, want %d", cfg.MinLength, config.DefaultMinLength)
		}
		if cfg.IssueMode != config.DefaultIssueMode {
			t.Errorf("IssueMode = %q, want %q", cfg.IssueMode, config.DefaultIssueMode)
		}
		if len(cfg.Inputs) != 1 || cfg.Inputs[0] != "export.csv" {
			t.Errorf("Inputs = %v, want [export.csv]", cfg.Inputs)
		}
	})

	t.Run("flags override defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewAuditCmd()
		if err := cmd.ParseFlags([]string{
			"--min-length", "16",
			"--issues", "weak",
			"--sort", "domain",
			"--search", "github",
			"--exclude-local",
			"--mask",
		}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"a.csv", "b.csv"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		if cfg.MinLength != 16 {
			t.Errorf("MinLength = %d, want 16", cfg.MinLength)
		}
		if cfg.IssueMode != "weak" {
			t.Errorf("IssueMode = %q, want weak", cfg.IssueMode)
		}
		if cfg.SortMode != "domain" {
			t.Errorf("SortMode = %q, want domain", cfg.SortMode)
		}
		if cfg.SearchQuery != "github" {
			t.Errorf("SearchQuery = %q, want github", cfg.SearchQuery)
		}
		if !cfg.ExcludeLocal {
			t.Error("ExcludeLocal = false, want true")
		}
		if !cfg.MaskOutput {
			t.Error("MaskOutput = false, want true")
		}
		if len(cfg.Inputs) != 2 {
			t.Errorf("Inputs = %v, want two paths", cfg.Inputs)
		}
	})

	t.Run("config file fills unset flags", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(configPath, []byte("min_length: 20\nissues: reuse\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		cmd := NewAuditCmd()
		if err := cmd.ParseFlags([]string{
			"--config", configPath,
			"--issues", "weak", // explicit flag wins over the file
		}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"export.csv"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		if cfg.MinLength != 20 {
			t.Errorf("MinLength = %d, want 20 (from config file)", cfg.MinLength)
		}
		if cfg.IssueMode != "weak" {
			t.Errorf("IssueMode = %q, want weak (flag wins)", cfg.IssueMode)
		}
	})

	t.Run("explicit missing config file fails", func(t *testing.T) {
		t.Parallel()

		cmd := NewAuditCmd()
		if err := cmd.ParseFlags([]string{
			"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd, []string{"export.csv"}); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})
}

// TestAuditCmdEndToEnd runs the complete audit command against a real export.
// Not parallel: it changes the working directory so no stray config file
// in the repository or home directory is picked up.
func TestAuditCmdEndToEnd(t *testing.T) {
	t.Run("json report to file", func(t *testing.T) {
		t.Chdir(t.TempDir())

		exportPath := writeTestExport(t, sampleExport)
		outPath := filepath.Join(t.TempDir(), "report.json")

		root := NewRootCmd()
		root.SetArgs([]string{"audit", "--json", "-o", outPath, exportPath})

		if err := root.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("report not written: %v", err)
		}

		var jr report.JSONReport
		if err := json.Unmarshal(data, &jr); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if jr.Result.Report.Summary.Total != 3 {
			t.Errorf("Total = %d, want 3", jr.Result.Report.Summary.Total)
		}
		if jr.Result.Report.Summary.ReusedGroups != 1 {
			t.Errorf("ReusedGroups = %d, want 1", jr.Result.Report.Summary.ReusedGroups)
		}
		if strings.Contains(string(data), "shared-secret") {
			t.Error("report must not contain the password")
		}
	})

	t.Run("weak filter narrows results", func(t *testing.T) {
		t.Chdir(t.TempDir())

		exportPath := writeTestExport(t, sampleExport)
		outPath := filepath.Join(t.TempDir(), "report.json")

		root := NewRootCmd()
		root.SetArgs([]string{"audit", "--json", "--issues", "weak", "-o", outPath, exportPath})

		if err := root.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}

		var jr report.JSONReport
		if err := json.Unmarshal(data, &jr); err != nil {
			t.Fatal(err)
		}
		for _, row := range jr.Result.Rows {
			if !row.IsWeak {
				t.Errorf("row %s is not weak but survived the weak filter", row.Site)
			}
		}
	})

	t.Run("conflicting formats fail", func(t *testing.T) {
		t.Chdir(t.TempDir())

		exportPath := writeTestExport(t, sampleExport)

		root := NewRootCmd()
		root.SetArgs([]string{"audit", "--json", "--markdown", exportPath})

		if err := root.Execute(); err == nil {
			t.Error("expected error for conflicting report formats")
		}
	})

	t.Run("no inputs fail", func(t *testing.T) {
		t.Chdir(t.TempDir())

		root := NewRootCmd()
		root.SetArgs([]string{"audit"})

		if err := root.Execute(); err == nil {
			t.Error("expected error when no export files are given")
		}
	})
}
