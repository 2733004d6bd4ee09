package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/credaudit/credaudit/internal/config"
	"github.com/credaudit/credaudit/internal/log"
	"github.com/credaudit/credaudit/internal/pipeline"
	"github.com/credaudit/credaudit/internal/report"
	"github.com/spf13/cobra"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <export.csv> [more.csv ...]",
		Short: "Audit credential exports for weak and reused passwords",
		Long: `Audit reads one or more CSV credential exports and analyzes them for:
- Weak passwords (too short, missing character classes, common patterns)
- Password reuse across accounts
- Per-account risk levels combining both signals

Exports from Chrome, Firefox, Edge, Bitwarden, and similar tools are
recognized automatically by their column headers. Multiple files are
merged into a single audit.

Examples:
  # Audit a single export
  credaudit audit export.csv

  # Merge several exports into one audit
  credaudit audit chrome.csv bitwarden.csv

  # Show only weak accounts, strictest first
  credaudit audit --issues weak --sort risk export.csv

  # Apply a stricter length policy and search for one provider
  credaudit audit --min-length 16 --search google export.csv

  # Machine-readable report for later comparison
  credaudit audit --json -o baseline.json export.csv

  # Shareable report with masked account identities
  credaudit audit --markdown --mask export.csv`,
		Args: cobra.ArbitraryArgs,
		RunE: runAuditCmd,
	}

	// View flags
	cmd.Flags().IntP("min-length", "l", config.DefaultMinLength,
		"Minimum password length for the too-short check")
	cmd.Flags().StringP("issues", "i", config.DefaultIssueMode,
		"Filter results: all, reuse, or weak")
	cmd.Flags().StringP("sort", "s", config.DefaultSortMode,
		"Sort results: risk, reuse, or domain")
	cmd.Flags().StringP("search", "q", "",
		"Case-insensitive substring filter over domain, site, username, and URL")
	cmd.Flags().BoolP("exclude-local", "x", false,
		"Exclude localhost and private-network entries")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .credaudit.yaml in current, home, or XDG config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().BoolP("mask", "M", false,
		"Mask usernames and sites in human-readable and Markdown reports")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with secret masking
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAudit(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
// Flag values that the user set explicitly always win over the config
// file; file values fill in the rest.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.MinLength, err = cmd.Flags().GetInt("min-length")
	if err != nil {
		return nil, err
	}

	cfg.IssueMode, err = cmd.Flags().GetString("issues")
	if err != nil {
		return nil, err
	}

	cfg.SortMode, err = cmd.Flags().GetString("sort")
	if err != nil {
		return nil, err
	}

	cfg.SearchQuery, err = cmd.Flags().GetString("search")
	if err != nil {
		return nil, err
	}

	cfg.ExcludeLocal, err = cmd.Flags().GetBool("exclude-local")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.MaskOutput, err = cmd.Flags().GetBool("mask")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Load settings from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg, cmd.Flags().Changed)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Get positional arguments (credential export files)
	cfg.Inputs = args

	return cfg, nil
}

// runAudit executes the audit pipeline and writes the report.
func runAudit(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Debug("starting audit",
		"inputs", cfg.Inputs,
		"min_length", cfg.MinLength,
		"issues", cfg.IssueMode,
		"sort", cfg.SortMode,
	)

	startTime := time.Now()

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(pipeline.DefaultSteps(logger)...)

	audit := pipeline.NewAudit(cfg)
	if err := p.Execute(ctx, audit); err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	logger.Debug("audit completed", "elapsed", time.Since(startTime).Round(time.Millisecond))

	return outputResult(cfg, audit)
}

// outputResult writes the audit result in the requested format.
func outputResult(cfg *config.Config, audit *pipeline.Audit) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports list account identities, so keep them owner-readable only
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	writer := selectWriter(cfg, output)
	_, err := writer.Write(audit.Result)
	return err
}

// selectWriter picks the report writer for the configured format.
func selectWriter(cfg *config.Config, output *os.File) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output,
			report.WithPrettyPrint(),
			report.WithVersion(getVersion()),
		)
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output,
			report.WithMarkdownMask(cfg.MaskOutput),
		)
	default:
		return report.NewSimpleWriter(output,
			report.WithMask(cfg.MaskOutput),
			report.WithVerbose(cfg.Verbose),
		)
	}
}
