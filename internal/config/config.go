package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These defaults mirror common password-policy baselines (NIST SP 800-63B
// recommends a minimum of 8 characters; 12 is the widely deployed
// stricter baseline for password managers).
const (
	// DefaultMinLength is the password length threshold below which an
	// entry is reported as too short. 12 characters matches the baseline
	// used by the analysis package, so an audit run with no flags reports
	// exactly what the classifier found.
	DefaultMinLength = 12

	// MaxMinLength caps the configurable minimum length. Values above this
	// are clamped rather than rejected because an over-strict threshold is
	// a usability mistake, not a fatal input error.
	MaxMinLength = 128

	// AppName is the application name used for XDG directory paths.
	AppName = "credaudit"

	// DefaultIssueMode shows every account, not just flagged ones.
	DefaultIssueMode = "all"

	// DefaultSortMode orders results by descending risk score.
	DefaultSortMode = "risk"
)

// Config holds all configuration options for credaudit.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ViewConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// Inputs is the list of credential export files (CSV) to audit.
	// Must contain at least one path.
	Inputs []string

	// MinLength is the password length threshold applied when building the
	// result view. Entries shorter than this are flagged as too short.
	// A value of 0 means use DefaultMinLength.
	MinLength int

	// IssueMode filters the result view: "all", "reuse", or "weak".
	IssueMode string

	// SortMode orders the result view: "risk", "reuse", or "domain".
	SortMode string

	// SearchQuery is a case-insensitive substring filter applied to the
	// domain, site, username, and URL of each result row.
	SearchQuery string

	// ExcludeLocal drops entries whose URL points at localhost, loopback,
	// or private-range addresses. Development credentials usually add
	// noise rather than signal to an audit.
	ExcludeLocal bool

	// MaskOutput masks usernames and domains in human-readable reports.
	// Passwords are never printed in any mode; this additionally hides
	// account identity for reports that will be shared.
	MaskOutput bool

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of human-readable format.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .credaudit.yaml in the current
	// directory, the user's home directory, and the XDG config directory.
	ConfigFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (minimum length,
// issue and sort modes). This also serves as documentation of what the
// defaults are.
func NewConfig() *Config {
	return &Config{
		MinLength: DefaultMinLength,
		IssueMode: DefaultIssueMode,
		SortMode:  DefaultSortMode,
	}
}

// XDGConfigDir returns the XDG config directory for credaudit.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/credaudit
// On macOS: ~/Library/Application Support/credaudit
// On Windows: %APPDATA%\credaudit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any analysis begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one export file to audit
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	// MinLength must be non-negative; 0 means "use the default"
	if c.MinLength < 0 {
		return ErrInvalidMinLength
	}

	switch c.IssueMode {
	case "", "all", "reuse", "weak":
	default:
		return ErrInvalidIssueMode
	}

	switch c.SortMode {
	case "", "risk", "reuse", "domain":
	default:
		return ErrInvalidSortMode
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
