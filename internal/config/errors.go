package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoInput is returned when no credential export file is specified.
	// At least one CSV path must be given as a positional argument.
	ErrNoInput = errors.New("no input specified: provide at least one credential export file")

	// ErrInvalidMinLength is returned when the minimum length is negative.
	// Use 0 to fall back to the default threshold.
	ErrInvalidMinLength = errors.New("invalid minimum length: must be non-negative")

	// ErrInvalidIssueMode is returned when the issue filter is not one of
	// "all", "reuse", or "weak".
	ErrInvalidIssueMode = errors.New(`invalid issue filter: must be "all", "reuse", or "weak"`)

	// ErrInvalidSortMode is returned when the sort order is not one of
	// "risk", "reuse", or "domain".
	ErrInvalidSortMode = errors.New(`invalid sort order: must be "risk", "reuse", or "domain"`)

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
