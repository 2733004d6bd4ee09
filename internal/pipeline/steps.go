package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/credaudit/credaudit/internal/analysis"
	"github.com/credaudit/credaudit/internal/importer"
	"github.com/credaudit/credaudit/internal/model"
	"github.com/credaudit/credaudit/internal/normalize"
	"github.com/credaudit/credaudit/internal/projection"
)

// ImportStep reads the configured credential export files.
// Multiple files are read concurrently and merged in argument order,
// so audits over several browser exports stay deterministic.
type ImportStep struct {
	// logger for structured logging.
	logger *slog.Logger
}

// ImportStepOption configures an ImportStep.
type ImportStepOption func(*ImportStep)

// WithImportLogger sets a custom logger for the import step.
func WithImportLogger(logger *slog.Logger) ImportStepOption {
	return func(s *ImportStep) {
		s.logger = logger
	}
}

// NewImportStep creates a new import step.
func NewImportStep(opts ...ImportStepOption) *ImportStep {
	s := &ImportStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ImportStep) Name() string {
	return "import"
}

// Do reads every input file into audit.Records.
func (s *ImportStep) Do(ctx context.Context, audit *Audit) error {
	records, err := importer.ReadFiles(ctx, audit.Config.Inputs)
	if err != nil {
		return fmt.Errorf("import credential exports: %w", err)
	}

	s.logger.Debug("imported records",
		"files", len(audit.Config.Inputs),
		"records", len(records),
	)

	audit.Records = records
	return nil
}

// NormalizeStep converts raw records into canonical audit entries.
// Rows without a password are dropped here, and local or private-network
// entries are excluded when the configuration asks for it.
type NormalizeStep struct {
	logger *slog.Logger
}

// NormalizeStepOption configures a NormalizeStep.
type NormalizeStepOption func(*NormalizeStep)

// WithNormalizeLogger sets a custom logger for the normalize step.
func WithNormalizeLogger(logger *slog.Logger) NormalizeStepOption {
	return func(s *NormalizeStep) {
		s.logger = logger
	}
}

// NewNormalizeStep creates a new normalize step.
func NewNormalizeStep(opts ...NormalizeStepOption) *NormalizeStep {
	s := &NormalizeStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *NormalizeStep) Name() string {
	return "normalize"
}

// Do normalizes audit.Records into audit.Entries.
func (s *NormalizeStep) Do(_ context.Context, audit *Audit) error {
	audit.Entries = normalize.Normalize(audit.Records, normalize.Options{
		ExcludeDevLocal: audit.Config.ExcludeLocal,
	})

	dropped := len(audit.Records) - len(audit.Entries)
	if dropped > 0 {
		s.logger.Debug("dropped rows during normalization", "dropped", dropped)
	}

	return nil
}

// AnalyzeStep runs the static analysis over the normalized entries.
type AnalyzeStep struct {
	logger *slog.Logger
}

// AnalyzeStepOption configures an AnalyzeStep.
type AnalyzeStepOption func(*AnalyzeStep)

// WithAnalyzeLogger sets a custom logger for the analyze step.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.logger = logger
	}
}

// NewAnalyzeStep creates a new analyze step.
func NewAnalyzeStep(opts ...AnalyzeStepOption) *AnalyzeStep {
	s := &AnalyzeStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do analyzes audit.Entries into audit.Report.
func (s *AnalyzeStep) Do(_ context.Context, audit *Audit) error {
	audit.Report = analysis.Analyze(audit.Entries)

	s.logger.Debug("analysis complete",
		"total", audit.Report.Summary.Total,
		"weak", audit.Report.Summary.Weak,
		"reuse_groups", audit.Report.Summary.ReusedGroups,
	)

	return nil
}

// ProjectStep builds the final result view from the analysis report.
// It applies the live length policy, the issue filter, the search
// query, and the sort order from the run configuration.
type ProjectStep struct {
	logger *slog.Logger

	// now supplies the report timestamp. Overridable for tests.
	now func() time.Time
}

// ProjectStepOption configures a ProjectStep.
type ProjectStepOption func(*ProjectStep)

// WithProjectLogger sets a custom logger for the project step.
func WithProjectLogger(logger *slog.Logger) ProjectStepOption {
	return func(s *ProjectStep) {
		s.logger = logger
	}
}

// WithClock overrides the timestamp source for the project step.
func WithClock(now func() time.Time) ProjectStepOption {
	return func(s *ProjectStep) {
		s.now = now
	}
}

// NewProjectStep creates a new project step.
func NewProjectStep(opts ...ProjectStepOption) *ProjectStep {
	s := &ProjectStep{
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ProjectStep) Name() string {
	return "project"
}

// Do projects the report into audit.Result.
func (s *ProjectStep) Do(_ context.Context, audit *Audit) error {
	cfg := audit.Config

	issues, err := projection.ParseIssueMode(cfg.IssueMode)
	if err != nil {
		return err
	}
	sortMode, err := projection.ParseSortMode(cfg.SortMode)
	if err != nil {
		return err
	}

	params := projection.Params{
		MinLength: cfg.MinLength,
		Issues:    issues,
		Sort:      sortMode,
		Search:    cfg.SearchQuery,
	}

	rows := projection.Project(audit.Entries, audit.Report, params)

	audit.Result = &model.AuditResult{
		GeneratedAt: s.now(),
		Sources:     cfg.Inputs,
		View: model.View{
			MinLength: params.EffectiveMinLength(),
			Issues:    string(issues),
			Sort:      string(sortMode),
			Search:    cfg.SearchQuery,
		},
		Report: audit.Report,
		Rows:   rows,
	}

	s.logger.Debug("projection complete",
		"rows", len(rows),
		"min_length", params.EffectiveMinLength(),
	)

	return nil
}

// DefaultSteps returns the standard audit step sequence.
func DefaultSteps(logger *slog.Logger) []Step {
	return []Step{
		NewImportStep(WithImportLogger(logger)),
		NewNormalizeStep(WithNormalizeLogger(logger)),
		NewAnalyzeStep(WithAnalyzeLogger(logger)),
		NewProjectStep(WithProjectLogger(logger)),
	}
}
