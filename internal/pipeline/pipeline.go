package pipeline

import (
	"context"
	"log/slog"

	"github.com/credaudit/credaudit/internal/config"
	"github.com/credaudit/credaudit/internal/model"
)

// Audit is the shared state threaded through the pipeline steps.
// Each step reads the fields earlier steps populated and fills in its
// own output. The zero value plus a Config is a valid starting point.
type Audit struct {
	// Config holds the validated run configuration.
	Config *config.Config

	// Records are the raw rows read from the credential exports.
	// Populated by the import step.
	Records []model.Record

	// Entries are the normalized audit entries.
	// Populated by the normalize step.
	Entries []model.Entry

	// Report is the static analysis result.
	// Populated by the analyze step.
	Report *model.Report

	// Result is the final audit output handed to report writers.
	// Populated by the project step.
	Result *model.AuditResult
}

// NewAudit creates the pipeline state for one audit run.
func NewAudit(cfg *config.Config) *Audit {
	return &Audit{Config: cfg}
}

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the audit
// state accumulated by previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features (e.g., priority, dependencies)
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation, and the audit state to modify.
	Do(ctx context.Context, audit *Audit) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
// This follows the functional options pattern for clean API design.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, the default slog logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// It respects context cancellation and logs each step's execution.
//
// Design decision: We check context.Done() before each step rather than
// during, because steps should handle their own cancellation. This allows
// graceful cleanup between steps while still respecting cancellation.
//
// Unlike a crawler, an audit has no useful partial result: every later
// stage needs the full output of the earlier ones, so the pipeline
// always stops on the first error.
func (p *Pipeline) Execute(ctx context.Context, audit *Audit) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("audit cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, audit); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)
			return err
		}

		p.logger.Debug("step completed", "step", step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
