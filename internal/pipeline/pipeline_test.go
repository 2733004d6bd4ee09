package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/credaudit/credaudit/internal/config"
)

// testLogger returns a logger that discards all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingStep records whether it was executed.
type recordingStep struct {
	name     string
	executed bool
	err      error
}

func (s *recordingStep) Name() string { return s.name }

func (s *recordingStep) Do(_ context.Context, _ *Audit) error {
	s.executed = true
	return s.err
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes steps in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		mkStep := func(name string) Step {
			return stepFunc{name: name, fn: func() { order = append(order, name) }}
		}

		p := New(WithLogger(testLogger()))
		p.AddSteps(mkStep("first"), mkStep("second"), mkStep("third"))

		audit := NewAudit(config.NewConfig())
		if err := p.Execute(context.Background(), audit); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		want := []string{"first", "second", "third"}
		if len(order) != len(want) {
			t.Fatalf("executed %d steps, want %d", len(order), len(want))
		}
		for i, name := range want {
			if order[i] != name {
				t.Errorf("step %d = %q, want %q", i, order[i], name)
			}
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("import failed")
		failing := &recordingStep{name: "failing", err: wantErr}
		after := &recordingStep{name: "after"}

		p := New(WithLogger(testLogger()))
		p.AddSteps(failing, after)

		err := p.Execute(context.Background(), NewAudit(config.NewConfig()))
		if !errors.Is(err, wantErr) {
			t.Errorf("Execute() error = %v, want %v", err, wantErr)
		}
		if after.executed {
			t.Error("steps after a failure should not run")
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		step := &recordingStep{name: "never"}
		p := New(WithLogger(testLogger()))
		p.AddStep(step)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := p.Execute(ctx, NewAudit(config.NewConfig()))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Execute() error = %v, want context.Canceled", err)
		}
		if step.executed {
			t.Error("step should not run after cancellation")
		}
	})

	t.Run("empty pipeline succeeds", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(testLogger()))
		if err := p.Execute(context.Background(), NewAudit(config.NewConfig())); err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})
}

// stepFunc adapts a closure to the Step interface for ordering tests.
type stepFunc struct {
	name string
	fn   func()
}

func (s stepFunc) Name() string { return s.name }

func (s stepFunc) Do(_ context.Context, _ *Audit) error {
	s.fn()
	return nil
}

func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	p := New(WithLogger(testLogger()))
	p.AddSteps(
		&recordingStep{name: "import"},
		&recordingStep{name: "normalize"},
	)

	if p.StepCount() != 2 {
		t.Errorf("StepCount() = %d, want 2", p.StepCount())
	}

	names := p.StepNames()
	if len(names) != 2 || names[0] != "import" || names[1] != "normalize" {
		t.Errorf("StepNames() = %v, want [import normalize]", names)
	}
}
