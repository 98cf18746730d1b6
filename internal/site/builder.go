package site

import (
	"context"
	"log/slog"
)

// Step defines the interface that all build steps must implement.
// Steps are executed in sequence, with each step receiving the
// accumulated build from previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features (e.g., caching, skipping)
type Step interface {
	// Do executes the build step.
	// It receives the context for cancellation, and the build to modify.
	// Returns an error if the step fails; the builder records it and
	// stops unless configured to continue.
	Do(ctx context.Context, build *Build) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Builder orchestrates the execution of build steps.
// It maintains a list of steps and executes them in order.
type Builder struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the builder stops on first error.
	continueOnError bool
}

// Option is a function that configures a Builder.
// This follows the functional options pattern for clean API design.
type Option func(*Builder)

// WithLogger sets a custom logger for the builder.
// If not set, the default logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithContinueOnError configures the builder to continue execution even
// when a step fails. Failed steps are logged and their errors are
// recorded in the build, but subsequent steps still execute.
//
// Design decision: This option exists because export formats are
// secondary outputs; a markdown rendering failure should not have to
// abort the page build. The default is to stop on error because the
// write step would otherwise materialize an incomplete site.
func WithContinueOnError(continueOnError bool) Option {
	return func(b *Builder) {
		b.continueOnError = continueOnError
	}
}

// New creates a new Builder with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Builder {
	b := &Builder{
		steps:           make([]Step, 0),
		continueOnError: false,
	}

	// Apply options
	for _, opt := range opts {
		opt(b)
	}

	// Set default logger if not provided
	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// AddStep appends a step to the builder.
// Steps are executed in the order they are added.
func (b *Builder) AddStep(step Step) {
	b.steps = append(b.steps, step)
}

// AddSteps appends multiple steps to the builder.
func (b *Builder) AddSteps(steps ...Step) {
	b.steps = append(b.steps, steps...)
}

// Execute runs all build steps in sequence.
// It respects context cancellation and logs each step's execution.
//
// Design decision: We check context.Done() before each step rather than
// during, because steps handle their own blocking work. This keeps
// watch-triggered rebuild cancellation prompt without tearing a step
// apart mid-render.
//
// Returns the first error encountered if continueOnError is false, or
// nil if all steps complete (errors are recorded in the build).
func (b *Builder) Execute(ctx context.Context, build *Build) error {
	for _, step := range b.steps {
		// Check for cancellation before starting each step
		select {
		case <-ctx.Done():
			b.logger.Warn("build cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			build.Cancelled = true
			return ctx.Err()
		default:
			// Continue with execution
		}

		b.logger.Debug("executing step", "step", step.Name())

		// Execute the step
		if err := step.Do(ctx, build); err != nil {
			b.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)

			// Record the error in the build
			build.Error = err
			build.ErrorMessage = err.Error()

			// Stop or continue based on configuration
			if !b.continueOnError {
				return err
			}
		} else {
			b.logger.Debug("step completed", "step", step.Name())
		}

		// Track which steps were performed
		build.CompletedSteps = append(build.CompletedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the builder.
func (b *Builder) StepCount() int {
	return len(b.steps)
}

// StepNames returns the names of all steps in execution order.
func (b *Builder) StepNames() []string {
	names := make([]string, len(b.steps))
	for i, step := range b.steps {
		names[i] = step.Name()
	}
	return names
}
