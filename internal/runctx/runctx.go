package runctx

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type key int

const runKey key = 0

// RunContext identifies one process invocation. The run ID tags log
// lines and snapshot files so a run's output can be correlated after
// the fact.
type RunContext struct {
	RunID     string
	StartedAt time.Time
}

// New creates a RunContext with a fresh run ID
func New() *RunContext {
	return &RunContext{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}
}

// WithRun attaches a new RunContext to ctx
func WithRun(ctx context.Context) context.Context {
	return WithContext(ctx, New())
}

// WithContext attaches an existing RunContext to ctx, so the run the
// application created at startup follows the command's context.
func WithContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runKey, rc)
}

// FromContext returns the RunContext attached to ctx, or a placeholder
// when none was attached.
func FromContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runKey).(*RunContext); ok {
		return rc
	}
	return &RunContext{
		RunID:     "unknown",
		StartedAt: time.Now(),
	}
}

// RunError wraps an error with the run it happened in
type RunError struct {
	RunID string
	Err   error
}

// Error implements the error interface
func (e *RunError) Error() string {
	return fmt.Sprintf("[%s] %v", e.RunID, e.Err)
}

// Unwrap returns the underlying error
func (e *RunError) Unwrap() error {
	return e.Err
}

// NewRunError creates a RunError from the context's run
func NewRunError(ctx context.Context, err error) error {
	rc := FromContext(ctx)
	return &RunError{
		RunID: rc.RunID,
		Err:   err,
	}
}
