// Package engine drives a teardown run: it discovers which of a project's
// resources still exist, and deletes them in dependency order.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/scuttlehq/scuttle/internal/topology"
)

// DefaultOpTimeout bounds a single resource deletion, including any
// sub-steps like a bucket purge.
const DefaultOpTimeout = 2 * time.Minute

// ErrNotFound is returned by Provider.Delete when the resource was already
// gone. The engine records it as a normal outcome, not a failure, which is
// what makes reruns over a half-deleted environment converge.
var ErrNotFound = errors.New("resource not found")

// Provider performs existence checks and deletions for topology resources.
// Exists must report a clean false for a missing resource; any error it
// returns is treated as fatal for the run.
type Provider interface {
	Exists(ctx context.Context, res topology.Resource) (bool, error)
	Delete(ctx context.Context, res topology.Resource) error
}

// Options configures engine behavior.
type Options struct {
	// ContinueOnError keeps deleting after a resource fails instead of
	// stopping at the first failure. Failures are aggregated either way.
	ContinueOnError bool
	// OpTimeout bounds each deletion call. Zero means DefaultOpTimeout.
	OpTimeout time.Duration
}

// Engine orchestrates discovery and deletion against a single provider.
type Engine struct {
	provider        Provider
	continueOnError bool
	opTimeout       time.Duration
}

// New creates an engine for the given provider.
func New(p Provider, opts Options) *Engine {
	timeout := opts.OpTimeout
	if timeout <= 0 {
		timeout = DefaultOpTimeout
	}
	return &Engine{
		provider:        p,
		continueOnError: opts.ContinueOnError,
		opTimeout:       timeout,
	}
}
