package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scuttlehq/scuttle/internal/logging"
	"github.com/scuttlehq/scuttle/internal/topology"
)

// Outcome classifies what happened to one resource during execution.
type Outcome string

const (
	OutcomeDeleted  Outcome = "deleted"
	OutcomeNotFound Outcome = "not-found"
	OutcomeFailed   Outcome = "failed"
	OutcomeSkipped  Outcome = "skipped"
)

// Event reports progress on a single resource during execution.
type Event struct {
	Resource topology.Resource
	Status   string // "started", "deleted", "not-found", "failed", "skipped"
	Duration time.Duration
	Err      error
}

// Callback is invoked for each execution event if set.
type Callback func(event Event)

// Result pairs a resource with its outcome.
type Result struct {
	Resource topology.Resource
	Outcome  Outcome
	Err      error
}

// Summary aggregates the results of one execution, in execution order.
type Summary struct {
	Results  []Result
	Deleted  int
	NotFound int
	Failed   int
	Skipped  int
}

func (s *Summary) add(res topology.Resource, outcome Outcome, err error) {
	s.Results = append(s.Results, Result{Resource: res, Outcome: outcome, Err: err})
	switch outcome {
	case OutcomeDeleted:
		s.Deleted++
	case OutcomeNotFound:
		s.NotFound++
	case OutcomeFailed:
		s.Failed++
	case OutcomeSkipped:
		s.Skipped++
	}
}

// Execute deletes every manifest resource, regrouped into deletion order.
// Resources the provider reports as already gone count as normal outcomes.
// On a failure the remaining resources are skipped, unless the engine was
// built with ContinueOnError, in which case every resource is attempted and
// the failures are aggregated. The returned error is non-nil iff at least
// one resource failed.
func (e *Engine) Execute(ctx context.Context, manifest *topology.Manifest, callback Callback) (*Summary, error) {
	emit := func(event Event) {
		if callback != nil {
			callback(event)
		}
	}

	summary := &Summary{}
	var errs []error
	stopped := false

	for _, res := range orderForDeletion(manifest.Resources()) {
		if stopped {
			summary.add(res, OutcomeSkipped, nil)
			emit(Event{Resource: res, Status: string(OutcomeSkipped)})
			continue
		}
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("teardown cancelled: %w", err)
		}

		start := time.Now()
		emit(Event{Resource: res, Status: "started"})
		err := e.deleteOne(ctx, res)
		switch {
		case err == nil:
			summary.add(res, OutcomeDeleted, nil)
			emit(Event{Resource: res, Status: string(OutcomeDeleted), Duration: time.Since(start)})
		case errors.Is(err, ErrNotFound):
			summary.add(res, OutcomeNotFound, nil)
			emit(Event{Resource: res, Status: string(OutcomeNotFound), Duration: time.Since(start)})
		default:
			err = fmt.Errorf("failed to delete %s: %w", res, err)
			summary.add(res, OutcomeFailed, err)
			emit(Event{Resource: res, Status: string(OutcomeFailed), Duration: time.Since(start), Err: err})
			errs = append(errs, err)
			if !e.continueOnError {
				stopped = true
			}
		}
	}

	if len(errs) > 0 {
		return summary, fmt.Errorf("%d resource(s) failed: %w", len(errs), errors.Join(errs...))
	}
	return summary, nil
}

func (e *Engine) deleteOne(ctx context.Context, res topology.Resource) error {
	opCtx, cancel := context.WithTimeout(ctx, e.opTimeout)
	defer cancel()

	logging.Debug("deleting resource", "resource", res.ID, "kind", string(res.Kind))
	return e.provider.Delete(opCtx, res)
}
