package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"argus/internal/argue/label"
)

// BatchRequest names one observation set to label within a LabelBatch
// call, tagged with Index so results can be matched back to requests
// after concurrent completion.
type BatchRequest struct {
	Index        int
	Observations []string
	Kind         LabelerKind
}

// BatchResult is LabelBatch's per-request outcome.
type BatchResult struct {
	Index  int
	Labels *label.Labels
	Err    error
}

// LabelBatch runs every request in reqs concurrently, bounded by
// maxConcurrency, and returns one BatchResult per request in Index order.
// Following the teacher's concurrent-evaluation pattern, it uses
// errgroup.Group.SetLimit rather than an unbounded goroutine-per-request
// fan-out, and the first request's failure does not cancel the others —
// LabelBatch reports every result rather than the first error, since each
// request is an independent unit of batch work (spec §5).
func LabelBatch(ctx context.Context, e *Engine, reqs []BatchRequest, maxConcurrency int) ([]BatchResult, error) {
	results := make([]BatchResult, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	if maxConcurrency > 0 {
		g.SetLimit(maxConcurrency)
	}

	for _, req := range reqs {
		req := req
		g.Go(func() error {
			ls, err := e.Update(ctx, req.Observations, req.Kind)
			results[req.Index] = BatchResult{Index: req.Index, Labels: ls, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
