// Package engine is the facade spec §5 describes: it wraps the argue
// domain model and the labeller/enumerate packages behind a single
// request-response API, the way internal/mangle wraps the Datalog engine
// it adapts in the teacher repo.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"argus/internal/argue"
	"argus/internal/argue/label"
	"argus/internal/argue/labeler"
	"argus/internal/logging"
)

// LabelerKind selects which labeller Update runs.
type LabelerKind string

const (
	LabelerFourBool      LabelerKind = "four_bool"
	LabelerJustification LabelerKind = "justification"
	LabelerFQAS          LabelerKind = "fqas"
	LabelerNaive         LabelerKind = "naive"
)

// Config configures an Engine.
type Config struct {
	// Default is the labeller Update uses when no override is given.
	Default LabelerKind
	// MaxNaiveTheories bounds the naive oracle's future-theory search.
	MaxNaiveTheories int
}

// DefaultConfig returns the engine's recommended configuration.
func DefaultConfig() Config {
	return Config{
		Default:          LabelerFourBool,
		MaxNaiveTheories: labeler.DefaultMaxNaiveTheories,
	}
}

// Engine is the stateless facade over one argumentation System: it
// builds theories from observation requests and runs the configured
// labeller over them. An Engine holds no mutable state of its own and is
// safe for concurrent use; LabelBatch exercises exactly that property.
type Engine struct {
	sys    *argue.System
	cfg    Config
	labels map[LabelerKind]labeler.Labeler
}

// NewEngine builds an Engine over sys with cfg. It returns an error if
// cfg.Default is not one of the known LabelerKind values.
func NewEngine(sys *argue.System, cfg Config) (*Engine, error) {
	e := &Engine{
		sys: sys,
		cfg: cfg,
		labels: map[LabelerKind]labeler.Labeler{
			LabelerFourBool:      labeler.FourBool{},
			LabelerJustification: labeler.Justification{},
			LabelerFQAS:          labeler.FQAS{},
			LabelerNaive:         labeler.Naive{MaxTheories: cfg.MaxNaiveTheories},
		},
	}
	if _, ok := e.labels[cfg.Default]; !ok {
		return nil, fmt.Errorf("%w: unknown default labeler kind %q", argue.ErrMalformedSystem, cfg.Default)
	}
	return e, nil
}

// Update runs the configured (or overridden) labeller over the
// observations named by ids, logging the request under a fresh
// correlation ID the way the teacher's request-handling code does.
// Identifiers that are not queryables are ignored, and an observation
// contrary to an earlier accepted one is dropped, so the knowledge base is
// the first-come, pairwise-consistent subset of ids in input order.
func (e *Engine) Update(ctx context.Context, ids []string, kind LabelerKind) (*label.Labels, error) {
	reqID := uuid.NewString()
	start := time.Now()

	if kind == "" {
		kind = e.cfg.Default
	}
	lb, ok := e.labels[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown labeler kind %q", argue.ErrUnknownIdentifier, kind)
	}

	var qs []*argue.Literal
	for _, id := range ids {
		q, err := e.sys.GetQueryable(id)
		if err != nil || !argue.QueryablesConsistent(append(append([]*argue.Literal{}, qs...), q)) {
			logging.Get(logging.CategoryEngine).Debug("update %s dropped observation %q", reqID, id)
			continue
		}
		qs = append(qs, q)
	}

	theory, err := argue.NewTheory(e.sys, qs)
	if err != nil {
		logging.Get(logging.CategoryEngine).Warn("update %s rejected inconsistent observations: %v", reqID, err)
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	ls, err := lb.Label(theory)
	if err != nil {
		logging.Get(logging.CategoryEngine).Warn("update %s labeller %s failed: %v", reqID, kind, err)
		return nil, err
	}

	logging.Get(logging.CategoryEngine).Debug("update %s labeller=%s observations=%d elapsed=%s",
		reqID, kind, len(qs), time.Since(start))
	return ls, nil
}

// System exposes the underlying argumentation system for callers that
// need to resolve identifiers or enumerate queryables directly.
func (e *Engine) System() *argue.System { return e.sys }
