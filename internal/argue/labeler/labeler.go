// Package labeler implements the stability-label computations of spec §4:
// the satisfiability/justification preprocessors, the four-boolean and
// justification labellers, the FQAS baseline, and the naive oracle that
// exhaustively enumerates future theories.
package labeler

import (
	"argus/internal/argue"
	"argus/internal/argue/label"
)

// Labeler computes a Labels table for a theory. Every concrete labeller
// in this package is stateless and safe for reuse across theories; all
// per-run state lives in the returned Labels and in local worklists.
type Labeler interface {
	Label(theory *argue.Theory) (*label.Labels, error)
}
