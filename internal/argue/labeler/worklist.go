package labeler

import (
	"sort"

	"argus/internal/argue"
)

// worklist is a deterministic queue of rules pending (re)processing. It
// pops the smallest-ID pending rule each time, so that two runs over the
// same theory visit rules in the same order regardless of map iteration
// order — this is what lets the property tests assert determinism.
type worklist struct {
	pending map[*argue.Rule]bool
}

func newWorklist() *worklist {
	return &worklist{pending: make(map[*argue.Rule]bool)}
}

func (w *worklist) add(r *argue.Rule) {
	if r != nil {
		w.pending[r] = true
	}
}

func (w *worklist) addAll(rs []*argue.Rule) {
	for _, r := range rs {
		w.add(r)
	}
}

func (w *worklist) empty() bool { return len(w.pending) == 0 }

// pop removes and returns the pending rule with the smallest ID.
func (w *worklist) pop() *argue.Rule {
	var chosen *argue.Rule
	for r := range w.pending {
		if chosen == nil || r.Less(chosen) {
			chosen = r
		}
	}
	delete(w.pending, chosen)
	return chosen
}

// leavesAndObservables returns every literal that is either a leaf (no
// antecedent rules feed it, i.e. it has no Children) or an observable
// queryable, sorted by Index for reproducible seeding order.
func leavesAndObservables(sys *argue.System) []*argue.Literal {
	var out []*argue.Literal
	for _, lit := range sys.Language {
		if lit.Observable || len(lit.Children) == 0 {
			out = append(out, lit)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// colorFuncs bundles the per-labeller recoloring rules the shared
// propagation loop invokes: colorLiteral recomputes a literal's label from
// its children (the rules that conclude it) and its contraries, and
// colorRule recomputes a rule's label from its antecedents. Both report
// whether the value changed.
type colorFuncs struct {
	colorLiteral func(lit *argue.Literal) (changed bool)
	colorRule    func(r *argue.Rule) (changed bool)
}

// runPropagation drives the shared fixed-point loop used by the
// four-boolean, justification and FQAS labellers: seed every leaf and
// observable literal, then repeatedly pop the smallest pending rule,
// recolor its consequent, and on change push the consequent's own parent
// rules — and do the same for each of the consequent's contraries, since
// a change to one side of a negation pair can change what its opposite
// can defend against. The loop is a standard worklist fixed point: it
// terminates because bits only flip 1 -> 0 or a node is visited once
// per distinct input, never growing unboundedly.
func runPropagation(sys *argue.System, fn colorFuncs) {
	w := newWorklist()
	for _, lit := range leavesAndObservables(sys) {
		fn.colorLiteral(lit)
		w.addAll(lit.Parents)
	}

	visited := make(map[*argue.Rule]bool)
	for !w.empty() {
		r := w.pop()
		changedRule := fn.colorRule(r)
		_, firstVisit := visited[r]
		visited[r] = true
		if !changedRule && firstVisit {
			continue
		}

		if fn.colorLiteral(r.Consequent) {
			w.addAll(r.Consequent.Parents)
		}
		for _, c := range r.Consequent.Contraries {
			if fn.colorLiteral(c) {
				w.addAll(c.Parents)
			}
		}
	}
}
