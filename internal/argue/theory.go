package argue

import "fmt"

// Theory is an argumentation system paired with a knowledge base: an
// ordered set of queryables that are pairwise non-contrary. Like System, a
// Theory is immutable after construction.
type Theory struct {
	System        *System
	KnowledgeBase []*Literal
}

// NewTheory builds a theory from a system and a candidate knowledge base,
// rejecting inconsistent input with ErrInconsistentKnowledgeBase. This
// constructor is used by the naive oracle's enumerator guard (spec §7);
// the engine's public Update path filters instead of calling this
// directly with unfiltered input.
func NewTheory(sys *System, kb []*Literal) (*Theory, error) {
	if !QueryablesConsistent(kb) {
		return nil, fmt.Errorf("%w: knowledge base contains contrary observations", ErrInconsistentKnowledgeBase)
	}
	cp := make([]*Literal, len(kb))
	copy(cp, kb)
	return &Theory{System: sys, KnowledgeBase: cp}, nil
}

// Contains reports whether lit is a member of the knowledge base.
func (t *Theory) Contains(lit *Literal) bool {
	for _, k := range t.KnowledgeBase {
		if k.Equal(lit) {
			return true
		}
	}
	return false
}

// KnowledgeBaseSet returns the knowledge base as a set, for O(1) lookups
// in the labelling hot path.
func (t *Theory) KnowledgeBaseSet() map[*Literal]bool {
	set := make(map[*Literal]bool, len(t.KnowledgeBase))
	for _, k := range t.KnowledgeBase {
		set[k] = true
	}
	return set
}

// FutureKnowledgeBaseCandidates returns every queryable not already in the
// knowledge base whose contraries are also absent from it — i.e. the
// atoms whose status can still change under some future observation
// (spec §4.A).
func (t *Theory) FutureKnowledgeBaseCandidates() []*Literal {
	kb := t.KnowledgeBaseSet()
	var out []*Literal
	for _, q := range t.System.Queryables() {
		if kb[q] {
			continue
		}
		blocked := false
		for _, c := range q.Contraries {
			if kb[c] {
				blocked = true
				break
			}
		}
		if !blocked {
			out = append(out, q)
		}
	}
	return out
}
