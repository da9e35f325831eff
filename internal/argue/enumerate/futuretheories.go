package enumerate

import "argus/internal/argue"

// FutureTheories enumerates every Theory reachable by extending theory's
// knowledge base with any consistent subset of its remaining candidate
// observations (spec §4.F). This is the exhaustive search the naive
// oracle runs a full labeller over for each result and ORs together: it
// is exponential in the number of unresolved queryables and is guarded by
// maxTheories as a safety bound, returning early (with ok=false) if the
// search would exceed it.
func FutureTheories(theory *argue.Theory, maxTheories int) (theories []*argue.Theory, ok bool) {
	candidates := theory.FutureKnowledgeBaseCandidates()

	admissible := func(ext []*argue.Literal) bool {
		combined := append(append([]*argue.Literal{}, theory.KnowledgeBase...), ext...)
		return argue.QueryablesConsistent(combined)
	}

	extensions := [][]*argue.Literal{{}}
	if len(candidates) > 0 {
		extensions = append(extensions, AprioriGen(candidates, admissible)...)
	}

	out := make([]*argue.Theory, 0, len(extensions))
	for _, ext := range extensions {
		if maxTheories > 0 && len(out) >= maxTheories {
			return out, false
		}
		kb := append(append([]*argue.Literal{}, theory.KnowledgeBase...), ext...)
		t, err := argue.NewTheory(theory.System, kb)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out, true
}
