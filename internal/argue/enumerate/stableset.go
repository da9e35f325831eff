package enumerate

import "argus/internal/argue"

// SmallestStableSets implements component G as a purely structural search:
// it returns every smallest-cardinality, pairwise non-contrary set of
// additional observations after which no further candidate queryable
// could be added to theory's knowledge base without introducing a
// contrary pair. It runs no labeller and does not consult the topics'
// labels or any stability predicate; "stable" here means only that no
// candidate queryable is left open. The empty extension (the knowledge
// base is already maximal) is returned as a single empty tuple, matching
// the degenerate "[[]]" case in the reference enumerator rather than an
// empty result list.
func SmallestStableSets(theory *argue.Theory) [][]*argue.Literal {
	candidates := theory.FutureKnowledgeBaseCandidates()
	if len(candidates) == 0 {
		return [][]*argue.Literal{{}}
	}

	admissible := func(ext []*argue.Literal) bool {
		combined := append(append([]*argue.Literal{}, theory.KnowledgeBase...), ext...)
		return argue.QueryablesConsistent(combined)
	}

	all := AprioriGen(candidates, admissible)

	maximal := make([][]*argue.Literal, 0)
	for _, ext := range all {
		if isMaximalExtension(theory, candidates, ext) {
			maximal = append(maximal, ext)
		}
	}
	if len(maximal) == 0 {
		return [][]*argue.Literal{{}}
	}
	return smallestByCardinality(maximal)
}

// isMaximalExtension reports whether no candidate outside ext could be
// added to it (together with the theory's existing knowledge base)
// without creating a contrary pair.
func isMaximalExtension(theory *argue.Theory, candidates []*argue.Literal, ext []*argue.Literal) bool {
	inExt := make(map[*argue.Literal]bool, len(ext))
	for _, e := range ext {
		inExt[e] = true
	}
	for _, c := range candidates {
		if inExt[c] {
			continue
		}
		combined := append(append(append([]*argue.Literal{}, theory.KnowledgeBase...), ext...), c)
		if argue.QueryablesConsistent(combined) {
			return false
		}
	}
	return true
}

func smallestByCardinality(sets [][]*argue.Literal) [][]*argue.Literal {
	min := -1
	for _, s := range sets {
		if min == -1 || len(s) < min {
			min = len(s)
		}
	}
	var out [][]*argue.Literal
	for _, s := range sets {
		if len(s) == min {
			out = append(out, s)
		}
	}
	return out
}
