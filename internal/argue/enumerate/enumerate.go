// Package enumerate implements the apriori-style downward-closed lattice
// search shared by the smallest-stable-set calculator (component G) and
// the naive oracle's exhaustive future-theory search (component F).
package enumerate

import (
	"sort"

	"argus/internal/argue"
)

// set is a sorted tuple of literals, used as a map key and for
// reproducible output ordering. Elements are sorted by Literal.Less.
type set []*argue.Literal

func newSet(lits []*argue.Literal) set {
	s := make(set, len(lits))
	copy(s, lits)
	sort.Slice(s, func(i, j int) bool { return s[i].Less(s[j]) })
	return s
}

func (s set) key() string {
	k := ""
	for _, l := range s {
		k += l.ID + "\x00"
	}
	return k
}

// JoinStep implements apriori's join: given the candidate (k-1)-sets that
// survived pruning, produce every k-set formed by unioning two (k-1)-sets
// that agree on their first k-2 elements and differ only in their last —
// the standard apriori-gen join restricted to lexicographically ordered
// tuples, so each resulting k-set is generated exactly once.
func JoinStep(prev [][]*argue.Literal) [][]*argue.Literal {
	if len(prev) == 0 {
		return nil
	}
	k := len(prev[0])
	sorted := make([]set, len(prev))
	for i, p := range prev {
		sorted[i] = newSet(p)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].key() < sorted[j].key() })

	seen := make(map[string]bool)
	var out [][]*argue.Literal
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i], sorted[j]
			if !sharesPrefix(a, b, k-1) {
				break
			}
			if a[k-1].Equal(b[k-1]) {
				continue
			}
			joined := append(append(set{}, a...), b[k-1])
			joined = newSet(joined)
			kk := joined.key()
			if seen[kk] {
				continue
			}
			seen[kk] = true
			out = append(out, []*argue.Literal(joined))
		}
	}
	return out
}

func sharesPrefix(a, b set, n int) bool {
	for i := 0; i < n; i++ {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// PruneStep removes every candidate from cands that has a (k-1)-subset
// not present in prevFrequent — apriori's anti-monotonicity pruning,
// which here stands in for "every subset must itself be a consistent,
// already-admitted theory extension" (spec §7's downward-closed
// precondition on the search space).
func PruneStep(cands [][]*argue.Literal, prevFrequent [][]*argue.Literal) [][]*argue.Literal {
	prevSet := make(map[string]bool, len(prevFrequent))
	for _, p := range prevFrequent {
		prevSet[newSet(p).key()] = true
	}

	var out [][]*argue.Literal
	for _, c := range cands {
		s := newSet(c)
		ok := true
		for i := range s {
			sub := make(set, 0, len(s)-1)
			sub = append(sub, s[:i]...)
			sub = append(sub, s[i+1:]...)
			if !prevSet[sub.key()] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, []*argue.Literal(s))
		}
	}
	return out
}

// JoinAndPruneStep runs one full apriori generation: join then prune.
func JoinAndPruneStep(prev [][]*argue.Literal) [][]*argue.Literal {
	return PruneStep(JoinStep(prev), prev)
}

// AprioriGen enumerates every admissible subset of candidates up to and
// including the full candidate set itself, level by level, stopping early
// the moment a level produces nothing (the downward-closed property
// guarantees no larger level could produce anything either). admissible
// filters which singletons and which joined candidates survive — both the
// stable-set search and the future-theory search pass "pairwise
// non-contrary together with the knowledge base" via
// argue.QueryablesConsistent.
func AprioriGen(candidates []*argue.Literal, admissible func([]*argue.Literal) bool) [][]*argue.Literal {
	var level [][]*argue.Literal
	for _, c := range candidates {
		if admissible([]*argue.Literal{c}) {
			level = append(level, []*argue.Literal{c})
		}
	}

	var all [][]*argue.Literal
	all = append(all, level...)
	for len(level) > 0 {
		joined := JoinStep(level)
		var next [][]*argue.Literal
		for _, j := range joined {
			if admissible(j) {
				next = append(next, j)
			}
		}
		next = PruneStep(next, level)
		all = append(all, next...)
		level = next
	}
	return all
}
