package labeler

import (
	"fmt"

	"argus/internal/argue"
	"argus/internal/argue/enumerate"
	"argus/internal/argue/label"
)

// DefaultMaxNaiveTheories bounds Naive's exhaustive search: beyond this
// many future theories the oracle refuses to run rather than silently
// consume unbounded memory and CPU (spec §7's resource-bound guidance).
const DefaultMaxNaiveTheories = 4096

// Naive implements component F: the brute-force oracle that exhaustively
// enumerates every future theory reachable from the input theory,
// justification-labels each one, and combines the results with Label.Add
// (bitwise OR) into a single accumulator seeded at label.Bottom. Its
// output is the ground truth the other labellers are checked against in
// property tests, not something production code calls on a hot path.
type Naive struct {
	// MaxTheories overrides DefaultMaxNaiveTheories when positive.
	MaxTheories int
}

// Label runs the naive oracle to completion or returns an error if the
// future-theory search would exceed the configured bound.
func (n Naive) Label(theory *argue.Theory) (*label.Labels, error) {
	max := n.MaxTheories
	if max <= 0 {
		max = DefaultMaxNaiveTheories
	}

	theories, ok := enumerate.FutureTheories(theory, max)
	if !ok {
		return nil, fmt.Errorf("naive oracle: future-theory search exceeded %d theories", max)
	}

	acc := label.NewLabels()
	for _, t := range theories {
		ls, err := Justification{}.Label(t)
		if err != nil {
			return nil, err
		}
		for lit, l := range ls.Literals {
			acc.MergeLiteral(lit, l)
		}
		for r, l := range ls.Rules {
			acc.MergeRule(r, l)
		}
	}
	return acc, nil
}
