package labeler

import (
	"argus/internal/argue"
	"argus/internal/argue/label"
)

// TimedFourBool is FourBool instrumented with per-literal and per-rule
// recolor counters, used to benchmark how many times the worklist
// revisits each node (spec §4.D's "Timed variant"). It delegates every
// clause to FourBool's logic and only adds the counting.
type TimedFourBool struct{}

// TimedResult pairs a labelling run's output with its recolor counts.
type TimedResult struct {
	Labels        *label.Labels
	LiteralColors map[*argue.Literal]int
	RuleColors    map[*argue.Rule]int
}

// Label runs FourBool and discards the counters; it exists so
// TimedFourBool satisfies Labeler alongside LabelTimed.
func (t TimedFourBool) Label(theory *argue.Theory) (*label.Labels, error) {
	res, err := t.LabelTimed(theory)
	if err != nil {
		return nil, err
	}
	return res.Labels, nil
}

// LabelTimed runs FourBool's own clause closures, wrapped with counters,
// so the two can never drift apart: fixing a clause in fourbool.go fixes
// it here too.
func (TimedFourBool) LabelTimed(theory *argue.Theory) (*TimedResult, error) {
	ls, err := Satisfiability{}.Label(theory)
	if err != nil {
		return nil, err
	}

	sys := theory.System
	kb := theory.KnowledgeBaseSet()
	litColors := make(map[*argue.Literal]int)
	ruleColors := make(map[*argue.Rule]int)

	colorRule := fourBoolColorRule(ls)
	colorLiteral := fourBoolColorLiteral(ls, kb)

	timedColorRule := func(r *argue.Rule) bool {
		ruleColors[r]++
		return colorRule(r)
	}
	timedColorLiteral := func(lit *argue.Literal) bool {
		litColors[lit]++
		return colorLiteral(lit)
	}

	runPropagation(sys, colorFuncs{colorLiteral: timedColorLiteral, colorRule: timedColorRule})
	return &TimedResult{Labels: ls, LiteralColors: litColors, RuleColors: ruleColors}, nil
}
