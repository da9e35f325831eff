package labeler

import (
	"argus/internal/argue"
	"argus/internal/argue/label"
)

// FQAS is the baseline labeller against which the other components are
// benchmarked (spec §4's "FQAS" row): it assigns each literal exactly one
// of Defended, Out, or Blocked by exact pattern match against its
// knowledge-base membership and its children's labels, with no
// contrary-awareness and no satisfiability pre-pass. It exists to
// reproduce the simpler literature baseline the newer labellers improve
// on, not to be used in production labelling.
type FQAS struct{}

// Label runs the FQAS baseline to its fixed point.
func (FQAS) Label(theory *argue.Theory) (*label.Labels, error) {
	ls := label.NewLabels()
	sys := theory.System
	kb := theory.KnowledgeBaseSet()

	for _, lit := range sys.Language {
		ls.SetLiteral(lit, label.Top.ClearU())
	}
	for _, r := range sys.Rules {
		ls.SetRule(r, label.Top)
	}

	colorRule := func(r *argue.Rule) bool {
		before := ls.Rule(r)
		allD := true
		for _, a := range r.Antecedents {
			if !ls.Literal(a).D() {
				allD = false
				break
			}
		}
		after := label.New(false, allD, !allD, false)
		ls.SetRule(r, after)
		return after != before
	}

	colorLiteral := func(lit *argue.Literal) bool {
		before := ls.Literal(lit)
		inKB := kb[lit]

		childDefended, anyChildren := false, len(lit.Children) > 0
		for _, r := range lit.Children {
			if ls.Rule(r).D() {
				childDefended = true
			}
		}

		d := inKB || childDefended
		o := !d && anyChildren
		b := !d && !o

		after := label.New(false, d, o, b)
		ls.SetLiteral(lit, after)
		return after != before
	}

	runPropagation(sys, colorFuncs{colorLiteral: colorLiteral, colorRule: colorRule})
	return ls, nil
}
