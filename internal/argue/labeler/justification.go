package labeler

import (
	"argus/internal/argue"
	"argus/internal/argue/label"
)

// Justification implements component E: the acceptability/justification
// labeller. It starts from the knowledge-base-aware Satisfiable pre-pass
// as-is — rule labels included — and never touches U again: whatever the
// pre-pass decided about reachability from the actual observations is
// final, only D/O/B narrow further as rules and contraries are
// considered.
type Justification struct{}

// Label runs the justification labeller to its fixed point.
func (Justification) Label(theory *argue.Theory) (*label.Labels, error) {
	ls, err := Satisfiable{}.Label(theory)
	if err != nil {
		return nil, err
	}

	sys := theory.System
	kb := theory.KnowledgeBaseSet()

	runPropagation(sys, colorFuncs{
		colorLiteral: justificationColorLiteral(ls, kb),
		colorRule:    justificationColorRule(ls),
	})
	return ls, nil
}

// justificationColorRule builds the R-D-a/R-O-a/R-B-a/R-B-b clause set —
// the same shape as FourBool's, minus the R-U-a clause: Justification
// never reconsiders a rule's Unsatisfiable bit once the satisfiability
// pre-pass has set it.
func justificationColorRule(ls *label.Labels) func(r *argue.Rule) bool {
	return func(r *argue.Rule) bool {
		before := ls.Rule(r)
		l := before

		anyAntNotD, allAntNotO, allAntNotB, anyAntNotBD := false, true, true, false
		for _, a := range r.Antecedents {
			al := ls.Literal(a)
			if !al.D() {
				anyAntNotD = true
			}
			if al.O() {
				allAntNotO = false
			}
			if al.B() {
				allAntNotB = false
			}
			if !al.B() && !al.D() {
				anyAntNotBD = true
			}
		}

		if anyAntNotD {
			l = l.ClearD() // R-D-a
		}
		if allAntNotO {
			l = l.ClearO() // R-O-a
		}
		if allAntNotB {
			l = l.ClearB() // R-B-a
		}
		if anyAntNotBD {
			l = l.ClearB() // R-B-b
		}

		ls.SetRule(r, l)
		return l != before
	}
}

// justificationColorLiteral builds the L-D/L-O/L-B clause set from
// acceptability_labeler.py's JustificationLabeler.color_literal, again
// leaving U untouched.
func justificationColorLiteral(ls *label.Labels, kb map[*argue.Literal]bool) func(lit *argue.Literal) bool {
	return func(lit *argue.Literal) bool {
		before := ls.Literal(lit)
		l := before
		inKB := kb[lit]

		if lit.Observable {
			if inKB {
				l = l.ClearB() // L-B-a
				l = l.ClearO() // L-O-a
			} else if anyContraryInKB(lit, kb) {
				l = l.ClearB() // L-B-b
				l = l.ClearD() // L-D-a
			}
		}

		if !inKB {
			allChildNotD := true
			for _, r := range lit.Children {
				if ls.Rule(r).D() {
					allChildNotD = false
					break
				}
			}
			if allChildNotD {
				l = l.ClearD() // L-D-b
			}
			if anyContraryRuleNotUNotO(ls, lit) {
				l = l.ClearD() // L-D-c
			}
		}

		if !anyContraryInKB(lit, kb) {
			allChildNotO := true
			for _, r := range lit.Children {
				if ls.Rule(r).O() {
					allChildNotO = false
					break
				}
			}
			if allChildNotO {
				l = l.ClearO() // L-O-b
			}
			if anyChildNotUNotO(ls, lit) {
				l = l.ClearO() // L-O-c
			}
		}

		allChildNotDNotB := true
		for _, r := range lit.Children {
			rl := ls.Rule(r)
			if rl.D() || rl.B() {
				allChildNotDNotB = false
				break
			}
		}
		if allChildNotDNotB {
			l = l.ClearB() // L-B-c
		}

		allChildNotB := true
		for _, r := range lit.Children {
			if ls.Rule(r).B() {
				allChildNotB = false
				break
			}
		}
		if allChildNotB && allContraryRuleNotBNotD(ls, lit) {
			l = l.ClearB() // L-B-d
		}
		if anyChildNotUNotONotB(ls, lit) && allContraryRuleNotBNotD(ls, lit) {
			l = l.ClearB() // L-B-e
		}

		ls.SetLiteral(lit, l)
		return l != before
	}
}

// anyContraryInKB reports whether any contrary of lit is a member of kb.
func anyContraryInKB(lit *argue.Literal, kb map[*argue.Literal]bool) bool {
	for _, c := range lit.Contraries {
		if kb[c] {
			return true
		}
	}
	return false
}
