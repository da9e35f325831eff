package labeler

import (
	"argus/internal/argue"
	"argus/internal/argue/label"
)

// FourBool implements component D: the core four-boolean stability
// labeller. It starts from the satisfiability pre-pass's own labelling —
// Top for every literal and rule the pre-pass found reachable, all-false-
// but-U for one it proved could never fire — and the worklist driver only
// ever clears bits from there, never sets them — the monotone-decreasing
// direction spec §9 calls out as the reason a Datalog engine (built for
// monotone-increasing least-fixed-point evaluation) cannot host this
// algorithm directly.
//
// Clause names below (L-U-a, L-D-a, ...) mirror the specification's own
// naming so the two can be read side by side:
//
//	L-U-a/b: U is cleared when the literal is an observed queryable, or
//	       when some child rule (a rule concluding it) has U cleared.
//	L-D-a/b/c: D is cleared when an observable literal has a contrary in
//	       the knowledge base; for a non-observable literal, when no child
//	       rule has D, or some rule concluding a contrary has neither U
//	       nor O.
//	L-O-a..e: O is cleared when an observable literal is observed; when
//	       no child rule has O, or some child rule has neither U nor O —
//	       for an observable literal only once each of its contraries has
//	       one of its own contraries observed.
//	L-O-f: O is also cleared when no child rule has any of D, O or B
//	       (no rule-based argument is left).
//	L-B-a..d: B is cleared for every observable literal; for a
//	       non-observable one, when no child rule has D or B, or — when no
//	       rule concluding a contrary has B or D — when no child rule has
//	       B or some child rule has none of U, O and B.
//	R-U-a: a rule keeps U only while some antecedent has U.
//	R-D-a: a rule loses D as soon as some antecedent lacks D.
//	R-O-a: a rule keeps O only while some antecedent has O.
//	R-B-a/b: a rule loses B when no antecedent has B, or when some
//	       antecedent has neither B nor D.
type FourBool struct{}

// Label runs the four-boolean labeller to its fixed point.
func (FourBool) Label(theory *argue.Theory) (*label.Labels, error) {
	ls, err := Satisfiability{}.Label(theory)
	if err != nil {
		return nil, err
	}

	sys := theory.System
	kb := theory.KnowledgeBaseSet()

	runPropagation(sys, colorFuncs{
		colorLiteral: fourBoolColorLiteral(ls, kb),
		colorRule:    fourBoolColorRule(ls),
	})
	return ls, nil
}

// fourBoolColorRule builds the R-U-a/R-D-a/R-O-a/R-B-a/R-B-b clause set:
// each clears its bit independently from the antecedents' current labels,
// never re-sets one, so repeated calls only ever narrow a rule's label.
func fourBoolColorRule(ls *label.Labels) func(r *argue.Rule) bool {
	return func(r *argue.Rule) bool {
		before := ls.Rule(r)
		l := before

		allAntNotU, anyAntNotD, allAntNotO, allAntNotB, anyAntNotBD := true, false, true, true, false
		for _, a := range r.Antecedents {
			al := ls.Literal(a)
			if al.U() {
				allAntNotU = false
			}
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

		if allAntNotU {
			l = l.ClearU() // R-U-a
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

// fourBoolColorLiteral builds the L-U/L-D/L-O/L-B clause set. Every
// clause runs unconditionally on every call — none of them special-cases
// an already-unsatisfiable literal, since child and contrary rules may
// have just been recolored within the same propagation step.
func fourBoolColorLiteral(ls *label.Labels, kb map[*argue.Literal]bool) func(lit *argue.Literal) bool {
	return func(lit *argue.Literal) bool {
		before := ls.Literal(lit)
		l := before
		inKB := kb[lit]

		// U
		if lit.Observable && inKB {
			l = l.ClearU() // L-U-a
		} else {
			anyChildNotU := false
			for _, r := range lit.Children {
				if !ls.Rule(r).U() {
					anyChildNotU = true
					break
				}
			}
			if anyChildNotU {
				l = l.ClearU() // L-U-b
			}
		}

		// D
		if lit.Observable {
			anyContraryInKB := false
			for _, c := range lit.Contraries {
				if kb[c] {
					anyContraryInKB = true
					break
				}
			}
			if anyContraryInKB {
				l = l.ClearD() // L-D-a
			}
		} else {
			allChildNotD := true
			for _, r := range lit.Children {
				if ls.Rule(r).D() {
					allChildNotD = false
					break
				}
			}
			if allChildNotD {
				l = l.ClearD() // L-D-b
			} else if anyContraryRuleNotUNotO(ls, lit) {
				l = l.ClearD() // L-D-c
			}
		}

		// O
		if lit.Observable {
			if inKB {
				l = l.ClearO() // L-O-a
			} else if allContrariesHaveContraryInKB(kb, lit) {
				allChildNotO := true
				for _, r := range lit.Children {
					if ls.Rule(r).O() {
						allChildNotO = false
						break
					}
				}
				if allChildNotO {
					l = l.ClearO() // L-O-b
				} else if anyChildNotUNotO(ls, lit) {
					l = l.ClearO() // L-O-c
				}
			}
		} else {
			allChildNotO := true
			for _, r := range lit.Children {
				if ls.Rule(r).O() {
					allChildNotO = false
					break
				}
			}
			if allChildNotO {
				l = l.ClearO() // L-O-d
			} else if anyChildNotUNotO(ls, lit) {
				l = l.ClearO() // L-O-e
			}
		}
		allChildNotDNotONotB := true
		for _, r := range lit.Children {
			rl := ls.Rule(r)
			if rl.D() || rl.O() || rl.B() {
				allChildNotDNotONotB = false
				break
			}
		}
		if allChildNotDNotONotB {
			l = l.ClearO() // L-O-f
		}

		// B
		if lit.Observable {
			l = l.ClearB() // L-B-a
		} else {
			allChildNotDNotB := true
			for _, r := range lit.Children {
				rl := ls.Rule(r)
				if rl.D() || rl.B() {
					allChildNotDNotB = false
					break
				}
			}
			if allChildNotDNotB {
				l = l.ClearB() // L-B-b
			} else if allContraryRuleNotBNotD(ls, lit) {
				allChildNotB := true
				for _, r := range lit.Children {
					if ls.Rule(r).B() {
						allChildNotB = false
						break
					}
				}
				if allChildNotB {
					l = l.ClearB() // L-B-c
				} else if anyChildNotUNotONotB(ls, lit) {
					l = l.ClearB() // L-B-d
				}
			}
		}

		ls.SetLiteral(lit, l)
		return l != before
	}
}

func anyContraryRuleNotUNotO(ls *label.Labels, lit *argue.Literal) bool {
	for _, c := range lit.Contraries {
		for _, cr := range c.Children {
			crl := ls.Rule(cr)
			if !crl.U() && !crl.O() {
				return true
			}
		}
	}
	return false
}

func allContrariesHaveContraryInKB(kb map[*argue.Literal]bool, lit *argue.Literal) bool {
	for _, c := range lit.Contraries {
		found := false
		for _, cc := range c.Contraries {
			if kb[cc] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func anyChildNotUNotO(ls *label.Labels, lit *argue.Literal) bool {
	for _, r := range lit.Children {
		rl := ls.Rule(r)
		if !rl.U() && !rl.O() {
			return true
		}
	}
	return false
}

func allContraryRuleNotBNotD(ls *label.Labels, lit *argue.Literal) bool {
	for _, c := range lit.Contraries {
		for _, cr := range c.Children {
			crl := ls.Rule(cr)
			if crl.B() || crl.D() {
				return false
			}
		}
	}
	return true
}

func anyChildNotUNotONotB(ls *label.Labels, lit *argue.Literal) bool {
	for _, r := range lit.Children {
		rl := ls.Rule(r)
		if !rl.U() && !rl.O() && !rl.B() {
			return true
		}
	}
	return false
}
