package labeler

import (
	"argus/internal/argue"
	"argus/internal/argue/label"
)

// Satisfiability implements component C: a cheap pre-pass that marks a
// literal Unsatisfiable if no combination of rules and free observable
// choices could ever derive it. It seeds every observable literal as
// freely choosable, except one whose contrary is already in the
// knowledge base — observing the contrary rules it out before any rule
// gets a chance to fire, unlike Satisfiable below, which only frees
// literals already in the theory's knowledge base itself.
//
// Unlike the four-boolean and justification labellers, this is a simple
// repeat-until-no-change forward chain: a literal only ever gets easier to
// satisfy as rules fire, so there is no need for the contrary-aware
// worklist driver those use.
type Satisfiability struct{}

// Label runs the satisfiability pre-pass over theory.System, seeding every
// observable literal free unless its contrary is already observed.
func (Satisfiability) Label(theory *argue.Theory) (*label.Labels, error) {
	return satisfiabilityPass(theory.System, theory.KnowledgeBaseSet(), true, label.Top), nil
}

// Satisfiable implements the knowledge-base-aware counterpart: only
// literals already observed in the theory are seeded as free, everything
// else must be derived through rules whose antecedents are themselves
// satisfiable.
type Satisfiable struct{}

// Label runs the pre-pass seeded from theory's actual knowledge base. A
// literal or rule that turns out derivable is stamped with U already
// cleared — unlike Satisfiability's Top stamp — since derivability here is
// grounded in the theory's real knowledge base rather than a free
// observable choice, so it settles the question for good; Justification
// relies on this to never revisit U itself.
func (Satisfiable) Label(theory *argue.Theory) (*label.Labels, error) {
	return satisfiabilityPass(theory.System, theory.KnowledgeBaseSet(), false, label.Top.ClearU()), nil
}

// satisfiabilityPass computes, for every literal, whether it is
// derivable: either freely seeded or the consequent of a rule whose every
// antecedent is derivable. When freeObservables is true (Satisfiability),
// an observable literal is seeded free unless one of its contraries is
// already in kb; when false (Satisfiable), only literals actually in kb
// are seeded. Derivability only grows monotonically as the pass iterates,
// so plain repeat-until-no-change converges; a derivable literal (and any
// rule that fired in deriving it) is stamped derivedStamp, everything else
// keeps U set and the rest clear. FourBool and Justification inherit this
// *label.Labels wholesale as their starting point, rule labels included,
// so a rule that can never fire stays permanently Unsatisfiable through
// both.
func satisfiabilityPass(sys *argue.System, kb map[*argue.Literal]bool, freeObservables bool, derivedStamp label.Label) *label.Labels {
	derivable := make(map[*argue.Literal]bool, len(sys.Language))
	fired := make(map[*argue.Rule]bool, len(sys.Rules))

	for _, lit := range sys.Language {
		if freeObservables {
			if lit.Observable && !anyContraryIn(lit, kb) {
				derivable[lit] = true
			}
		} else if kb[lit] {
			derivable[lit] = true
		}
	}

	for {
		changed := false
		for _, r := range sys.Rules {
			if fired[r] {
				continue
			}
			ok := true
			for _, a := range r.Antecedents {
				if !derivable[a] {
					ok = false
					break
				}
			}
			if ok {
				fired[r] = true
				derivable[r.Consequent] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	out := label.NewLabels()
	for _, lit := range sys.Language {
		if derivable[lit] {
			out.SetLiteral(lit, derivedStamp)
		} else {
			out.SetLiteral(lit, label.New(true, false, false, false))
		}
	}
	for _, r := range sys.Rules {
		if fired[r] {
			out.SetRule(r, derivedStamp)
		} else {
			out.SetRule(r, label.New(true, false, false, false))
		}
	}
	return out
}

// anyContraryIn reports whether any contrary of lit is a member of kb.
func anyContraryIn(lit *argue.Literal, kb map[*argue.Literal]bool) bool {
	for _, c := range lit.Contraries {
		if kb[c] {
			return true
		}
	}
	return false
}
