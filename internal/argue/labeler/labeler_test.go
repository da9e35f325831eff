package labeler

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"argus/internal/argue"
	"argus/internal/argue/label"
)

// miniFraud builds a small fraud-detection style system: a "fraud" topic
// supported by one rule from an observable trigger, attacked by a
// contrary "innocent" literal supported by another observable.
func miniFraud(t *testing.T) *argue.System {
	t.Helper()
	sys, err := argue.NewSystem(
		[]argue.LiteralSpec{
			{ID: "trigger", Observable: true},
			{ID: "alibi", Observable: true},
			{ID: "fraud", Topic: true},
		},
		[]argue.RuleSpec{
			{ID: 1, Antecedents: []string{"trigger"}, Consequent: "fraud"},
			{ID: 2, Antecedents: []string{"alibi"}, Consequent: "~fraud"},
		},
		[]string{"fraud"},
	)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return sys
}

func mustTheory(t *testing.T, sys *argue.System, kbIDs ...string) *argue.Theory {
	t.Helper()
	qs, err := sys.GetQueryables(kbIDs)
	if err != nil {
		t.Fatalf("GetQueryables: %v", err)
	}
	th, err := argue.NewTheory(sys, qs)
	if err != nil {
		t.Fatalf("NewTheory: %v", err)
	}
	return th
}

func TestFourBoolDefendedWhenTriggerObserved(t *testing.T) {
	sys := miniFraud(t)
	th := mustTheory(t, sys, "trigger")
	ls, err := FourBool{}.Label(th)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	fraud := sys.Language["fraud"]
	if !ls.Literal(fraud).D() {
		t.Errorf("fraud should be Defended given trigger, got %v", ls.Literal(fraud))
	}
}

func TestFourBoolNotDefendedWhenAlibiObserved(t *testing.T) {
	sys := miniFraud(t)
	th := mustTheory(t, sys, "trigger", "alibi")
	ls, err := FourBool{}.Label(th)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	fraud := sys.Language["fraud"]
	l := ls.Literal(fraud)
	if l.D() {
		t.Errorf("fraud should not be Defended once alibi attacks it, got %v", l)
	}
}

func TestInconsistentKnowledgeBaseRejected(t *testing.T) {
	sys := miniFraud(t)
	qs, err := sys.GetQueryables([]string{"trigger"})
	if err != nil {
		t.Fatalf("GetQueryables: %v", err)
	}
	neg, err := sys.GetQueryable("~trigger")
	if err != nil {
		t.Fatalf("GetQueryable: %v", err)
	}
	_, err = argue.NewTheory(sys, append(qs, neg))
	if err == nil {
		t.Fatal("expected ErrInconsistentKnowledgeBase")
	}
}

func TestNaiveOracleSubsumesFourBoolDefended(t *testing.T) {
	sys := miniFraud(t)
	th := mustTheory(t, sys, "trigger")

	fb, err := FourBool{}.Label(th)
	if err != nil {
		t.Fatalf("FourBool: %v", err)
	}
	naive, err := Naive{}.Label(th)
	if err != nil {
		t.Fatalf("Naive: %v", err)
	}

	fraud := sys.Language["fraud"]
	if fb.Literal(fraud).D() && !naive.Literal(fraud).D() {
		t.Errorf("naive oracle must agree fraud can be Defended: fourbool=%v naive=%v",
			fb.Literal(fraud), naive.Literal(fraud))
	}
}

func TestFQASAssignsExactlyOneOfDefendedOutBlocked(t *testing.T) {
	sys := miniFraud(t)
	th := mustTheory(t, sys, "trigger")
	ls, err := FQAS{}.Label(th)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	for lit, l := range ls.Literals {
		n := 0
		for _, b := range []bool{l.D(), l.O(), l.B()} {
			if b {
				n++
			}
		}
		if n != 1 {
			t.Errorf("literal %s: expected exactly one of D/O/B, got %v", lit, l)
		}
	}
}

// counter01InconsistentPremises builds a system whose only rule needs a
// literal and its own negation simultaneously: no consistent knowledge
// base can ever make it fire, so the topic must come out unsatisfiable
// under Justification regardless of what gets observed, even though the
// KB-blind Satisfiability/FourBool pre-passes can't see that.
func counter01InconsistentPremises(t *testing.T) *argue.System {
	t.Helper()
	sys, err := argue.NewSystem(
		[]argue.LiteralSpec{
			{ID: "a", Observable: true},
			{ID: "t", Topic: true},
		},
		[]argue.RuleSpec{
			{ID: 1, Antecedents: []string{"a", "~a"}, Consequent: "t"},
		},
		[]string{"t"},
	)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return sys
}

// counter02SupportCycle builds a topic supported only by a rule whose
// sole antecedent is itself: the cycle never bottoms out in a leaf or
// observable, so it can never be derived.
func counter02SupportCycle(t *testing.T) *argue.System {
	t.Helper()
	sys, err := argue.NewSystem(
		[]argue.LiteralSpec{
			{ID: "t", Topic: true},
		},
		[]argue.RuleSpec{
			{ID: 1, Antecedents: []string{"t"}, Consequent: "t"},
		},
		[]string{"t"},
	)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return sys
}

// counter03AttackCycle builds a topic and its negation, each supported by
// one observable and attacking the other: a symmetric rebuttal that
// should settle Blocked rather than favoring either side.
func counter03AttackCycle(t *testing.T) *argue.System {
	t.Helper()
	sys, err := argue.NewSystem(
		[]argue.LiteralSpec{
			{ID: "o1", Observable: true},
			{ID: "o2", Observable: true},
			{ID: "t", Topic: true},
		},
		[]argue.RuleSpec{
			{ID: 1, Antecedents: []string{"o1"}, Consequent: "t"},
			{ID: 2, Antecedents: []string{"o2"}, Consequent: "~t"},
		},
		[]string{"t"},
	)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return sys
}

// counter12SupportCycleAttacker builds a topic caught in its own support
// cycle (as counter02) while also being attacked by an observable: unlike
// counter02's undisturbed cycle, the live attack keeps the topic from
// ever settling, so it must come out unstable.
func counter12SupportCycleAttacker(t *testing.T) *argue.System {
	t.Helper()
	sys, err := argue.NewSystem(
		[]argue.LiteralSpec{
			{ID: "o", Observable: true},
			{ID: "t", Topic: true},
		},
		[]argue.RuleSpec{
			{ID: 1, Antecedents: []string{"t"}, Consequent: "t"},
			{ID: 2, Antecedents: []string{"o"}, Consequent: "~t"},
		},
		[]string{"t"},
	)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return sys
}

func TestCounter01InconsistentPremisesFourBoolNotStable(t *testing.T) {
	sys := counter01InconsistentPremises(t)
	th := mustTheory(t, sys)
	ls, err := FourBool{}.Label(th)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	tl := ls.Literal(sys.Language["t"])
	if tl.IsStable() {
		t.Errorf("t should not be stable under FourBool when its only rule needs a and ~a at once, got %v", tl)
	}
	if !tl.U() || !tl.D() {
		t.Errorf("t should have both U and D set under FourBool, got %v", tl)
	}
}

func TestCounter01InconsistentPremisesJustificationAlwaysUnsatisfiable(t *testing.T) {
	sys := counter01InconsistentPremises(t)
	for _, kb := range [][]string{{}, {"a"}, {"~a"}} {
		th := mustTheory(t, sys, kb...)
		ls, err := Justification{}.Label(th)
		if err != nil {
			t.Fatalf("Label(kb=%v): %v", kb, err)
		}
		tl := ls.Literal(sys.Language["t"])
		if !tl.U() {
			t.Errorf("kb=%v: t should stay Unsatisfiable under Justification, rule 1 can never fire from a consistent KB, got %v", kb, tl)
		}
		if tl.D() || tl.O() || tl.B() {
			t.Errorf("kb=%v: t should have only U set under Justification, got %v", kb, tl)
		}
	}
}

func TestCounter02SupportCycleIsStable(t *testing.T) {
	sys := counter02SupportCycle(t)
	th := mustTheory(t, sys)

	for _, lbl := range []Labeler{FourBool{}, Satisfiability{}} {
		ls, err := lbl.Label(th)
		if err != nil {
			t.Fatalf("Label: %v", err)
		}
		tl := ls.Literal(sys.Language["t"])
		if !tl.IsStable() {
			t.Errorf("%T: t should be stable, a pure self-support cycle never derives it, got %v", lbl, tl)
		}
		if !tl.U() {
			t.Errorf("%T: t should be Unsatisfiable, got %v", lbl, tl)
		}
	}
}

func TestCounter03AttackCycleBothSidesBlocked(t *testing.T) {
	sys := counter03AttackCycle(t)
	th := mustTheory(t, sys, "o1", "o2")
	ls, err := FourBool{}.Label(th)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}

	t1 := ls.Literal(sys.Language["t"])
	t2 := ls.Literal(sys.Language["~t"])
	if !t1.IsStable() || !t2.IsStable() {
		t.Errorf("t and ~t should both be stable under a symmetric rebuttal, got t=%v ~t=%v", t1, t2)
	}
	if !t1.B() || !t2.B() {
		t.Errorf("t and ~t should both settle Blocked, got t=%v ~t=%v", t1, t2)
	}
}

func TestCounter03AttackCycleJustificationStableBlocked(t *testing.T) {
	sys := counter03AttackCycle(t)
	th := mustTheory(t, sys, "o1", "o2")
	ls, err := Justification{}.Label(th)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}

	tl := ls.Literal(sys.Language["t"])
	if !tl.IsStable() || !tl.B() {
		t.Errorf("t should be stable-blocked under Justification once both sides are actually observed, got %v", tl)
	}
}

func TestCounter12SupportCycleAttackerNotStable(t *testing.T) {
	sys := counter12SupportCycleAttacker(t)
	th := mustTheory(t, sys, "o")
	ls, err := FourBool{}.Label(th)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	tl := ls.Literal(sys.Language["t"])
	if tl.IsStable() {
		t.Errorf("t should not be stable once an observable attacker breaks its support cycle, got %v", tl)
	}
}

func TestLabellingIsDeterministic(t *testing.T) {
	sys := miniFraud(t)
	th := mustTheory(t, sys, "trigger")

	first, err := FourBool{}.Label(th)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := FourBool{}.Label(th)
		if err != nil {
			t.Fatalf("Label: %v", err)
		}
		if diff := cmp.Diff(first.Literals, again.Literals, cmp.Comparer(func(a, b label.Label) bool { return a == b })); diff != "" {
			t.Fatalf("run %d: literal labels changed (-first +again):\n%s", i, diff)
		}
	}
}
