// Package label implements StabilityLabel: the four-boolean value a
// labeller assigns to each literal and rule, and the Labels table that
// pairs literals/rules with their labels.
package label

import "fmt"

// Label is a four-boolean stability label packed into a single byte, per
// spec §9: "turns the inner comparisons and 'did the label change?' test
// into single-instruction operations." The four bits stand for
// Unsatisfiable, Defended, Out and Blocked.
type Label uint8

const (
	bitU Label = 1 << iota
	bitD
	bitO
	bitB
)

const (
	// Bottom is the impossible label (0,0,0,0) — the initial value for the
	// exact oracle's accumulator.
	Bottom Label = 0
	// Top is the fully uncertain label (1,1,1,1) — the initial value used
	// by the four-boolean and FQAS labellers.
	Top Label = bitU | bitD | bitO | bitB
)

// New builds a Label from its four booleans, in (U, D, O, B) order.
func New(unsatisfiable, defended, out, blocked bool) Label {
	var l Label
	if unsatisfiable {
		l |= bitU
	}
	if defended {
		l |= bitD
	}
	if out {
		l |= bitO
	}
	if blocked {
		l |= bitB
	}
	return l
}

// U reports the unsatisfiable bit.
func (l Label) U() bool { return l&bitU != 0 }

// D reports the defended bit.
func (l Label) D() bool { return l&bitD != 0 }

// O reports the out bit.
func (l Label) O() bool { return l&bitO != 0 }

// B reports the blocked bit.
func (l Label) B() bool { return l&bitB != 0 }

// ClearU returns l with the unsatisfiable bit cleared.
func (l Label) ClearU() Label { return l &^ bitU }

// ClearD returns l with the defended bit cleared.
func (l Label) ClearD() Label { return l &^ bitD }

// ClearO returns l with the out bit cleared.
func (l Label) ClearO() Label { return l &^ bitO }

// ClearB returns l with the blocked bit cleared.
func (l Label) ClearB() Label { return l &^ bitB }

// Add is the label-arithmetic addition of spec §3: component-wise OR,
// used to combine labels across future theories in the exact oracle. It
// is commutative, associative, idempotent, and has identity Bottom.
func (l Label) Add(other Label) Label { return l | other }

// IsStable reports whether exactly one of the four booleans is set.
func (l Label) IsStable() bool {
	n := 0
	for _, b := range []bool{l.U(), l.D(), l.O(), l.B()} {
		if b {
			n++
		}
	}
	return n == 1
}

// IsContestedStable reports whether the label is not the case that
// Defended holds alongside any of Unsatisfiable/Out/Blocked — i.e. it is
// either stable-defended, or definitely not defended at all.
func (l Label) IsContestedStable() bool {
	return !(l.D() && (l.U() || l.O() || l.B()))
}

// String renders the label in the specification's textual form:
// "(U:{bool}, D:{bool}, O:{bool}, B:{bool})" with Go/Pythonic Title-case
// booleans, matching the True/False rendering spec §6 requires.
func (l Label) String() string {
	return fmt.Sprintf("(U:%s, D:%s, O:%s, B:%s)",
		renderBool(l.U()), renderBool(l.D()), renderBool(l.O()), renderBool(l.B()))
}

func renderBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// ParseLabel parses a label rendered by String back into a Label.
func ParseLabel(s string) (Label, error) {
	var u, d, o, b string
	_, err := fmt.Sscanf(s, "(U:%s D:%s O:%s B:%s", &u, &d, &o, &b)
	if err != nil {
		return Bottom, fmt.Errorf("parse label %q: %w", s, err)
	}
	trim := func(s string) string {
		s = trimSuffix(s, ",")
		s = trimSuffix(s, ")")
		return s
	}
	return New(isTrue(trim(u)), isTrue(trim(d)), isTrue(trim(o)), isTrue(trim(b))), nil
}

func isTrue(s string) bool { return s == "True" }

func trimSuffix(s, suffix string) string {
	if len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix {
		return s[:len(s)-len(suffix)]
	}
	return s
}
