package label

import "testing"

func TestNewAndAccessors(t *testing.T) {
	l := New(true, false, true, false)
	if !l.U() || l.D() || !l.O() || l.B() {
		t.Fatalf("New(true,false,true,false) = %v, accessors wrong", l)
	}
}

func TestClearBits(t *testing.T) {
	l := Top
	if l.ClearU().U() {
		t.Fatal("ClearU did not clear U")
	}
	if l.ClearD().D() {
		t.Fatal("ClearD did not clear D")
	}
	if l.ClearO().O() {
		t.Fatal("ClearO did not clear O")
	}
	if l.ClearB().B() {
		t.Fatal("ClearB did not clear B")
	}
	// clearing one bit must not disturb the others
	cleared := l.ClearU()
	if !cleared.D() || !cleared.O() || !cleared.B() {
		t.Fatalf("ClearU disturbed other bits: %v", cleared)
	}
}

func TestAddIsCommutativeAssociativeIdempotent(t *testing.T) {
	a := New(true, false, false, false)
	b := New(false, true, false, false)
	c := New(false, false, true, false)

	if a.Add(b) != b.Add(a) {
		t.Fatal("Add not commutative")
	}
	if a.Add(b).Add(c) != a.Add(b.Add(c)) {
		t.Fatal("Add not associative")
	}
	if a.Add(a) != a {
		t.Fatal("Add not idempotent")
	}
	if a.Add(Bottom) != a {
		t.Fatal("Bottom is not the identity for Add")
	}
}

func TestIsStable(t *testing.T) {
	cases := []struct {
		l    Label
		want bool
	}{
		{Bottom, false},
		{New(true, false, false, false), true},
		{New(false, true, false, false), true},
		{New(false, false, true, false), true},
		{New(false, false, false, true), true},
		{New(true, true, false, false), false},
		{Top, false},
	}
	for _, c := range cases {
		if got := c.l.IsStable(); got != c.want {
			t.Errorf("%v.IsStable() = %v, want %v", c.l, got, c.want)
		}
	}
}

func TestIsContestedStable(t *testing.T) {
	if !New(false, true, false, false).IsContestedStable() {
		t.Fatal("pure defended should be contested-stable")
	}
	if New(true, true, false, false).IsContestedStable() {
		t.Fatal("U and D together should not be contested-stable")
	}
	if !New(true, false, false, false).IsContestedStable() {
		t.Fatal("D absent should always be contested-stable")
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	for _, l := range []Label{Bottom, Top, New(true, false, true, false), New(false, true, false, true)} {
		s := l.String()
		got, err := ParseLabel(s)
		if err != nil {
			t.Fatalf("ParseLabel(%q) error: %v", s, err)
		}
		if got != l {
			t.Errorf("round trip %v -> %q -> %v", l, s, got)
		}
	}
}
