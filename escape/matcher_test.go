package escape

import "testing"

func TestMatcherSGR(t *testing.T) {
	m := NewMatcher()
	input := []rune{runeESC, '[', '3', '1', 'm'}
	var ok bool
	for _, r := range input {
		ok = m.Push(r, false)
	}
	if !ok {
		t.Fatalf("Matcher did not resolve after full SGR sequence")
	}
	match := m.Result(false)
	if match.Family != FamilySGR {
		t.Errorf("family = %v, want SGR", match.Family)
	}
	if string(match.Matched) != string(input) {
		t.Errorf("matched = %q, want %q", string(match.Matched), string(input))
	}
	if len(match.Remainder) != 0 {
		t.Errorf("remainder = %q, want empty", string(match.Remainder))
	}
}

// runeSOH is a C0 control outside both the '['/']' dispatch bytes and
// the 0x40-0x7E final-byte range, so the bare-ESC grammar leaves it
// unconsumed as lookahead for whatever follows.
const runeSOH = 0x01

func TestMatcherResolvesEarlyOnBareESC(t *testing.T) {
	m := NewMatcher()
	ok1 := m.Push(runeESC, false)
	ok2 := m.Push(runeSOH, false)
	if ok1 {
		t.Errorf("Matcher resolved after only ESC, want needMore")
	}
	if !ok2 {
		t.Fatalf("Matcher did not resolve after ESC + non-final byte")
	}
	match := m.Result(false)
	if match.Family != FamilyESC {
		t.Errorf("family = %v, want ESC", match.Family)
	}
	if len(match.Remainder) != 1 || match.Remainder[0] != runeSOH {
		t.Errorf("remainder = %v, want [runeSOH]", match.Remainder)
	}
}

func TestMatcherReset(t *testing.T) {
	m := NewMatcher()
	m.Push(runeESC, false)
	m.Push(runeSOH, false)
	match := m.Result(false)
	m.Reset(match.Remainder)
	if got := m.snapshot(); len(got) != 1 || got[0] != runeSOH {
		t.Errorf("after Reset, pending = %v, want [runeSOH]", got)
	}
}
