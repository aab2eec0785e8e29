package text

import "testing"

// Scenarios below are the concrete end-to-end cases this module's
// pipeline is required to satisfy, exercised through the string API.
// Non-ASCII and control scalars are built from numeric rune values via
// mustString rather than embedded as literal source bytes.

func mustString(rs ...rune) string {
	return string(rs)
}

const (
	runeFF     = 0x0C
	runeBOM    = 0xFEFF
	runeAngstromSign = 0x212B
	runeAngstromComposed = 0x00C5
	runeESC    = 0x1B
	runeCombiningDiaeresis = 0x0308
	runeCGJ    = 0x034F
	runeZWJ    = 0x200D
	runeCombiningGrave = 0x0300
)

func TestFromUnicodeLossyCRLF(t *testing.T) {
	// String form: no forced trailing newline.
	cases := []struct{ in, want string }{
		{"\r\n", "\n"},
		{"\r", "\n"},
		{"a\r\nb", "a\nb"},
	}
	for _, c := range cases {
		got := FromUnicodeLossy(c.in).String()
		if got != c.want {
			t.Errorf("FromUnicodeLossy(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFromUnicodeLossyFormFeed(t *testing.T) {
	in := mustString(runeFF)
	got := FromUnicodeLossy(in).String()
	want := " "
	if got != want {
		t.Errorf("FromUnicodeLossy(FF) = %q, want %q", got, want)
	}
}

func TestFromUnicodeLossyStripsLeadingBOM(t *testing.T) {
	in := mustString(runeBOM, 'h', 'e', 'l', 'l', 'o', '\n')
	got := FromUnicodeLossy(in).String()
	want := "hello\n"
	if got != want {
		t.Errorf("FromUnicodeLossy(BOM+hello) = %q, want %q", got, want)
	}
}

func TestAngstromSign(t *testing.T) {
	in := mustString(runeAngstromSign, '\n')
	got := FromUnicodeLossy(in).String()
	want := mustString(runeAngstromComposed, '\n')
	if got != want {
		t.Errorf("FromUnicodeLossy(ANGSTROM) = %q, want %q", got, want)
	}

	if _, err := FromUnicodeStrict(in); err == nil {
		t.Errorf("FromUnicodeStrict(ANGSTROM) succeeded, want SingletonLetter error")
	}
}

func TestSGREscape(t *testing.T) {
	in := mustString(runeESC, '[', '3', '1', 'm', 'r', 'e', 'd', runeESC, '[', '0', 'm', '\n')
	got := FromUnicodeLossy(in).String()
	want := "red\n"
	if got != want {
		t.Errorf("FromUnicodeLossy(sgr) = %q, want %q", got, want)
	}

	if _, err := FromUnicodeStrict(in); err == nil {
		t.Errorf("FromUnicodeStrict(sgr) succeeded, want EscapeSequence error")
	}
}

func TestStreamSafeInsertion(t *testing.T) {
	rs := []rune{'A'}
	for i := 0; i < 40; i++ {
		rs = append(rs, runeCombiningGrave)
	}
	rs = append(rs, '\n')
	in := string(rs)

	out := FromUnicodeLossy(in).AsScalars()
	run := 0
	maxRun := 0
	for _, r := range out {
		if r == runeCGJ {
			run = 0
			continue
		}
		run++
		if run > maxRun {
			maxRun = run
		}
	}
	if maxRun > 30 {
		t.Errorf("longest non-starter run = %d, want <= 30", maxRun)
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		t.Errorf("output does not end with newline: %q", string(out))
	}
}

func TestLeadingNonStarter(t *testing.T) {
	in := mustString(runeCombiningDiaeresis, 'a', '\n')
	got := FromUnicodeLossy(in).String()
	want := mustString(runeCGJ, runeCombiningDiaeresis, 'a', '\n')
	if got != want {
		t.Errorf("FromUnicodeLossy(leading combining) = %q, want %q", got, want)
	}

	if _, err := FromUnicodeStrict(in); err == nil {
		t.Errorf("FromUnicodeStrict(leading combining) succeeded, want NonStarterAtStart error")
	}
}

func TestTrailingZWJ(t *testing.T) {
	// String form: no forced trailing newline, only the BT-non-ender repair.
	in := mustString('a', runeZWJ)
	got := FromUnicodeLossy(in).String()
	want := mustString('a', runeZWJ, runeCGJ)
	if got != want {
		t.Errorf("FromUnicodeLossy(trailing ZWJ) = %q, want %q", got, want)
	}

	if _, err := FromUnicodeStrict(in); err == nil {
		t.Errorf("FromUnicodeStrict(trailing ZWJ) succeeded, want NonEnderAtEnd error")
	}
}

func TestEmptyString(t *testing.T) {
	got := FromUnicodeLossy("")
	if got.Len() != 0 {
		t.Errorf("FromUnicodeLossy(\"\") has %d scalars, want 0", got.Len())
	}
	if _, err := FromUnicodeStrict(""); err != nil {
		t.Errorf("FromUnicodeStrict(\"\") = %v, want nil", err)
	}
}

func TestEqual(t *testing.T) {
	a := FromUnicodeLossy("hello\n")
	b := FromUnicodeLossy("hello\n")
	c := FromUnicodeLossy("world\n")
	if !a.Equal(b) {
		t.Errorf("a.Equal(b) = false, want true")
	}
	if a.Equal(c) {
		t.Errorf("a.Equal(c) = true, want false")
	}
}

func TestIsBasicTextQuick(t *testing.T) {
	ok, definite := IsBasicTextQuick("hello\n")
	if !ok || !definite {
		t.Errorf("IsBasicTextQuick(hello) = (%v, %v), want (true, true)", ok, definite)
	}

	ok, definite = IsBasicTextQuick(mustString('b', 'a', 'd', 0x01, 't', 'e', 'x', 't'))
	if ok || !definite {
		t.Errorf("IsBasicTextQuick(control) = (%v, %v), want (false, true)", ok, definite)
	}

	ok, definite = IsBasicTextQuick(mustString(runeESC, '[', '3', '1', 'm'))
	if ok || !definite {
		t.Errorf("IsBasicTextQuick(esc) = (%v, %v), want (false, true)", ok, definite)
	}
}
