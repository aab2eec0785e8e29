package scalar

import "testing"

func TestLookupPreNFCCJKCompat(t *testing.T) {
	entry := LookupPreNFC(0xFA10)
	if entry.Action != PreNFCSubstitute || len(entry.Replacement) == 0 {
		t.Errorf("LookupPreNFC(0xFA10) = %+v, want a substitution", entry)
	}
}

func TestLookupPreNFCPassthrough(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '0', ' ', '\n', 0x00E9} {
		if entry := LookupPreNFC(r); entry.Action != PreNFCPass {
			t.Errorf("LookupPreNFC(%U) = %+v, want PreNFCPass", r, entry)
		}
	}
}

func TestLookupPreNFCAngstromKelvinOhm(t *testing.T) {
	// These three canonically decompose to the letter they duplicate
	// (U+03A9, U+004B, U+00C5) under NFC, so the check has to run before that happens. The
	// reference's Lossy substitution table has no arm for any of them, so
	// their Replacement is themselves, unchanged.
	for _, r := range []rune{0x2126, 0x212A, 0x212B} {
		e := LookupPreNFC(r)
		if e.Action != PreNFCReject || e.Kind != SingletonLetter {
			t.Errorf("LookupPreNFC(%U) = %+v, want PreNFCReject/SingletonLetter", r, e)
		}
		if len(e.Replacement) != 1 || e.Replacement[0] != r {
			t.Errorf("LookupPreNFC(%U).Replacement = %v, want passthrough of itself", r, e.Replacement)
		}
	}
}

func TestLookupPreNFCAngleBrackets(t *testing.T) {
	for _, r := range []rune{0x2329, 0x232A} {
		e := LookupPreNFC(r)
		if e.Action != PreNFCReject || e.Kind != DeprecatedScalar {
			t.Errorf("LookupPreNFC(%U) = %+v, want PreNFCReject/DeprecatedScalar", r, e)
		}
	}
}

func TestLookupPreNFCTibetanThreeScalarExpansion(t *testing.T) {
	cases := map[rune][]rune{
		0x0F77: {0x0FB2, 0x0F71, 0x0F80},
		0x0F79: {0x0FB3, 0x0F71, 0x0F80},
	}
	for r, want := range cases {
		e := LookupPreNFC(r)
		if e.Action != PreNFCReject {
			t.Fatalf("LookupPreNFC(%U).Action = %v, want PreNFCReject", r, e.Action)
		}
		if len(e.Replacement) != len(want) {
			t.Fatalf("LookupPreNFC(%U).Replacement = %v, want %v", r, e.Replacement, want)
		}
		for i := range want {
			if e.Replacement[i] != want[i] {
				t.Errorf("LookupPreNFC(%U).Replacement[%d] = %U, want %U", r, i, e.Replacement[i], want[i])
			}
		}
	}
}

func TestLookupPreNFCLigatures(t *testing.T) {
	cases := map[rune]string{
		0xFB00: "ff",
		0xFB01: "fi",
		0xFB02: "fl",
		0xFB03: "ffi",
		0xFB04: "ffl",
		0xFB06: "st",
	}
	for r, want := range cases {
		e := LookupPreNFC(r)
		if e.Action != PreNFCReject || string(e.Replacement) != want {
			t.Errorf("LookupPreNFC(%U) = %+v, want expansion %q", r, e, want)
		}
	}
}

func TestLookupPreNFCMathAlphanumericDuplicate(t *testing.T) {
	for _, r := range []rune{0x1D455, 0x2072} {
		e := LookupPreNFC(r)
		if e.Action != PreNFCReject || e.Kind != DeprecatedScalar {
			t.Errorf("LookupPreNFC(%U) = %+v, want PreNFCReject/DeprecatedScalar", r, e)
		}
	}
}

func TestLookupCJKCompatIdeograph(t *testing.T) {
	if _, ok := LookupCJKCompatIdeograph(0xFA10); !ok {
		t.Errorf("LookupCJKCompatIdeograph(0xFA10) not found")
	}
	if _, ok := LookupCJKCompatIdeograph('a'); ok {
		t.Errorf("LookupCJKCompatIdeograph('a') unexpectedly found")
	}
}
