package scalar

import "testing"

func TestLookupMainPassthrough(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '0', ' ', '\n', 0x00E9} {
		if e := LookupMain(r); e.Action != MainPass {
			t.Errorf("LookupMain(%U) = %+v, want MainPass", r, e)
		}
	}
}

func TestLookupMainControlAndFormatting(t *testing.T) {
	cases := []struct {
		r    rune
		kind ErrorKind
	}{
		{0x00, DisallowedControl},
		{0x7F, DisallowedControl},
		{0x81, DisallowedControl},
		{LS, LsPs},
		{PS, LsPs},
		{FF, Ff},
		{NEL, Nel},
		{ORC, ObjectReplacement},
		{0x2066, ExplicitBidi}, // LRI
		{0xFFF9, InterlinearAnnotation},
		{0xFFFE, Noncharacter},
		{0xE0000, TagCharacter},
		{0xE0001, TagCharacter},
		{0x17B4, DiscouragedScalar},
		{0x206A, DeprecatedScalar},
	}
	for _, c := range cases {
		e := LookupMain(c.r)
		if e.Action != MainReject {
			t.Errorf("LookupMain(%U).Action = %v, want MainReject", c.r, e.Action)
			continue
		}
		if e.Kind != c.kind {
			t.Errorf("LookupMain(%U).Kind = %v, want %v", c.r, e.Kind, c.kind)
		}
	}
}

// Scalars with a canonical decomposition (the Angstrom/Kelvin/Ohm
// letters, the deprecated angle brackets) never reach LookupMain: NFC
// rewrites them first, so their checks live in LookupPreNFC instead,
// alongside the Tibetan singletons, the Latin ligatures and the
// mathematical-alphanumeric duplicates. See pretable_test.go.
