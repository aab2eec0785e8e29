package scalar

// MainAction is the verdict the Main table assigns to a scalar value:
// pass it through unchanged, or substitute/reject it.
type MainAction int

const (
	// MainPass means the scalar is valid Basic Text content as-is.
	MainPass MainAction = iota
	// MainReject means Strict mode fails with Kind, and Lossy mode
	// substitutes the scalar with Replacement (nil means elide it
	// entirely; a non-nil, possibly empty, slice is the literal
	// replacement sequence).
	MainReject
)

// MainEntry is one row of the Main table (spec.md §4.5, §6).
type MainEntry struct {
	Action      MainAction
	Replacement []rune
	Kind        ErrorKind
}

var passEntry = MainEntry{Action: MainPass}

// LookupMain answers the Main table for r: what a Lossy-mode transducer
// substitutes it with, and what ErrorKind a Strict-mode transducer
// reports. Grounded directly on the reference implementation's
// replace() (Lossy substitutions) and check_basic_text_char() (Strict
// rejections), which enumerate the same scalar set from two ends.
//
// LookupMain only ever sees a scalar after Pre-NFC substitution and NFC
// composition have already run, so it must not be asked to classify
// anything with a canonical decomposition: NFC would have already
// rewritten it into something else by the time it gets here. Those
// scalars (OHM/KELVIN/ANGSTROM, the deprecated angle brackets) live in
// the Pre-NFC table instead, together with the Latin ligatures, the
// other deprecated forms and the mathematical-alphanumeric duplicates;
// see pretable.go.
func LookupMain(r rune) MainEntry {
	if e, ok := mainExceptions[r]; ok {
		return e
	}

	switch CategoryOf(r) {
	case LSCategory, PSCategory:
		return MainEntry{MainReject, []rune{' '}, LsPs}
	case FFCategory:
		return MainEntry{MainReject, []rune{' '}, Ff}
	case NELCategory:
		return MainEntry{MainReject, []rune{' '}, Nel}
	case ORCCategory:
		return MainEntry{MainReject, []rune{REPL}, ObjectReplacement}
	case BOMCategory:
		// A leading BOM is stripped upstream (§4.5 step 9); one that
		// reaches the Main table is mid-stream and becomes WJ.
		return MainEntry{MainReject, []rune{WJ}, BomMidstream}
	case C0, DEL, C1:
		return MainEntry{MainReject, []rune{REPL}, DisallowedControl}
	case IA:
		return MainEntry{MainReject, []rune{REPL}, InterlinearAnnotation}
	case DISCOURAGED:
		return MainEntry{MainReject, []rune{REPL}, DiscouragedScalar}
	case DEPRECATED_FORMAT:
		return MainEntry{MainReject, []rune{REPL}, DeprecatedScalar}
	case EXPLICIT_BIDI:
		return MainEntry{MainReject, []rune{REPL}, ExplicitBidi}
	case NONCHARACTER:
		return MainEntry{MainReject, []rune{REPL}, Noncharacter}
	case TAG:
		return MainEntry{MainReject, []rune{REPL}, TagCharacter}
	case PRIVATE_USE:
		// Not rejected by the reference implementation; added per the
		// error-kind table this module targets.
		return MainEntry{MainReject, []rune{REPL}, PrivateUse}
	case CJK_COMPAT_IDEOGRAPH, FULLWIDTH_COMPAT, TABCategory, LFCategory, CRCategory, OTHER:
		return passEntry
	}
	return passEntry
}

// mainExceptions holds the scalars whose Main-table verdict cannot be
// derived from CategoryOf alone. Unlike the Pre-NFC singleton letters,
// none of these decompose under NFC, so it is safe to match them here, after
// composition has already run.
var mainExceptions = map[rune]MainEntry{
	// U+E0001 LANGUAGE TAG is checked ahead of the generic tag-character
	// range in the reference implementation (a distinct error message),
	// but shares the same Lossy substitution and collapses into the
	// same TagCharacter kind here; see DESIGN.md.
	0xe0001: {MainReject, []rune{REPL}, TagCharacter},
}
