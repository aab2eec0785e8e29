package scalar

// PreNFCAction is the verdict the Pre-NFC table assigns to a scalar
// value, mirroring MainAction's shape but applied strictly before the
// Stream-Safe Inserter and NFC composition run.
type PreNFCAction int

const (
	// PreNFCPass means the scalar reaches Stream-Safe/NFC unchanged.
	PreNFCPass PreNFCAction = iota
	// PreNFCSubstitute means the scalar is rewritten unconditionally, in
	// both Lossy and Strict mode: only the CJK Compatibility Ideograph
	// -> Standardized Variation Sequence expansion works this way
	// (spec.md §4.5 step 2: "failure is a fatal error if lookup table is
	// incomplete, otherwise replace").
	PreNFCSubstitute
	// PreNFCReject means Strict mode fails with Kind, and Lossy mode
	// substitutes with Replacement, mirroring MainReject.
	PreNFCReject
)

// PreNFCEntry is one row of the Pre-NFC table: a substitution or
// rejection applied before the Stream-Safe Inserter and Incremental
// Normalizer run, so that its output, not the original scalar, is what
// gets stream-safed and composed.
//
// This table, not the post-NFC Main table, is where every scalar with
// a canonical (not compatibility) decomposition has to be checked: NFC
// composes or expands those away before a post-NFC lookup would ever
// see the original code point again. U+2126 OHM SIGN, U+212A KELVIN
// SIGN, U+212B ANGSTROM SIGN, and U+2329/U+232A ANGLE BRACKETS all have
// canonical singleton decompositions that golang.org/x/text/unicode/norm
// applies during toNFC; a Main-table check on these code points would
// never fire, since by the time admit() runs, U+212B has already become
// U+00C5. spec.md §4.5 step 2 lists this exact set, plus the Latin
// ligatures and the mathematical-alphanumeric singleton duplicates,
// alongside the CJK Compatibility Ideograph expansion, as one Pre-NFC
// table for this reason.
type PreNFCEntry struct {
	Action      PreNFCAction
	Replacement []rune
	Kind        ErrorKind
}

var prePassEntry = PreNFCEntry{Action: PreNFCPass}

// LookupPreNFC answers the Pre-NFC table for r.
func LookupPreNFC(r rune) PreNFCEntry {
	if seq, ok := LookupCJKCompatIdeograph(r); ok {
		return PreNFCEntry{Action: PreNFCSubstitute, Replacement: seq}
	}
	if e, ok := preNFCExceptions[r]; ok {
		return e
	}
	if r == 0x2329 || r == 0x232A {
		return PreNFCEntry{Action: PreNFCReject, Replacement: []rune{REPL}, Kind: DeprecatedScalar}
	}
	if isUnassignedWithReplacement(r) {
		return PreNFCEntry{Action: PreNFCReject, Replacement: []rune{REPL}, Kind: DeprecatedScalar}
	}
	return prePassEntry
}

// isUnassignedWithReplacement is the set of code points that are
// unassigned in the version of Unicode the reference table targets but
// already have a de-facto canonical replacement (mostly Indic digit
// duplicates and mathematical-alphanumeric duplicates of existing
// letters).
func isUnassignedWithReplacement(r rune) bool {
	switch r {
	case 0x9e4, 0x9e5, 0xa64, 0xa65, 0xae4, 0xae5, 0xb64, 0xb65,
		0xbe4, 0xbe5, 0xc64, 0xc65, 0xce4, 0xce5, 0xd64, 0xd65,
		0x2072, 0x2073,
		0x1d455, 0x1d49d, 0x1d4a0, 0x1d4a1, 0x1d4a3, 0x1d4a4, 0x1d4a7, 0x1d4a8,
		0x1d4ad, 0x1d4ba, 0x1d4bc, 0x1d4c4, 0x1d506, 0x1d50b, 0x1d50c, 0x1d515,
		0x1d51d, 0x1d53a, 0x1d53f, 0x1d545, 0x1d547, 0x1d548, 0x1d549, 0x1d551:
		return true
	}
	return false
}

// preNFCExceptions holds the scalars whose Pre-NFC substitution is a
// specific, non-derivable sequence: deprecated single-letter
// decompositions, the Kelvin/Angstrom/Ohm singleton letters, and
// the Latin ligatures. Each entry mirrors one replace.rs/check.rs match
// arm exactly. Only the Kelvin/Angstrom/Ohm letters have canonical
// decompositions, which NFC applies, so their check has to run on the
// original scalar here rather than after composition has already
// consumed it. The others (the ligatures, U+0149 and U+0F77/U+0F79 with
// compatibility-only decompositions, and the rest with none) pass
// through NFC unchanged and sit in this table alongside them.
var preNFCExceptions = map[rune]PreNFCEntry{
	0x149: {PreNFCReject, []rune{0x2bc, 0x6e}, SingletonLetter},
	0x673: {PreNFCReject, []rune{0x627, 0x65f}, SingletonLetter},
	// The reference implementation's replace.rs uses a two-scalar
	// expansion here; per an explicit note in this module's authoritative
	// source, the correct expansions are the three-scalar ones below.
	0xf77:   {PreNFCReject, []rune{0xfb2, 0xf71, 0xf80}, SingletonLetter},
	0xf79:   {PreNFCReject, []rune{0xfb3, 0xf71, 0xf80}, SingletonLetter},
	0x17a3:  {PreNFCReject, []rune{0x17a2}, SingletonLetter},
	0x17a4:  {PreNFCReject, []rune{0x17a2, 0x17b6}, SingletonLetter},
	// U+2126 OHM SIGN, U+212A KELVIN SIGN and U+212B ANGSTROM SIGN are
	// flagged by the reference implementation's strict checker as
	// singleton-letter duplicates, but its Lossy substitution table has
	// no arm for them, so Lossy passes each through unchanged (letting
	// NFC compose them normally afterward).
	0x2126:  {PreNFCReject, []rune{0x2126}, SingletonLetter},
	0x212a:  {PreNFCReject, []rune{0x212a}, SingletonLetter},
	0x212b:  {PreNFCReject, []rune{0x212b}, SingletonLetter},
	0x2df5:  {PreNFCReject, []rune{0x2ded, 0x2dee}, LigatureOrDeprecatedForm},
	0x111c4: {PreNFCReject, []rune{0x1118f, 0x11180}, LigatureOrDeprecatedForm},
	0xfb00:  {PreNFCReject, []rune{'f', 'f'}, LigatureOrDeprecatedForm},
	0xfb01:  {PreNFCReject, []rune{'f', 'i'}, LigatureOrDeprecatedForm},
	0xfb02:  {PreNFCReject, []rune{'f', 'l'}, LigatureOrDeprecatedForm},
	0xfb03:  {PreNFCReject, []rune{'f', 'f', 'i'}, LigatureOrDeprecatedForm},
	0xfb04:  {PreNFCReject, []rune{'f', 'f', 'l'}, LigatureOrDeprecatedForm},
	0xfb05:  {PreNFCReject, []rune{0x17f, 't'}, LigatureOrDeprecatedForm},
	0xfb06:  {PreNFCReject, []rune{'s', 't'}, LigatureOrDeprecatedForm},
}

// LookupCJKCompatIdeograph returns the Standardized Variation Sequence a
// CJK Compatibility Ideograph is rewritten to, and whether r is one.
func LookupCJKCompatIdeograph(r rune) ([]rune, bool) {
	seq, ok := cjkCompatVariationSequence[r]
	return seq, ok
}
