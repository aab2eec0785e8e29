package scalar

import "golang.org/x/text/unicode/bidi"

// isExplicitBidiFormattingCharacter reports whether r is one of the
// explicit bidirectional formatting characters (LRE, RLE, LRO, RLO, PDF,
// LRI, RLI, FSI, PDI) that the Main table disallows outright. Membership
// is resolved through the same compact Bidi_Class trie the teacher's own
// bidi package builds on (golang.org/x/text/unicode/bidi gives each of
// these nine its own class, bidi.LRE through bidi.PDI), rather than a
// hand-maintained list.
func isExplicitBidiFormattingCharacter(r rune) bool {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.LRE, bidi.RLE, bidi.PDF, bidi.LRO, bidi.RLO,
		bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
		return true
	}
	return false
}

func explicitBidiClass(r rune) bidiClass {
	if !isExplicitBidiFormattingCharacter(r) {
		return bidiClassNone
	}
	switch r {
	case 0x2066, 0x2067, 0x2068:
		return bidiClassIsolate
	case 0x2069:
		return bidiClassPDI
	default:
		return bidiClassEmbeddingOrOverride
	}
}

type bidiClass int

const (
	bidiClassNone bidiClass = iota
	bidiClassEmbeddingOrOverride
	bidiClassIsolate
	bidiClassPDI
)

// BidiDepthDelta returns the change in BD2 isolate/override nesting
// depth that emitting r would cause: +1 for an embedding, override, or
// isolate initiator, -1 for a terminator (PDF or PDI), 0 otherwise.
//
// The current Main table disallows all nine explicit formatting
// characters outright (see spec.md REDESIGN FLAGS / Open Questions), so
// in the shipped table this never actually executes along a successful
// conversion path; it is kept so a future, more permissive Main table
// can reuse the depth bookkeeping without re-deriving it.
func BidiDepthDelta(r rune) int {
	if r == 0x202C { // PDF
		return -1
	}
	switch explicitBidiClass(r) {
	case bidiClassEmbeddingOrOverride, bidiClassIsolate:
		return 1
	case bidiClassPDI:
		return -1
	}
	return 0
}
