package scalar

import "golang.org/x/text/width"

// Category classifies a single scalar value for the purposes of the
// Main table (category()/main_action() in spec terms).
type Category int

const (
	OTHER Category = iota
	C0
	C1
	DEL
	TABCategory
	LFCategory
	CRCategory
	FFCategory
	NELCategory
	LSCategory
	PSCategory
	BOMCategory
	ORCCategory
	IA
	NONCHARACTER
	PRIVATE_USE
	TAG
	DEPRECATED_FORMAT
	EXPLICIT_BIDI
	DISCOURAGED
	CJK_COMPAT_IDEOGRAPH
	FULLWIDTH_COMPAT
)

// CategoryOf answers category(sv) from the spec: a coarse classification
// used to drive both the Main table and the error-kind selection in
// strict mode.
func CategoryOf(r rune) Category {
	switch {
	case r == TAB:
		return TABCategory
	case r == LF:
		return LFCategory
	case r == CR:
		return CRCategory
	case r == FF:
		return FFCategory
	case r == NEL:
		return NELCategory
	case r == LS:
		return LSCategory
	case r == PS:
		return PSCategory
	case r == BOM:
		return BOMCategory
	case r == ORC:
		return ORCCategory
	case isC0(r):
		return C0
	case r == 0x7F:
		return DEL
	case isC1(r):
		return C1
	case isInterlinearAnnotation(r):
		return IA
	case isNoncharacter(r):
		return NONCHARACTER
	case isPrivateUse(r):
		return PRIVATE_USE
	case isTagCharacter(r):
		return TAG
	case isDeprecatedFormat(r):
		return DEPRECATED_FORMAT
	case isExplicitBidi(r):
		return EXPLICIT_BIDI
	case isDiscouraged(r):
		return DISCOURAGED
	case isCJKCompatIdeograph(r):
		return CJK_COMPAT_IDEOGRAPH
	case isFullwidthCompat(r):
		return FULLWIDTH_COMPAT
	default:
		return OTHER
	}
}

// isFullwidthCompat reports whether r is a fullwidth or halfwidth
// compatibility form (e.g. the halfwidth Hangul/Katakana block, or the
// fullwidth Latin block). These fall outside every curated range this
// package hand-maintains, so without a dedicated category they would
// silently take the OTHER fast path; x/text/width is what the rest of
// the ecosystem uses to recognize them.
func isFullwidthCompat(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianHalfwidth:
		return true
	default:
		return false
	}
}

// isC0 reports whether r is a C0 control other than the ones with their
// own dedicated category (TAB, LF, CR, FF, and ESC, which the escape
// recognizer owns).
func isC0(r rune) bool {
	return r <= 0x1F && r != TAB && r != LF && r != CR && r != FF && r != ESC
}

// isC1 reports whether r is a C1 control other than NEL, which has its
// own dedicated category.
func isC1(r rune) bool {
	return r >= 0x80 && r <= 0x9F && r != NEL
}

func isInterlinearAnnotation(r rune) bool {
	return r >= 0xFFF9 && r <= 0xFFFB
}

func isNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	low := r & 0xFFFF
	return low == 0xFFFE || low == 0xFFFF
}

func isPrivateUse(r rune) bool {
	return (r >= 0xE000 && r <= 0xF8FF) ||
		(r >= 0xF0000 && r <= 0xFFFFD) ||
		(r >= 0x100000 && r <= 0x10FFFD)
}

func isTagCharacter(r rune) bool {
	return r >= 0xE0000 && r <= 0xE007F
}

func isDeprecatedFormat(r rune) bool {
	return r >= 0x206A && r <= 0x206F
}

func isExplicitBidi(r rune) bool {
	return isExplicitBidiFormattingCharacter(r)
}

func isDiscouraged(r rune) bool {
	switch r {
	case 0x17B4, 0x17B5, 0x17D8:
		return true
	}
	return false
}

func isCJKCompatIdeograph(r rune) bool {
	switch {
	case r >= 0xF900 && r <= 0xFA0D:
		return true
	case r == 0xFA10, r == 0xFA12:
		return true
	case r >= 0xFA15 && r <= 0xFA1E:
		return true
	case r == 0xFA20, r == 0xFA22:
		return true
	case r >= 0xFA25 && r <= 0xFA26:
		return true
	case r >= 0xFA2A && r <= 0xFA6D:
		return true
	case r >= 0xFA70 && r <= 0xFAD9:
		return true
	case r >= 0x2F800 && r <= 0x2FA1D:
		return true
	}
	return false
}
