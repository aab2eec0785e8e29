package scalar

import "testing"

func TestCategoryOfDedicated(t *testing.T) {
	cases := map[rune]Category{
		TAB: TABCategory,
		LF:  LFCategory,
		CR:  CRCategory,
		FF:  FFCategory,
		NEL: NELCategory,
		LS:  LSCategory,
		PS:  PSCategory,
		BOM: BOMCategory,
		ORC: ORCCategory,
		0x00:    C0,
		0x7F:    DEL,
		0x81:    C1,
		0xFFF9:  IA,
		0xFFFE:  NONCHARACTER,
		0xE000:  PRIVATE_USE,
		0xE0041: TAG,
		0x206A:  DEPRECATED_FORMAT,
		0x202A:  EXPLICIT_BIDI,
		0x17B4:  DISCOURAGED,
		0xF900:  CJK_COMPAT_IDEOGRAPH,
	}
	for r, want := range cases {
		if got := CategoryOf(r); got != want {
			t.Errorf("CategoryOf(%U) = %v, want %v", r, got, want)
		}
	}
}

func TestCategoryOfOther(t *testing.T) {
	if got := CategoryOf('a'); got != OTHER {
		t.Errorf("CategoryOf('a') = %v, want OTHER", got)
	}
}

func TestCategoryOfFullwidthCompat(t *testing.T) {
	// U+FF21 FULLWIDTH LATIN CAPITAL LETTER A
	if got := CategoryOf(0xFF21); got != FULLWIDTH_COMPAT {
		t.Errorf("CategoryOf(fullwidth A) = %v, want FULLWIDTH_COMPAT", got)
	}
}
