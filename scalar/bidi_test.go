package scalar

import "testing"

func TestIsExplicitBidiFormattingCharacter(t *testing.T) {
	for _, r := range []rune{0x202A, 0x202B, 0x202C, 0x202D, 0x202E, 0x2066, 0x2067, 0x2068, 0x2069} {
		if !isExplicitBidiFormattingCharacter(r) {
			t.Errorf("isExplicitBidiFormattingCharacter(%U) = false, want true", r)
		}
	}
	if isExplicitBidiFormattingCharacter('a') {
		t.Errorf("isExplicitBidiFormattingCharacter('a') = true, want false")
	}
}

func TestBidiDepthDelta(t *testing.T) {
	cases := map[rune]int{
		0x202A: 1,  // LRE
		0x2066: 1,  // LRI
		0x202C: -1, // PDF
		0x2069: -1, // PDI
		'a':    0,
	}
	for r, want := range cases {
		if got := BidiDepthDelta(r); got != want {
			t.Errorf("BidiDepthDelta(%U) = %d, want %d", r, got, want)
		}
	}
}
