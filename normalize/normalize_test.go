package normalize

import "testing"

const (
	runeALatin           = 'A'
	runeCombiningRingAbove = 0x030A
	runeAngstromComposed = 0x00C5
)

func TestComposeNFC(t *testing.T) {
	got := ComposeNFC([]rune{runeALatin, runeCombiningRingAbove})
	want := []rune{runeAngstromComposed}
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("ComposeNFC(A + ring above) = %v, want %v", got, want)
	}
}

func TestComposeNFCEmpty(t *testing.T) {
	if got := ComposeNFC(nil); got != nil {
		t.Errorf("ComposeNFC(nil) = %v, want nil", got)
	}
}

func TestNormalizerComposesAcrossBoundary(t *testing.T) {
	n := New()
	n.Push(runeALatin)
	n.Push(runeCombiningRingAbove)
	n.Push('b') // starter: closes the boundary on the run above
	n.End()

	got := n.Ready()
	want := []rune{runeAngstromComposed, 'b'}
	if len(got) != len(want) {
		t.Fatalf("Ready() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ready()[%d] = %U, want %U", i, got[i], want[i])
		}
	}
}

func TestNormalizerPassthroughForAlreadyStable(t *testing.T) {
	n := New()
	for _, r := range "hello" {
		n.Push(r)
	}
	n.End()
	if got := string(n.Ready()); got != "hello" {
		t.Errorf("Ready() = %q, want %q", got, "hello")
	}
}
