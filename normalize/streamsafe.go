package normalize

import "github.com/sunfishcode/basic-text/scalar"

// StreamSafe enforces UAX15-D4: whenever a run of non-starters would
// reach 30, it inserts U+034F (CGJ) before the next one and resets its
// counter. A starter resets the counter to zero.
//
// It has no internal buffering of its own beyond the single counter;
// the bounded-memory guarantee this component contributes to the
// pipeline comes from that counter never growing past 30, not from a
// queue.
type StreamSafe struct {
	run int
}

// Threshold is the maximum run length of consecutive non-starters
// before a CGJ must be inserted.
const Threshold = 30

// Push feeds one scalar (already past Pre-NFC substitution) through the
// inserter and returns the scalars that should be forwarded in its
// place: usually just r itself, or [CGJ, r] when the threshold is hit.
func (s *StreamSafe) Push(r rune) []rune {
	if !scalar.IsNonStarter(r) {
		s.run = 0
		return []rune{r}
	}
	if s.run >= Threshold {
		s.run = 1
		return []rune{scalar.CGJ, r}
	}
	s.run++
	return []rune{r}
}
