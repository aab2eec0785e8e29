package escape

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// Match is the outcome of feeding a complete escape sequence through a
// Matcher: which family matched, and the scalars in the pending buffer
// beyond the match (already-read lookahead the caller must re-inject
// into whatever follows the escape recognizer).
type Match struct {
	Family    Family
	Matched   []rune
	Remainder []rune
}

// Matcher accumulates scalars starting from an ESC and resolves the
// longest-match family incrementally, the same push-then-drain shape
// the Stream-Safe and normalization stages use. It holds its pending
// scalars in a FIFO queue rather than a hand-rolled slice-based ring
// buffer, mirroring how the surrounding module reaches for a gods
// container instead of reimplementing one.
type Matcher struct {
	pending *linkedlistqueue.Queue
}

// NewMatcher returns a Matcher ready to accept the first ESC of a
// sequence via Push.
func NewMatcher() *Matcher {
	return &Matcher{pending: linkedlistqueue.New()}
}

// Push feeds one scalar into the matcher. ok is true once the family is
// resolved (either because the grammar reached an unambiguous
// conclusion, or because eof was reached); the caller must not call
// Push again after ok is true without first calling Result and Reset.
func (m *Matcher) Push(r rune, eof bool) (ok bool) {
	m.pending.Enqueue(r)
	_, _, needMore := Recognize(m.snapshot(), eof)
	return !needMore
}

// Result resolves the current buffer contents into a Match. Call this
// only after Push has returned ok == true.
func (m *Matcher) Result(eof bool) Match {
	buf := m.snapshot()
	n, family, _ := Recognize(buf, eof)
	return Match{
		Family:    family,
		Matched:   append([]rune(nil), buf[:n]...),
		Remainder: append([]rune(nil), buf[n:]...),
	}
}

// Reset clears the matcher for the next escape sequence, re-seeding its
// buffer with any unconsumed remainder scalars from the previous match
// (a bare ESC or non-terminator byte that starts the next sequence).
func (m *Matcher) Reset(carry []rune) {
	m.pending.Clear()
	for _, r := range carry {
		m.pending.Enqueue(r)
	}
}

func (m *Matcher) snapshot() []rune {
	values := m.pending.Values()
	buf := make([]rune, len(values))
	for i, v := range values {
		buf[i] = v.(rune)
	}
	return buf
}
