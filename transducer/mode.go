// Package transducer implements the Transducer Core: the state machine
// that composes Pre-NFC substitution, the Stream-Safe Text Process,
// NFC composition, newline conditioning, escape-sequence handling, and
// Main-table substitution into a single streaming pass, in either Lossy
// or Strict mode.
package transducer

// Mode selects how the Transducer Core handles content that is not
// already valid Basic Text.
type Mode int

const (
	// Lossy never surfaces a Unicode-validity error: disallowed content
	// is substituted or elided so the pass always succeeds.
	Lossy Mode = iota
	// Strict fails on the first Unicode-validity violation with a typed
	// *Error and discards any further buffered input.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lossy"
}
