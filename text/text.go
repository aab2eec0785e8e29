// Package text provides the Basic Text string type: an immutable,
// validated sequence of Unicode scalar values, together with the
// lossy and strict conversion constructors from arbitrary Unicode.
package text

import (
	"github.com/sunfishcode/basic-text/transducer"
)

// Text is an owned, validated Basic Text string: a finite scalar
// sequence satisfying the invariants a strict transducer pass enforces.
// The zero value is the empty Basic Text string.
type Text struct {
	scalars []rune
}

// FromUnicodeStrict validates s as Basic Text, failing with the
// specific *transducer.Error and byte offset of the first violation.
// The Strict transducer still runs NFC composition, the Stream-Safe
// Inserter and unassigned-scalar isolation: input that is not in
// Stream-Safe NFC, or that holds unassigned scalars the isolation stage
// surrounds with CGJ, is rewritten rather than rejected, and the
// returned Text holds the rewritten form.
func FromUnicodeStrict(s string) (Text, error) {
	return convert(s, transducer.Strict, transducer.Options{})
}

// FromUnicodeLossy always succeeds, applying the Lossy transducer to s.
// Because this is a string-form (not stream-form) conversion, no
// trailing newline is appended when s does not already end with one.
func FromUnicodeLossy(s string) Text {
	t, err := convert(s, transducer.Lossy, transducer.Options{})
	if err != nil {
		// Lossy never surfaces a Unicode-validity error; only an
		// Underlying error from a byte collaborator could reach here,
		// and convert has none to propagate for an in-memory string.
		panic("basictext: unreachable lossy error: " + err.Error())
	}
	return t
}

func convert(s string, mode transducer.Mode, opts transducer.Options) (Text, error) {
	td := transducer.New(mode, opts)
	var out []rune
	for _, r := range s {
		produced, err := td.Push(r)
		if err != nil {
			return Text{}, err
		}
		out = append(out, produced...)
	}
	produced, err := td.EndString()
	if err != nil {
		return Text{}, err
	}
	out = append(out, produced...)
	return Text{scalars: out}, nil
}

// AsScalars returns the validated scalar sequence. The returned slice
// must not be modified.
func (t Text) AsScalars() []rune {
	return t.scalars
}

// String renders t back to a Go string.
func (t Text) String() string {
	return string(t.scalars)
}

// Equal reports scalar-sequence equality, which is canonical-equivalence
// because every Text is already in NFC.
func (t Text) Equal(other Text) bool {
	if len(t.scalars) != len(other.scalars) {
		return false
	}
	for i, r := range t.scalars {
		if r != other.scalars[i] {
			return false
		}
	}
	return true
}

// Len returns the number of scalar values in t.
func (t Text) Len() int {
	return len(t.scalars)
}
