package transducer

import (
	"fmt"

	"github.com/sunfishcode/basic-text/scalar"
)

// Error is the error a Strict-mode Transducer returns on the first
// Unicode-validity violation it encounters.
type Error struct {
	Kind      scalar.ErrorKind
	Scalar    rune
	Suggested []rune
	Offset    int
}

func (e *Error) Error() string {
	if len(e.Suggested) > 0 {
		return fmt.Sprintf("basictext: %s at offset %d (%U); use %U instead", e.Kind, e.Offset, e.Scalar, e.Suggested)
	}
	return fmt.Sprintf("basictext: %s at offset %d (%U)", e.Kind, e.Offset, e.Scalar)
}

// Is supports errors.Is comparisons against a bare scalar.ErrorKind,
// e.g. errors.Is(err, transducer.KindError(scalar.NonStarterAtStart)).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// KindError builds a sentinel *Error carrying only a Kind, suitable for
// use with errors.Is.
func KindError(kind scalar.ErrorKind) *Error {
	return &Error{Kind: kind}
}
