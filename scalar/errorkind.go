package scalar

// ErrorKind enumerates the ways a scalar or sequence of scalars can fail
// to be valid Basic Text, per the Main and Pre-NFC tables. Strict-mode
// transducers surface the first ErrorKind they encounter; Lossy-mode
// transducers never surface one (see transducer.Mode).
type ErrorKind int

const (
	// NoError is the zero value, meaning no violation.
	NoError ErrorKind = iota

	NonStarterAtStart
	NonEnderAtEnd
	MissingTrailingNewline
	DisallowedControl
	DeprecatedScalar
	DiscouragedScalar
	Noncharacter
	PrivateUse
	TagCharacter
	ObjectReplacement
	InterlinearAnnotation
	ExplicitBidi
	EscapeSequence
	SingletonLetter
	LigatureOrDeprecatedForm
	BomMidstream
	CrOrCrlf
	Ff
	Nel
	LsPs
	Underlying
)

var errorKindNames = map[ErrorKind]string{
	NoError:                  "no error",
	NonStarterAtStart:        "non-starter at start of text",
	NonEnderAtEnd:            "non-ender at end of text",
	MissingTrailingNewline:   "missing trailing newline",
	DisallowedControl:        "disallowed control character",
	DeprecatedScalar:         "deprecated scalar value",
	DiscouragedScalar:        "discouraged scalar value",
	Noncharacter:             "noncharacter",
	PrivateUse:               "private-use character",
	TagCharacter:             "tag character",
	ObjectReplacement:        "object replacement character",
	InterlinearAnnotation:    "interlinear annotation",
	ExplicitBidi:             "explicit bidirectional formatting character",
	EscapeSequence:           "escape sequence",
	SingletonLetter:          "singleton letter",
	LigatureOrDeprecatedForm: "ligature or deprecated form",
	BomMidstream:             "byte order mark mid-stream",
	CrOrCrlf:                 "lone CR or CRLF",
	Ff:                       "form feed",
	Nel:                      "next line",
	LsPs:                     "line or paragraph separator",
	Underlying:               "underlying I/O error",
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return "unknown error"
}
