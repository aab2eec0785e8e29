package transducer

import (
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/sunfishcode/basic-text/escape"
	"github.com/sunfishcode/basic-text/normalize"
	"github.com/sunfishcode/basic-text/scalar"
)

func tracer() tracing.Trace {
	return tracing.Select("basictext")
}

// Transducer runs one conversion pass, in either direction, holding all
// the scratch state a pass needs: the pending scalars of the
// unassigned-isolation, stream-safe, and normalization stages, the
// escape-sequence recognizer's running buffer, and the bidi nesting
// depth counter. An instance is single-use per spec.md §3's lifecycle
// rule: construct with New, Push every input scalar, then End.
type Transducer struct {
	mode Mode
	opts Options

	started  bool
	dead     bool
	deadErr  error
	pendingCR bool

	isolate    scalar.IsolateUnassigned
	streamSafe normalize.StreamSafe
	normalizer *normalize.Normalizer

	escActive bool
	escMatch  *escape.Matcher

	depth           int
	lastEmitted     rune
	haveLastEmitted bool
	anyOutput       bool

	offset int
	out    []rune
}

// New returns a Transducer ready to accept input via Push.
func New(mode Mode, opts Options) *Transducer {
	return &Transducer{
		mode:     mode,
		opts:     opts,
		normalizer: normalize.New(),
		escMatch: escape.NewMatcher(),
	}
}

// Push feeds one input scalar through the pipeline and returns the
// scalars it produced. In Strict mode, once an error is returned every
// subsequent call returns the same error and produces no output.
func (t *Transducer) Push(r rune) ([]rune, error) {
	if t.dead {
		return nil, t.deadErr
	}
	t.out = t.out[:0]

	if !t.started {
		t.started = true
		if r == scalar.BOM {
			t.offset += utf8.RuneLen(r)
			return nil, nil
		}
		if scalar.IsBTNonStarter(r) || r == scalar.ZWJ {
			if t.mode == Strict {
				return nil, t.fail(scalar.NonStarterAtStart, r)
			}
			if err := t.feedIsolate(scalar.CGJ); err != nil {
				return nil, err
			}
		}
	}

	if err := t.feedIsolate(r); err != nil {
		return nil, err
	}
	t.offset += utf8.RuneLen(r)
	return append([]rune(nil), t.out...), nil
}

// End signals end-of-input for a Basic Text STREAM conversion: besides
// the end-boundary guard, a non-empty stream must end with U+000A.
func (t *Transducer) End() ([]rune, error) {
	return t.end(true)
}

// EndString signals end-of-input for a Basic Text STRING conversion:
// only the BT-non-ender end-boundary guard applies, per §3's string
// invariants: a bare string, unlike a stream, is not required to end
// with U+000A.
func (t *Transducer) EndString() ([]rune, error) {
	return t.end(false)
}

func (t *Transducer) end(streamForm bool) ([]rune, error) {
	if t.dead {
		return nil, t.deadErr
	}
	t.out = t.out[:0]

	t.isolate.Close()
	for _, r := range t.isolate.Ready() {
		if err := t.feedBase(r); err != nil {
			return nil, err
		}
	}
	t.normalizer.End()
	for _, r := range t.normalizer.Ready() {
		if err := t.admit(r); err != nil {
			return nil, err
		}
	}
	if t.pendingCR {
		t.pendingCR = false
		if err := t.admitBareNewlineViolation(scalar.CrOrCrlf, scalar.CR); err != nil {
			return nil, err
		}
	}
	if t.escActive {
		if err := t.resolveEscape(true); err != nil {
			return nil, err
		}
	}

	if t.haveLastEmitted && scalar.IsBTNonEnder(t.lastEmitted) {
		if t.mode == Strict {
			return nil, t.fail(scalar.NonEnderAtEnd, t.lastEmitted)
		}
		t.finalizeScalar(scalar.CGJ)
	}
	if streamForm && t.anyOutput && t.lastEmitted != scalar.LF {
		if t.mode == Strict {
			return nil, t.fail(scalar.MissingTrailingNewline, t.lastEmitted)
		}
		t.finalizeScalar(scalar.LF)
	}

	return append([]rune(nil), t.out...), nil
}

func (t *Transducer) feedIsolate(r rune) error {
	t.isolate.Push(r)
	for _, rr := range t.isolate.Ready() {
		if err := t.feedBase(rr); err != nil {
			return err
		}
	}
	return nil
}

// feedBase runs a scalar (already past unassigned isolation) through
// Pre-NFC substitution, the Stream-Safe Inserter, and the Incremental
// Normalizer, in that order: the ordering §9 calls load-bearing.
func (t *Transducer) feedBase(r rune) error {
	pre := scalar.LookupPreNFC(r)
	seq := []rune{r}
	switch pre.Action {
	case scalar.PreNFCSubstitute:
		seq = pre.Replacement
	case scalar.PreNFCReject:
		if t.mode == Strict {
			return t.fail(pre.Kind, r)
		}
		seq = pre.Replacement
	}
	for _, s := range seq {
		for _, safe := range t.streamSafe.Push(s) {
			t.normalizer.Push(safe)
		}
	}
	for _, composed := range t.normalizer.Ready() {
		if err := t.admit(composed); err != nil {
			return err
		}
	}
	return nil
}

// admit applies newline conditioning, escape-sequence handling, and the
// Main table to one post-NFC scalar.
func (t *Transducer) admit(r rune) error {
	// A scalar arriving while an escape sequence is already open belongs
	// to that sequence's own grammar (an OSC terminator, a LEC final
	// byte, ...), not to ordinary text, and must reach the matcher
	// unmodified: newline conditioning and the Main table only apply
	// once the sequence has resolved.
	if t.escActive {
		return t.emitThroughEscape(r)
	}
	if t.pendingCR {
		t.pendingCR = false
		if r == scalar.LF {
			return t.admitConditioned(scalar.CrOrCrlf, scalar.LF, scalar.CR)
		}
		if err := t.admitBareNewlineViolation(scalar.CrOrCrlf, scalar.CR); err != nil {
			return err
		}
		// fall through: r still needs to be processed normally.
	}
	if r == scalar.CR {
		t.pendingCR = true
		return nil
	}
	switch r {
	case scalar.FF:
		return t.admitConditioned(scalar.Ff, ' ', r)
	case scalar.NEL:
		rep := rune(' ')
		if t.opts.NELCompatibility {
			rep = scalar.LF
		}
		return t.admitConditioned(scalar.Nel, rep, r)
	case scalar.LS, scalar.PS:
		rep := rune(' ')
		if t.opts.LSPSCompatibility {
			rep = scalar.LF
		}
		return t.admitConditioned(scalar.LsPs, rep, r)
	}

	entry := scalar.LookupMain(r)
	if entry.Action == scalar.MainPass {
		return t.emitThroughEscape(r)
	}
	if t.mode == Strict {
		return t.fail(entry.Kind, r)
	}
	for _, out := range entry.Replacement {
		if err := t.emitThroughEscape(out); err != nil {
			return err
		}
	}
	return nil
}

// admitConditioned applies a newline-conditioning substitution: Lossy
// emits replacement, Strict fails with kind.
func (t *Transducer) admitConditioned(kind scalar.ErrorKind, replacement, original rune) error {
	if t.mode == Strict {
		return t.fail(kind, original)
	}
	return t.emitThroughEscape(replacement)
}

// admitBareNewlineViolation handles a lone CR: Strict fails, Lossy
// conditions it to a newline.
func (t *Transducer) admitBareNewlineViolation(kind scalar.ErrorKind, original rune) error {
	if t.mode == Strict {
		return t.fail(kind, original)
	}
	return t.emitThroughEscape(scalar.LF)
}

// emitThroughEscape routes r through the escape-sequence recognizer:
// scalars outside a live escape sequence are forwarded immediately,
// scalars starting or continuing one are buffered until the family
// resolves.
func (t *Transducer) emitThroughEscape(r rune) error {
	if !t.escActive && r != scalar.ESC {
		t.finalizeScalar(r)
		return nil
	}
	t.escActive = true
	if ok := t.escMatch.Push(r, false); !ok {
		return nil
	}
	return t.resolveEscape(false)
}

func (t *Transducer) resolveEscape(eof bool) error {
	m := t.escMatch.Result(eof)
	t.escActive = false
	t.escMatch.Reset(nil)

	allowed := m.Family == escape.FamilySGR && t.opts.ColorEscapeSequences
	if allowed {
		for _, r := range m.Matched {
			t.finalizeScalar(r)
		}
	} else if t.mode == Strict {
		return t.fail(scalar.EscapeSequence, m.Matched[0])
	} else {
		tracer().Debugf("transducer: eliding %s escape sequence of length %d", m.Family, len(m.Matched))
	}

	for _, r := range m.Remainder {
		if err := t.admit(r); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transducer) finalizeScalar(r rune) {
	t.depth += scalar.BidiDepthDelta(r)
	t.lastEmitted = r
	t.haveLastEmitted = true
	t.anyOutput = true
	t.out = append(t.out, r)
}

func (t *Transducer) fail(kind scalar.ErrorKind, r rune) error {
	err := &Error{Kind: kind, Scalar: r, Offset: t.offset}
	if pre := scalar.LookupPreNFC(r); pre.Action == scalar.PreNFCReject {
		err.Suggested = pre.Replacement
	} else if entry := scalar.LookupMain(r); entry.Action == scalar.MainReject {
		err.Suggested = entry.Replacement
	}
	t.dead = true
	t.deadErr = err
	return err
}
