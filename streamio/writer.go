package streamio

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/sunfishcode/basic-text/scalar"
	"github.com/sunfishcode/basic-text/transducer"
)

// errTruncatedUTF8 is returned by Close when a prior Write left a UTF-8
// sequence incomplete: the stream ended mid-scalar.
var errTruncatedUTF8 = errors.New("streamio: Close called with an incomplete UTF-8 sequence pending")

// Writer wraps a byte-oriented io.Writer, accepting Unicode scalars
// (via WriteRune or Write of UTF-8 bytes), running them through a
// Strict transducer, and forwarding the results as UTF-8. It is
// push-based: every write is validated as it arrives.
type Writer struct {
	w        *bufio.Writer
	td       *transducer.Transducer
	opts     transducer.Options
	err      error
	wroteBOM bool
	pending  []byte
}

// NewWriter wraps w with a Strict transducer under opts.
func NewWriter(w io.Writer, opts transducer.Options) *Writer {
	return &Writer{
		w:    bufio.NewWriter(w),
		td:   transducer.New(transducer.Strict, opts),
		opts: opts,
	}
}

// Write implements io.Writer, decoding p as UTF-8 and validating each
// scalar as it arrives. A UTF-8 sequence truncated at the end of p is
// held in wr.pending and completed by the bytes that arrive on the
// next call, so scalar-value boundaries are never split across Write
// calls regardless of how a caller chunks its writes (io.Copy with a
// small buffer, one byte at a time, ...); Reader carries the same
// contract the other direction via bufio.Scanner/ScanRunes.
func (wr *Writer) Write(p []byte) (int, error) {
	if wr.err != nil {
		return 0, wr.err
	}
	carried := len(wr.pending)
	buf := p
	if carried > 0 {
		buf = append(wr.pending, p...)
		wr.pending = nil
	}
	consumed := 0
	for len(buf) > 0 {
		if !utf8.FullRune(buf) {
			wr.pending = append([]byte(nil), buf...)
			consumed += len(buf)
			buf = nil
			break
		}
		r, size := utf8.DecodeRune(buf)
		if err := wr.WriteRune(r); err != nil {
			return clampConsumed(consumed, carried, len(p)), err
		}
		buf = buf[size:]
		consumed += size
	}
	return clampConsumed(consumed, carried, len(p)), nil
}

// clampConsumed translates a count of bytes consumed out of the
// combined (carried-over pending + newly supplied) buffer back into a
// count of newly supplied bytes, as io.Writer's contract requires.
func clampConsumed(consumed, carried, supplied int) int {
	n := consumed - carried
	if n < 0 {
		n = 0
	}
	if n > supplied {
		n = supplied
	}
	return n
}

// WriteRune validates and forwards a single scalar.
func (wr *Writer) WriteRune(r rune) error {
	if wr.err != nil {
		return wr.err
	}
	out, err := wr.td.Push(r)
	if err != nil {
		wr.err = err
		return err
	}
	return wr.emit(out)
}

// emit writes scalars to the underlying writer, applying the CRLF and
// BOM Compatibility output-only passes uniformly regardless of whether
// scalars arrived through an ordinary WriteRune or the tail batch from
// Close: both paths route through here, so a newline flushed mid-stream
// by the Incremental Normalizer's one-boundary-behind buffering gets
// the same U+000A -> U+000D U+000A rewrite as one flushed at End (§4.5
// step 8), and the BOM (§6) lands before the very first scalar this
// Writer ever emits rather than wherever Close happens to run.
func (wr *Writer) emit(scalars []rune) error {
	if err := wr.ensureBOM(); err != nil {
		return err
	}
	for _, r := range scalars {
		if r == scalar.LF && wr.opts.CRLFCompatibility {
			if _, err := wr.w.WriteRune(scalar.CR); err != nil {
				wr.err = err
				return err
			}
		}
		if _, err := wr.w.WriteRune(r); err != nil {
			wr.err = err
			return err
		}
	}
	return nil
}

func (wr *Writer) ensureBOM() error {
	if !wr.opts.BOMCompatibility || wr.wroteBOM {
		return nil
	}
	wr.wroteBOM = true
	if _, err := wr.w.WriteRune(scalar.BOM); err != nil {
		wr.err = err
		return err
	}
	return nil
}

// Flush pushes the output the transducer has already released to the
// underlying writer without ending the stream. It does not check that
// the scalars written so far form a Basic Text string, and scalars the
// transducer still holds (the Incremental Normalizer keeps the latest
// one until the next boundary) are not written. The end-of-stream
// checks (trailing U+000A, no pending escape) run only in Close.
func (wr *Writer) Flush() error {
	if wr.err != nil {
		return wr.err
	}
	return wr.w.Flush()
}

// Close performs final validation (end-of-stream U+000A requirement, no
// pending BT-non-ender, empty escape-sequence state) and flushes the
// underlying writer.
func (wr *Writer) Close() error {
	if wr.err != nil {
		return wr.err
	}
	if len(wr.pending) > 0 {
		wr.err = errTruncatedUTF8
		return wr.err
	}
	out, err := wr.td.End()
	if err != nil {
		wr.err = err
		return err
	}
	if err := wr.emit(out); err != nil {
		return err
	}
	return wr.w.Flush()
}
