// Package streamio provides the Reader, Writer, and Duplex adapters
// that apply the transducer incrementally over byte-oriented I/O.
package streamio

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/sunfishcode/basic-text/transducer"
)

// Reader wraps a byte-oriented io.Reader, decoding UTF-8 and running
// the decoded scalars through a Lossy transducer, so every read
// returns Basic Text. It is pull-based: Read fetches underlying bytes,
// through a bufio.Scanner, only when it has no converted output left.
type Reader struct {
	scanner  *bufio.Scanner
	td       *transducer.Transducer
	pending  []byte
	err      error
	finished bool
}

// NewReader wraps r with a Lossy transducer under opts.
func NewReader(r io.Reader, opts transducer.Options) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanRunes)
	return &Reader{
		scanner: sc,
		td:      transducer.New(transducer.Lossy, opts),
	}
}

// Read implements io.Reader. It never splits a Basic Text scalar's
// UTF-8 encoding across two calls, unless p is too small to hold a
// single encoded scalar.
func (rd *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(rd.pending) > 0 {
			c := len(rd.pending)
			if room := len(p) - n; c > room {
				// Stop at the last scalar boundary that fits.
				c = room
				for c > 0 && !utf8.RuneStart(rd.pending[c]) {
					c--
				}
				if c == 0 && n == 0 {
					c = room
				}
			}
			n += copy(p[n:], rd.pending[:c])
			rd.pending = rd.pending[c:]
			if len(rd.pending) > 0 {
				return n, nil
			}
			continue
		}
		if rd.finished {
			if rd.err != nil {
				return n, rd.err
			}
			return n, io.EOF
		}
		if !rd.scanner.Scan() {
			rd.finished = true
			if err := rd.scanner.Err(); err != nil {
				rd.err = err
				out, _ := rd.td.End()
				rd.pending = appendScalars(nil, out)
				continue
			}
			out, err := rd.td.End()
			if err != nil {
				rd.err = err
			}
			rd.pending = appendScalars(nil, out)
			continue
		}
		r, _ := utf8.DecodeRuneInString(rd.scanner.Text())
		out, err := rd.td.Push(r)
		if err != nil {
			rd.finished = true
			rd.err = err
			continue
		}
		rd.pending = appendScalars(nil, out)
	}
	return n, nil
}

func appendScalars(buf []byte, scalars []rune) []byte {
	for _, r := range scalars {
		buf = append(buf, []byte(string(r))...)
	}
	return buf
}
