package normalize

/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRETC, INDIRETC, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRATC, STRITC LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/

// Package normalize provides the Incremental Normalizer: a
// boundary-buffered toNFC transform under the Stabilized-Strings
// policy, so that already-stable substrings pass through unaltered and
// output is withheld only until the next safe boundary.
import (
	"unicode/utf8"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

func tracer() tracing.Trace {
	return tracing.Select("basictext")
}

// Normalizer buffers scalars up to the next normalization-form
// boundary (a starter that cannot combine with what precedes it) and
// emits the NFC-composed form of each such run as soon as the boundary
// closes it off, giving bounded-memory, chunk-independent output.
type Normalizer struct {
	pending *linkedlistqueue.Queue
	ready   []rune
}

// New returns an empty Normalizer.
func New() *Normalizer {
	return &Normalizer{pending: linkedlistqueue.New()}
}

// Push feeds one scalar into the normalizer. Composed output, if any
// boundary was crossed, becomes available from Ready.
func (n *Normalizer) Push(r rune) {
	if n.pending.Empty() {
		n.pending.Enqueue(r)
		return
	}
	if isBoundary(r) {
		n.flush()
	}
	n.pending.Enqueue(r)
}

// End signals end-of-input, flushing any pending run.
func (n *Normalizer) End() {
	n.flush()
}

// Ready drains and returns the scalars made ready since the last call.
func (n *Normalizer) Ready() []rune {
	out := n.ready
	n.ready = nil
	return out
}

func (n *Normalizer) flush() {
	if n.pending.Empty() {
		return
	}
	values := n.pending.Values()
	n.pending.Clear()
	run := make([]rune, len(values))
	for i, v := range values {
		run[i] = v.(rune)
	}
	tracer().Debugf("normalize: composing run of %d scalar(s)", len(run))
	n.ready = append(n.ready, ComposeNFC(run)...)
}

// isBoundary reports whether r begins a new normalization segment: a
// starter (ccc == 0) that golang.org/x/text/unicode/norm also considers
// safe to break before, per the Stream-Safe/NFC boundary rule this
// module builds on.
func isBoundary(r rune) bool {
	var buf [utf8.UTFMax]byte
	sz := utf8.EncodeRune(buf[:], r)
	return norm.NFC.Properties(buf[:sz]).BoundaryBefore()
}

// ComposeNFC returns the NFC-composed form of run. Used both by the
// Normalizer for a single buffered segment and directly by string-form
// conversions that operate on an already-fully-buffered input.
func ComposeNFC(run []rune) []rune {
	if len(run) == 0 {
		return nil
	}
	var buf []byte
	for _, r := range run {
		buf = utf8.AppendRune(buf, r)
	}
	composed := norm.NFC.Bytes(buf)
	out := make([]rune, 0, len(run))
	for i := 0; i < len(composed); {
		r, size := utf8.DecodeRune(composed[i:])
		out = append(out, r)
		i += size
	}
	return out
}
