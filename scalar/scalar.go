/*
Package scalar implements the pure, table-driven classifier underlying
Basic Text: predicates and lookup tables over individual Unicode scalar
values, with no notion of streams, buffering, or I/O.

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
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package scalar

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Well-known scalar values used throughout the classifier and the
// components built on top of it.
const (
	BOM  rune = '\uFEFF' // Byte Order Mark / Zero Width No-Break Space
	WJ   rune = '\u2060' // Word Joiner, used in place of a mid-stream BOM
	CGJ  rune = '\u034F' // Combining Grapheme Joiner
	ZWJ  rune = '\u200D' // Zero Width Joiner
	ESC  rune = '\u001B' // Escape
	ORC  rune = '\uFFFC' // Object Replacement Character
	REPL rune = '\uFFFD' // Replacement Character
	FF   rune = '\u000C' // Form Feed
	NEL  rune = '\u0085' // Next Line
	LS   rune = '\u2028' // Line Separator
	PS   rune = '\u2029' // Paragraph Separator
	CR   rune = '\r'
	LF   rune = '\n'
	TAB  rune = '\t'
)

// IsScalarValue reports whether r is a valid Unicode scalar value: in
// [0, 0x10FFFF] and not a surrogate.
func IsScalarValue(r rune) bool {
	return r >= 0 && r <= 0x10FFFF && !(r >= 0xD800 && r <= 0xDFFF)
}

// CCC returns the canonical combining class of r, as defined by the
// Unicode Character Database and exposed through the same
// golang.org/x/text/unicode/norm tables that back NFC composition.
func CCC(r rune) uint8 {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFC.Properties(buf[:n]).CCC()
}

// IsNonStarter reports whether r has a nonzero canonical combining class.
func IsNonStarter(r rune) bool {
	return CCC(r) != 0
}
