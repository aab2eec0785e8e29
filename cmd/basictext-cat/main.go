// Command basictext-cat copies stdin to stdout, converting it to Basic
// Text along the way. By default it lossily repairs its input; -strict
// instead fails on the first violation and reports its byte offset.
package main

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

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sunfishcode/basic-text/streamio"
	"github.com/sunfishcode/basic-text/transducer"
)

func main() {
	var (
		strict   = flag.Bool("strict", false, "fail on the first Basic Text violation instead of repairing it")
		nel      = flag.Bool("nel-compat", false, "condition NEL to a line feed instead of a space")
		lsps     = flag.Bool("lsps-compat", false, "condition LS/PS to a line feed instead of a space")
		crlf     = flag.Bool("crlf-compat", false, "write CRLF line endings instead of LF")
		bom      = flag.Bool("bom-compat", false, "prepend a byte order mark to the output")
		colorEsc = flag.Bool("color", false, "pass SGR color escape sequences through unchanged")
	)
	flag.Parse()

	opts := transducer.Options{
		NELCompatibility:     *nel,
		LSPSCompatibility:    *lsps,
		CRLFCompatibility:    *crlf,
		BOMCompatibility:     *bom,
		ColorEscapeSequences: *colorEsc,
	}

	if err := run(os.Stdin, os.Stdout, opts, *strict); err != nil {
		fmt.Fprintln(os.Stderr, "basictext-cat:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, opts transducer.Options, strict bool) error {
	if strict {
		w := streamio.NewWriter(out, opts)
		if _, err := io.Copy(w, in); err != nil {
			return err
		}
		return w.Close()
	}
	r := streamio.NewReader(in, opts)
	_, err := io.Copy(out, r)
	return err
}
