package streamio

import (
	"io"

	"github.com/sunfishcode/basic-text/transducer"
)

// Duplex composes an independent Reader and Writer over a byte-duplex
// lower layer, such as a pipe or a socket. The two directions share no
// mutable state: each carries its own transducer and its own pending
// buffers, so a violation on one side never affects the other.
type Duplex struct {
	*Reader
	*Writer
}

// NewDuplex wraps rw, applying opts to both the read and write side.
func NewDuplex(rw io.ReadWriter, opts transducer.Options) *Duplex {
	return &Duplex{
		Reader: NewReader(rw, opts),
		Writer: NewWriter(rw, opts),
	}
}

// Close finalizes the write side. The read side has no explicit close;
// it simply stops producing scalars once the underlying reader is
// exhausted.
func (d *Duplex) Close() error {
	return d.Writer.Close()
}
