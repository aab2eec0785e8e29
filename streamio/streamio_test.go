package streamio

import (
	"bytes"
	"io"
	"testing"

	"github.com/sunfishcode/basic-text/transducer"
)

func TestReaderRepairsCRLF(t *testing.T) {
	r := NewReader(bytes.NewBufferString("a\r\nb"), transducer.Options{})
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "a\nb\n" {
		t.Errorf("out = %q, want %q", string(out), "a\nb\n")
	}
}

func TestReaderNeverErrors(t *testing.T) {
	r := NewReader(bytes.NewBufferString("bad\x01text"), transducer.Options{})
	_, err := io.ReadAll(r)
	if err != nil {
		t.Errorf("Reader unexpectedly returned an error: %v", err)
	}
}

func TestWriterAcceptsValidStream(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, transducer.Options{})
	if _, err := io.WriteString(w, "hello\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("buf = %q, want %q", buf.String(), "hello\n")
	}
}

func TestWriterRejectsMissingTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, transducer.Options{})
	if _, err := io.WriteString(w, "hello"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err == nil {
		t.Errorf("Close succeeded, want a MissingTrailingNewline error")
	}
}

func TestWriterCRLFCompatibility(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, transducer.Options{CRLFCompatibility: true})
	if _, err := io.WriteString(w, "hello\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if buf.String() != "hello\r\n" {
		t.Errorf("buf = %q, want %q", buf.String(), "hello\r\n")
	}
}

func TestWriterCRLFCompatibilityEmbeddedNewline(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, transducer.Options{CRLFCompatibility: true})
	if _, err := io.WriteString(w, "a\nb\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if buf.String() != "a\r\nb\r\n" {
		t.Errorf("buf = %q, want %q (every newline rewritten, not just the one flushed by Close)", buf.String(), "a\r\nb\r\n")
	}
}

func TestWriterBOMCompatibility(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, transducer.Options{BOMCompatibility: true})
	if _, err := io.WriteString(w, "hi\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := string(rune(0xFEFF)) + "hi\n"
	if buf.String() != want {
		t.Errorf("buf = %q, want %q", buf.String(), want)
	}
}

func TestWriterReassemblesUTF8SplitAcrossWrites(t *testing.T) {
	// U+00E9 encodes to the two bytes 0xC3 0xA9; split them across two
	// Write calls the way io.Copy would with a one-byte buffer.
	want := "caf\u00e9\n"
	encoded := []byte(want)
	var buf bytes.Buffer
	w := NewWriter(&buf, transducer.Options{})
	for _, b := range encoded {
		if _, err := w.Write([]byte{b}); err != nil {
			t.Fatalf("Write(%#x): %v", b, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if buf.String() != want {
		t.Errorf("buf = %q, want %q", buf.String(), want)
	}
}

func TestWriterCloseWithTruncatedUTF8Fails(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, transducer.Options{})
	// 0xC3 alone is the lead byte of a two-byte sequence with no
	// continuation byte supplied.
	if _, err := w.Write([]byte{0xC3}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err == nil {
		t.Errorf("Close succeeded, want an error for a truncated UTF-8 sequence")
	}
}

func TestDuplexIndependentDirections(t *testing.T) {
	var buf bytes.Buffer
	d := NewDuplex(struct {
		io.Reader
		io.Writer
	}{
		Reader: bytes.NewBufferString("a\r\nb"),
		Writer: &buf,
	}, transducer.Options{})

	out, err := io.ReadAll(d.Reader)
	if err != nil {
		t.Fatalf("Reader side: %v", err)
	}
	if string(out) != "a\nb\n" {
		t.Errorf("read side = %q, want %q", string(out), "a\nb\n")
	}

	if _, err := io.WriteString(d.Writer, "ok\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if buf.String() != "ok\n" {
		t.Errorf("write side = %q, want %q", buf.String(), "ok\n")
	}
}
