package main

import (
	"bytes"
	"testing"

	"github.com/sunfishcode/basic-text/transducer"
)

func TestRunLossyRepairsInput(t *testing.T) {
	var out bytes.Buffer
	if err := run(bytes.NewBufferString("a\r\nb"), &out, transducer.Options{}, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "a\nb\n" {
		t.Errorf("out = %q, want %q", out.String(), "a\nb\n")
	}
}

func TestRunStrictRejectsInvalidInput(t *testing.T) {
	var out bytes.Buffer
	err := run(bytes.NewBufferString("hello"), &out, transducer.Options{}, true)
	if err == nil {
		t.Fatalf("run(strict) succeeded, want a MissingTrailingNewline error")
	}
}

func TestRunStrictAcceptsValidInput(t *testing.T) {
	var out bytes.Buffer
	if err := run(bytes.NewBufferString("hello\n"), &out, transducer.Options{}, true); err != nil {
		t.Fatalf("run(strict): %v", err)
	}
	if out.String() != "hello\n" {
		t.Errorf("out = %q, want %q", out.String(), "hello\n")
	}
}
