package main

import (
	"bytes"
	"testing"

	"github.com/nalgeon/be"
)

func newTestREPL(t *testing.T) (*REPL, *bytes.Buffer) {
	t.Helper()
	disableColor(t)
	var out bytes.Buffer
	return newREPL(&out, nil), &out
}

func TestREPLOneShot(t *testing.T) {
	r, out := newTestREPL(t)

	r.OneShot("= x + 3 4")
	r.OneShot("# comment")
	r.OneShot("")
	r.OneShot("@x")
	r.OneShot("@")
	r.OneShot("@ * x 2")

	be.Equal(t, out.String(), "7\n\n14\n")
}

func TestREPLOneShotErrorsDoNotStopSession(t *testing.T) {
	r, out := newTestREPL(t)

	r.OneShot("= x 5")
	r.OneShot("= x")
	r.OneShot("@y")
	r.OneShot("@ // x 0")
	r.OneShot("@x")

	want := "Line 2: Incomplete statement\n" +
		"*** Runtime error: Unrecognized variable y\n" +
		"*** Runtime error: Division by zero error\n" +
		"5\n"
	be.Equal(t, out.String(), want)
	be.Equal(t, r.program.Errors.Len(), 1)
}
