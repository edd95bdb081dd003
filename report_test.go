package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestWriteCheckReportText(t *testing.T) {
	disableColor(t)
	p, err := Parse([]byte("= x 5\n@ + x\n= 1 x\n"), nil)
	be.Err(t, err, nil)

	var buf bytes.Buffer
	be.Err(t, writeCheckReport(&buf, newCheckReport("a.pre", p, false), formatText), nil)
	be.Equal(t, buf.String(), "a.pre:2: Incomplete statement\na.pre:3: Invalid assignment target\n")
}

func TestWriteCheckReportJSON(t *testing.T) {
	p, err := Parse([]byte("@ 1\n"), nil)
	be.Err(t, err, nil)

	var buf bytes.Buffer
	be.Err(t, writeCheckReport(&buf, newCheckReport("a.pre", p, false), formatJSON), nil)

	want := `{
  "file": "a.pre",
  "statements": 1,
  "diagnostics": []
}
`
	be.Equal(t, buf.String(), want)
}

func TestWriteCheckReportYAML(t *testing.T) {
	p, err := Parse([]byte("= x\n"), nil)
	be.Err(t, err, nil)

	var buf bytes.Buffer
	be.Err(t, writeCheckReport(&buf, newCheckReport("a.pre", p, true), formatYAML), nil)

	want := `file: a.pre
statements: 0
diagnostics:
  - line: 1
    kind: IncompleteStatement
    message: Incomplete statement
`
	be.Equal(t, buf.String(), want)
}

func TestRenderSymbols(t *testing.T) {
	st := NewSymbolTable()
	st.Set("zeta", -3)
	st.Set("alpha", 12)

	var buf bytes.Buffer
	be.Err(t, renderSymbols(&buf, st), nil)

	out := buf.String()
	be.True(t, strings.Contains(out, "NAME"))
	be.True(t, strings.Contains(out, "VALUE"))
	be.True(t, strings.Contains(out, "-3"))
	be.True(t, strings.Index(out, "alpha") < strings.Index(out, "zeta"))
}

func TestRenderSymbolsEmpty(t *testing.T) {
	var buf bytes.Buffer
	be.Err(t, renderSymbols(&buf, NewSymbolTable()), nil)
	be.True(t, !strings.Contains(buf.String(), "alpha"))
}
