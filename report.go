package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Diagnostic is one syntax error found by check.
type Diagnostic struct {
	Line    int    `json:"line" yaml:"line"`       // 1-based source line
	Kind    string `json:"kind" yaml:"kind"`       // SyntaxErrorKind
	Message string `json:"message" yaml:"message"` // Human-readable message
}

// checkReport is the result of the check command.
type checkReport struct {
	File        string       `json:"file" yaml:"file"`
	Statements  int          `json:"statements" yaml:"statements"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	AST         []string     `json:"ast,omitempty" yaml:"ast,omitempty"`
}

func newCheckReport(filename string, p *Program, withAST bool) checkReport {
	r := checkReport{
		File:        filename,
		Statements:  len(p.Trees),
		Diagnostics: []Diagnostic{},
	}
	for _, err := range p.Errors.All() {
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Line:    err.Line,
			Kind:    string(err.Kind),
			Message: err.Error(),
		})
	}
	if withAST {
		for _, tree := range p.Trees {
			r.AST = append(r.AST, ToSExpr(tree))
		}
	}
	return r
}

func writeCheckReport(w io.Writer, r checkReport, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, d := range r.Diagnostics {
			errorColor.Fprintf(w, "%s:%d: %s\n", r.File, d.Line, d.Message)
		}
		for _, sexpr := range r.AST {
			fmt.Fprintln(w, sexpr)
		}
		if len(r.Diagnostics) == 0 {
			fmt.Fprintf(w, "%s: no errors found\n", r.File)
		}
		return nil
	}
}

// renderSymbols prints the symbol table sorted by name.
func renderSymbols(w io.Writer, st *SymbolTable) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, name := range st.Names() {
		v, err := st.Get(name)
		if err != nil {
			return err
		}
		table.Append([]string{name, strconv.FormatInt(v, 10)})
	}
	table.Render()
	return nil
}
