package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
)

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// Logger receives a debug entry per statement and per syntax error.
	// Nil discards everything.
	Logger logrus.FieldLogger
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	var out ParseOptions
	if o != nil {
		out = *o
	}
	if out.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		l.SetLevel(logrus.PanicLevel)
		out.Logger = l
	}
	return out
}

// Program is the compiled form of one source file: a root tree per valid
// statement line, in source order, and the symbol table they run against.
type Program struct {
	Trees   []*ASTNode
	Symbols *SymbolTable
	Errors  ErrorList

	lineNum int
	log     logrus.FieldLogger
}

// NewProgram returns an empty program with a fresh symbol table.
func NewProgram(opt *ParseOptions) *Program {
	popt := opt.normalize()
	return &Program{
		Symbols: NewSymbolTable(),
		log:     popt.Logger,
	}
}

// Parse parses a program from bytes.
func Parse(data []byte, opt *ParseOptions) (*Program, error) {
	return Decode(bytes.NewReader(data), opt)
}

// Decode parses a program from r, one line at a time. Syntax errors are
// recorded in Program.Errors and do not stop parsing; the returned error is
// reserved for read failures.
func Decode(r io.Reader, opt *ParseOptions) (*Program, error) {
	p := NewProgram(opt)
	sc := bufio.NewScanner(r)
	// A statement may be arbitrarily long; the scanner's default caps lines at 64 KiB.
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for sc.Scan() {
		p.ParseLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return p, nil
}

// DecodeFile parses a program from a file.
func DecodeFile(path string, opt *ParseOptions) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, opt)
}

// ParseLine parses the next source line into the program. A statement's tree
// is appended to Trees and returned; blank and comment lines return nil. A
// syntax error is recorded in Errors and returned.
func (p *Program) ParseLine(line string) (*ASTNode, error) {
	p.lineNum++
	node, err := ParseLine(line)
	if err != nil {
		var syn *SyntaxError
		if !errors.As(err, &syn) {
			return nil, err
		}
		syn.Line = p.lineNum
		p.Errors.Add(syn)
		p.log.WithFields(logrus.Fields{"line": p.lineNum, "kind": syn.Kind}).Debug(syn.Error())
		return nil, syn
	}
	if node == nil {
		return nil, nil
	}
	node.Line = p.lineNum
	p.Trees = append(p.Trees, node)
	if p.debugEnabled() {
		p.log.WithField("line", p.lineNum).Debugf("parsed %s", ToSExpr(node))
	}
	return node, nil
}

// Emit writes the infix rendering of every tree, one per line.
func (p *Program) Emit(w io.Writer) error {
	for _, tree := range p.Trees {
		if _, err := fmt.Fprintln(w, tree.Emit()); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate runs every tree in order, writing printed values to w. Nothing runs
// if parsing recorded a syntax error. The first runtime error halts evaluation
// and is returned.
func (p *Program) Evaluate(w io.Writer) error {
	if p.Errors.HasErrors() {
		return ErrEvaluationSkipped
	}
	for _, tree := range p.Trees {
		if err := p.Exec(tree, w); err != nil {
			return err
		}
	}
	return nil
}

// Exec evaluates a single root tree against the program's symbol table.
func (p *Program) Exec(tree *ASTNode, w io.Writer) error {
	v, ok, err := tree.Evaluate(p.Symbols)
	if err != nil {
		var rt *RuntimeError
		if errors.As(err, &rt) {
			rt.Line = tree.Line
			p.log.WithFields(logrus.Fields{"line": tree.Line, "kind": rt.Kind}).Debug(rt.Error())
		}
		return err
	}
	if tree.Kind != NodePrint {
		return nil
	}
	if !ok {
		_, err = fmt.Fprintln(w)
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return err
}

// debugEnabled reports whether debug entries would be written anywhere.
func (p *Program) debugEnabled() bool {
	switch l := p.log.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}
