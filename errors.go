package main

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax = errors.New("syntax error")

	// ErrRuntime is matched by every *RuntimeError.
	ErrRuntime = errors.New("runtime error")

	// ErrEvaluationSkipped is returned by Program.Evaluate when parsing recorded syntax errors.
	ErrEvaluationSkipped = errors.New("evaluation skipped due to syntax errors")
)

// SyntaxErrorKind identifies why a line failed to compile.
type SyntaxErrorKind string

const (
	IncompleteStatement     SyntaxErrorKind = "IncompleteStatement"
	InvalidToken            SyntaxErrorKind = "InvalidToken"
	InvalidAssignmentTarget SyntaxErrorKind = "InvalidAssignmentTarget"
	BadAssignmentExpression SyntaxErrorKind = "BadAssignmentExpression"
)

// SyntaxError is a compile-time error for a single source line.
type SyntaxError struct {
	Kind  SyntaxErrorKind
	Token string // offending token, if any
	Line  int    // 1-based; 0 when not yet attributed to a line
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case IncompleteStatement:
		return "Incomplete statement"
	case InvalidToken:
		if e.Token == "" {
			return "Invalid token"
		}
		return "Invalid token " + e.Token
	case InvalidAssignmentTarget:
		return "Invalid assignment target"
	case BadAssignmentExpression:
		return "Bad assignment expression"
	default:
		return string(e.Kind)
	}
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func newSyntaxError(kind SyntaxErrorKind, token string) *SyntaxError {
	return &SyntaxError{Kind: kind, Token: token}
}

// RuntimeErrorKind identifies why evaluation halted.
type RuntimeErrorKind string

const (
	UndefinedVariable RuntimeErrorKind = "UndefinedVariable"
	DivisionByZero    RuntimeErrorKind = "DivisionByZero"
)

// RuntimeError halts evaluation of a program.
type RuntimeError struct {
	Kind RuntimeErrorKind
	Name string // variable name for UndefinedVariable
	Line int
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case UndefinedVariable:
		return "Unrecognized variable " + e.Name
	case DivisionByZero:
		return "Division by zero error"
	default:
		return string(e.Kind)
	}
}

func (e *RuntimeError) Unwrap() error {
	return ErrRuntime
}

// ErrorList collects the syntax errors of one parse, in line order.
type ErrorList struct {
	errs []*SyntaxError
}

// Add records err.
func (l *ErrorList) Add(err *SyntaxError) {
	l.errs = append(l.errs, err)
}

// HasErrors reports whether anything was recorded.
func (l *ErrorList) HasErrors() bool {
	return len(l.errs) > 0
}

func (l *ErrorList) Len() int {
	return len(l.errs)
}

// All returns the recorded errors. The slice must not be modified.
func (l *ErrorList) All() []*SyntaxError {
	return l.errs
}

// String renders one "Line N: message" entry per error.
func (l *ErrorList) String() string {
	var sb strings.Builder
	for i, err := range l.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Line %d: %s", err.Line, err.Error())
	}
	return sb.String()
}
