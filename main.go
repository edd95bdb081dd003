package main

import (
	"strconv"
	"unicode"
)

// Tokens of the PreTee language.
const (
	COMMENT  = "#"
	ASSIGN   = "="
	PRINT    = "@"
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	FLOORDIV = "//"
)

// isMathOp reports whether tok is one of the four arithmetic operators.
func isMathOp(tok string) bool {
	switch tok {
	case PLUS, MINUS, ASTERISK, FLOORDIV:
		return true
	}
	return false
}

// isIdentifier matches a letter or underscore followed by letters, digits or underscores.
func isIdentifier(tok string) bool {
	if tok == "" {
		return false
	}
	for i, r := range tok {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// isInteger matches one or more decimal digits.
func isInteger(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// NodeKind represents different types of AST nodes
type NodeKind string

const (
	NodeLiteral  NodeKind = "NodeLiteral"
	NodeVariable NodeKind = "NodeVariable"
	NodeAssign   NodeKind = "NodeAssign"
	NodePrint    NodeKind = "NodePrint"
	NodeMath     NodeKind = "NodeMath"
)

// ASTNode represents a node in the Abstract Syntax Tree
type ASTNode struct {
	Kind NodeKind
	// NodeLiteral:
	Integer int64
	Blank   bool // the value of a bare "@" line
	// NodeVariable:
	Name string
	// NodeMath:
	Op string // "+", "-", "*", "//"
	// NodeAssign: target, value. NodePrint: expr. NodeMath: left, right.
	Children []*ASTNode
	// Source line of a root node, 0 for nested nodes.
	Line int
}

func newLiteral(v int64) *ASTNode {
	return &ASTNode{Kind: NodeLiteral, Integer: v}
}

func newBlank() *ASTNode {
	return &ASTNode{Kind: NodeLiteral, Blank: true}
}

func newVariable(name string) *ASTNode {
	return &ASTNode{Kind: NodeVariable, Name: name}
}

func newAssign(target, value *ASTNode) *ASTNode {
	return &ASTNode{Kind: NodeAssign, Children: []*ASTNode{target, value}}
}

func newPrint(expr *ASTNode) *ASTNode {
	return &ASTNode{Kind: NodePrint, Children: []*ASTNode{expr}}
}

func newMath(op string, left, right *ASTNode) *ASTNode {
	return &ASTNode{Kind: NodeMath, Op: op, Children: []*ASTNode{left, right}}
}

// IsValue reports whether the node yields a usable integer, i.e. whether it may
// appear as a math operand or an assigned value.
func (n *ASTNode) IsValue() bool {
	switch n.Kind {
	case NodeLiteral:
		return !n.Blank
	case NodeVariable, NodeMath:
		return true
	}
	return false
}

// Emit renders the node as infix source text.
func (n *ASTNode) Emit() string {
	switch n.Kind {
	case NodeLiteral:
		if n.Blank {
			return ""
		}
		return strconv.FormatInt(n.Integer, 10)
	case NodeVariable:
		return n.Name
	case NodeMath:
		return n.Children[0].Emit() + " " + n.Op + " " + n.Children[1].Emit()
	case NodeAssign:
		return n.Children[0].Emit() + " " + ASSIGN + " " + n.Children[1].Emit()
	case NodePrint:
		return PRINT + n.Children[0].Emit()
	default:
		return ""
	}
}

// Evaluate computes the node against st. ok is false for nodes that only act
// (assignments) and for the blank print value.
func (n *ASTNode) Evaluate(st *SymbolTable) (value int64, ok bool, err error) {
	switch n.Kind {
	case NodeLiteral:
		if n.Blank {
			return 0, false, nil
		}
		return n.Integer, true, nil
	case NodeVariable:
		v, err := st.Get(n.Name)
		if err != nil {
			return 0, false, err
		}
		return v, true, nil
	case NodeMath:
		left, _, err := n.Children[0].Evaluate(st)
		if err != nil {
			return 0, false, err
		}
		right, _, err := n.Children[1].Evaluate(st)
		if err != nil {
			return 0, false, err
		}
		v, err := applyMath(n.Op, left, right)
		if err != nil {
			return 0, false, err
		}
		return v, true, nil
	case NodeAssign:
		v, _, err := n.Children[1].Evaluate(st)
		if err != nil {
			return 0, false, err
		}
		st.Set(n.Children[0].Name, v)
		return 0, false, nil
	case NodePrint:
		return n.Children[0].Evaluate(st)
	default:
		return 0, false, nil
	}
}

func applyMath(op string, left, right int64) (int64, error) {
	switch op {
	case PLUS:
		return left + right, nil
	case MINUS:
		return left - right, nil
	case ASTERISK:
		return left * right, nil
	case FLOORDIV:
		if right == 0 {
			return 0, &RuntimeError{Kind: DivisionByZero}
		}
		return floorDiv(left, right), nil
	default:
		panic("unknown math operator " + op)
	}
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ToSExpr converts an AST node to s-expression string representation
func ToSExpr(node *ASTNode) string {
	switch node.Kind {
	case NodeLiteral:
		if node.Blank {
			return "(blank)"
		}
		return "(integer " + strconv.FormatInt(node.Integer, 10) + ")"
	case NodeVariable:
		return "(var \"" + node.Name + "\")"
	case NodeMath:
		left := ToSExpr(node.Children[0])
		right := ToSExpr(node.Children[1])
		return "(math \"" + node.Op + "\" " + left + " " + right + ")"
	case NodeAssign:
		return "(assign " + ToSExpr(node.Children[0]) + " " + ToSExpr(node.Children[1]) + ")"
	case NodePrint:
		return "(print " + ToSExpr(node.Children[0]) + ")"
	default:
		return ""
	}
}
