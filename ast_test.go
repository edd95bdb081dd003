package main

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"
)

func TestEmit(t *testing.T) {
	tests := []struct {
		node     *ASTNode
		expected string
	}{
		{newLiteral(42), "42"},
		{newVariable("x"), "x"},
		{newMath(PLUS, newLiteral(3), newLiteral(4)), "3 + 4"},
		{newMath(FLOORDIV, newVariable("a"), newMath(ASTERISK, newLiteral(2), newVariable("b"))), "a // 2 * b"},
		{newAssign(newVariable("x"), newMath(MINUS, newLiteral(3), newLiteral(4))), "x = 3 - 4"},
		{newPrint(newVariable("x")), "@x"},
		{newPrint(newBlank()), "@"},
	}

	for _, test := range tests {
		be.Equal(t, test.node.Emit(), test.expected)
		// Emit is a pure function of the tree.
		be.Equal(t, test.node.Emit(), test.expected)
	}
}

func TestEvaluateMath(t *testing.T) {
	tests := []struct {
		op          string
		left, right int64
		expected    int64
	}{
		{PLUS, 3, 4, 7},
		{PLUS, -3, 4, 1},
		{MINUS, 3, 4, -1},
		{MINUS, 10, 3, 7},
		{ASTERISK, 6, 7, 42},
		{ASTERISK, -6, 7, -42},
		{FLOORDIV, 10, 3, 3},
		{FLOORDIV, 9, 3, 3},
		{FLOORDIV, -7, 2, -4},
		{FLOORDIV, 7, -2, -4},
		{FLOORDIV, -7, -2, 3},
		{FLOORDIV, -6, 2, -3},
		{FLOORDIV, 0, 5, 0},
	}

	st := NewSymbolTable()
	for _, test := range tests {
		node := newMath(test.op, newLiteral(test.left), newLiteral(test.right))
		v, ok, err := node.Evaluate(st)
		be.Err(t, err, nil)
		be.True(t, ok)
		if v != test.expected {
			t.Errorf("%d %s %d: expected %d, got %d", test.left, test.op, test.right, test.expected, v)
		}
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	node := newMath(FLOORDIV, newLiteral(10), newLiteral(0))
	_, _, err := node.Evaluate(NewSymbolTable())
	be.Err(t, err, ErrRuntime)

	var rt *RuntimeError
	be.True(t, errors.As(err, &rt))
	be.Equal(t, rt.Kind, DivisionByZero)
}

func TestEvaluateLeftBeforeRight(t *testing.T) {
	// Both operands are undefined; the left one must be reported.
	node := newMath(PLUS, newVariable("left"), newVariable("right"))
	_, _, err := node.Evaluate(NewSymbolTable())

	var rt *RuntimeError
	be.True(t, errors.As(err, &rt))
	be.Equal(t, rt.Name, "left")
}

func TestEvaluateAssignment(t *testing.T) {
	st := NewSymbolTable()
	st.Set("y", 2)
	node := newAssign(newVariable("x"), newMath(ASTERISK, newVariable("y"), newLiteral(21)))

	_, ok, err := node.Evaluate(st)
	be.Err(t, err, nil)
	be.True(t, !ok)

	v, err := st.Get("x")
	be.Err(t, err, nil)
	be.Equal(t, v, int64(42))
}

func TestEvaluateAssignmentFailureLeavesTableUntouched(t *testing.T) {
	st := NewSymbolTable()
	node := newAssign(newVariable("x"), newVariable("missing"))

	_, _, err := node.Evaluate(st)
	be.Err(t, err, ErrRuntime)
	be.Equal(t, st.Len(), 0)
}

func TestEvaluatePrint(t *testing.T) {
	st := NewSymbolTable()
	st.Set("x", 5)

	v, ok, err := newPrint(newVariable("x")).Evaluate(st)
	be.Err(t, err, nil)
	be.True(t, ok)
	be.Equal(t, v, int64(5))

	_, ok, err = newPrint(newBlank()).Evaluate(st)
	be.Err(t, err, nil)
	be.True(t, !ok)
}

func TestIsValue(t *testing.T) {
	be.True(t, newLiteral(1).IsValue())
	be.True(t, newVariable("x").IsValue())
	be.True(t, newMath(PLUS, newLiteral(1), newLiteral(2)).IsValue())
	be.True(t, !newBlank().IsValue())
	be.True(t, !newPrint(newLiteral(1)).IsValue())
	be.True(t, !newAssign(newVariable("x"), newLiteral(1)).IsValue())
}

func TestToSExpr(t *testing.T) {
	node := newAssign(newVariable("x"), newMath(FLOORDIV, newLiteral(10), newVariable("y")))
	be.Equal(t, ToSExpr(node), `(assign (var "x") (math "//" (integer 10) (var "y")))`)
	be.Equal(t, ToSExpr(newPrint(newBlank())), "(print (blank))")
}
