package main

import (
	"strconv"
	"strings"

	"github.com/edwingeng/deque"
)

// ParseLine classifies one source line and, for a statement, reduces it to a
// single tree. It returns (nil, nil) for blank and comment lines.
func ParseLine(line string) (*ASTNode, error) {
	if strings.HasPrefix(line, COMMENT) {
		return nil, nil
	}
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return nil, nil
	}

	if len(tokens) == 1 {
		if tokens[0] == PRINT {
			return newPrint(newBlank()), nil
		}
		return nil, newSyntaxError(IncompleteStatement, "")
	}

	for _, tok := range tokens[1:] {
		if tok == ASSIGN {
			return nil, newSyntaxError(InvalidToken, ASSIGN)
		}
	}

	// Bare arithmetic produces nothing observable, so only assignments and
	// prints may start a statement.
	if tokens[0] != ASSIGN && tokens[0] != PRINT {
		return nil, newSyntaxError(InvalidToken, tokens[0])
	}

	reversed := make([]string, len(tokens))
	for i, tok := range tokens {
		reversed[len(tokens)-1-i] = tok
	}
	return reduce(reversed)
}

// tokenize splits line on whitespace. A print marker glued to its operand,
// as in "@x", is split off so that emitted source reads back the same way.
func tokenize(line string) []string {
	var tokens []string
	for _, field := range strings.Fields(line) {
		for len(field) > len(PRINT) && strings.HasPrefix(field, PRINT) {
			tokens = append(tokens, PRINT)
			field = field[len(PRINT):]
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// reduce builds a tree from the tokens of one line in reverse order. Reversed
// prefix notation reads like postfix: every operator follows its operands, so
// a single stack suffices.
func reduce(tokens []string) (*ASTNode, error) {
	stack := deque.NewDeque()
	pop := func() *ASTNode {
		return stack.PopBack().(*ASTNode)
	}

	for _, tok := range tokens {
		switch {
		case isIdentifier(tok):
			stack.PushBack(newVariable(tok))

		case isInteger(tok):
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, newSyntaxError(InvalidToken, tok)
			}
			stack.PushBack(newLiteral(v))

		case tok == ASSIGN:
			if stack.Len() < 2 {
				return nil, newSyntaxError(IncompleteStatement, "")
			}
			target, value := pop(), pop()
			if target.Kind != NodeVariable {
				return nil, newSyntaxError(InvalidAssignmentTarget, "")
			}
			if !value.IsValue() {
				return nil, newSyntaxError(BadAssignmentExpression, "")
			}
			stack.PushBack(newAssign(target, value))

		case tok == PRINT:
			if stack.Len() < 1 {
				return nil, newSyntaxError(IncompleteStatement, "")
			}
			expr := pop()
			if !expr.IsValue() {
				return nil, newSyntaxError(IncompleteStatement, "")
			}
			stack.PushBack(newPrint(expr))

		case isMathOp(tok):
			if stack.Len() < 2 {
				return nil, newSyntaxError(IncompleteStatement, "")
			}
			// The operand written first was pushed last.
			left, right := pop(), pop()
			if !left.IsValue() || !right.IsValue() {
				return nil, newSyntaxError(IncompleteStatement, "")
			}
			stack.PushBack(newMath(tok, left, right))

		default:
			return nil, newSyntaxError(InvalidToken, tok)
		}
	}

	if stack.Len() != 1 {
		return nil, newSyntaxError(IncompleteStatement, "")
	}
	return pop(), nil
}
