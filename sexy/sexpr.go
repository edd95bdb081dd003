package sexy

import (
	"fmt"
	"strings"
	"unicode"
)

// NodeType represents the type of a Node
type NodeType int

const (
	NodeSymbol NodeType = iota + 1
	NodeString
	NodeInteger
	NodeList
)

func (t NodeType) String() string {
	switch t {
	case NodeSymbol:
		return "symbol"
	case NodeString:
		return "string"
	case NodeInteger:
		return "integer"
	case NodeList:
		return "list"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Node is an atom or a list in an s-expression tree pattern.
type Node struct {
	Type  NodeType
	Text  string  // NodeSymbol, NodeString, NodeInteger
	Items []*Node // NodeList
}

func (n *Node) String() string {
	switch n.Type {
	case NodeSymbol, NodeInteger:
		return n.Text
	case NodeString:
		escaped := strings.ReplaceAll(n.Text, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
		return "\"" + escaped + "\""
	case NodeList:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			parts[i] = item.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("UNKNOWN_NODE_TYPE_%d", n.Type)
	}
}

func NewSymbol(name string) *Node {
	return &Node{Type: NodeSymbol, Text: name}
}

func NewString(value string) *Node {
	return &Node{Type: NodeString, Text: value}
}

func NewInteger(text string) *Node {
	return &Node{Type: NodeInteger, Text: text}
}

func NewList(items []*Node) *Node {
	return &Node{Type: NodeList, Items: items}
}

// IsAtom checks if the node is an atomic value
func (n *Node) IsAtom() bool {
	return n.Type != NodeList
}

// Head returns the symbol naming a list like (print ...), or "" for anything else.
func (n *Node) Head() string {
	if n.Type != NodeList || len(n.Items) == 0 || n.Items[0].Type != NodeSymbol {
		return ""
	}
	return n.Items[0].Text
}

type parser struct {
	lexer        *lexer
	currentToken token
}

// Parse parses a single datum. Anything after it other than comments and
// whitespace is an error.
func Parse(input string) (*Node, error) {
	p := &parser{lexer: newLexer(input)}
	p.nextToken()

	result, err := p.parseDatum()
	if p.lexer.err != nil {
		// Lexer errors take priority because they might cause confusing parser errors.
		return nil, p.lexer.err
	}
	if err != nil {
		return nil, err
	}
	if p.currentToken.Type != tokenEOF {
		return nil, fmt.Errorf("expected EOF but got %s", p.currentToken.Type)
	}
	return result, nil
}

// ParseAll parses a sequence of data, one per statement in a program.
func ParseAll(input string) ([]*Node, error) {
	p := &parser{lexer: newLexer(input)}
	p.nextToken()

	var nodes []*Node
	for p.currentToken.Type != tokenEOF {
		n, err := p.parseDatum()
		if p.lexer.err != nil {
			return nil, p.lexer.err
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if p.lexer.err != nil {
		return nil, p.lexer.err
	}
	return nodes, nil
}

func (p *parser) nextToken() {
	p.currentToken = p.lexer.nextToken()
}

func (p *parser) parseDatum() (*Node, error) {
	tok := p.currentToken
	switch tok.Type {
	case tokenSymbol:
		p.nextToken()
		return NewSymbol(tok.Value), nil
	case tokenString:
		p.nextToken()
		return NewString(tok.Value), nil
	case tokenInteger:
		p.nextToken()
		return NewInteger(tok.Value), nil
	case tokenLParen:
		return p.parseList()
	default:
		return nil, fmt.Errorf("unexpected token: %s", tok.Type)
	}
}

func (p *parser) parseList() (*Node, error) {
	items := []*Node{}
	p.nextToken() // consume '('

	for p.currentToken.Type != tokenRParen && p.currentToken.Type != tokenEOF {
		item, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if p.currentToken.Type != tokenRParen {
		return nil, fmt.Errorf("expected ')' but got %s", p.currentToken.Type)
	}
	p.nextToken() // consume ')'
	return NewList(items), nil
}

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenSymbol
	tokenString
	tokenInteger
	tokenLParen
	tokenRParen
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenSymbol:
		return "symbol"
	case tokenString:
		return "string"
	case tokenInteger:
		return "integer"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return fmt.Sprintf("unknown token %d", int(t))
	}
}

type token struct {
	Type     tokenType
	Value    string
	Position int
}

type lexer struct {
	input    string
	position int
	current  rune
	err      error
}

func newLexer(input string) *lexer {
	l := &lexer{input: input}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.position >= len(l.input) {
		l.current = 0
	} else {
		l.current = rune(l.input[l.position])
	}
	l.position++
}

func (l *lexer) peekChar() rune {
	if l.position >= len(l.input) {
		return 0
	}
	return rune(l.input[l.position])
}

func (l *lexer) fail(format string, args ...any) token {
	if l.err == nil {
		l.err = fmt.Errorf(format, args...)
	}
	return token{Type: tokenEOF, Position: l.position - 1}
}

func (l *lexer) readWhile(pred func(rune) bool) string {
	start := l.position - 1
	for l.current != 0 && pred(l.current) {
		l.readChar()
	}
	return l.input[start : l.position-1]
}

func (l *lexer) readString() (string, error) {
	var sb strings.Builder
	l.readChar() // skip opening quote

	for l.current != '"' && l.current != 0 {
		if l.current == '\\' {
			l.readChar()
			switch l.current {
			case '"', '\\':
				sb.WriteRune(l.current)
			default:
				return "", fmt.Errorf("invalid escape sequence: \\%c", l.current)
			}
		} else {
			sb.WriteRune(l.current)
		}
		l.readChar()
	}

	if l.current != '"' {
		return "", fmt.Errorf("unterminated string")
	}
	l.readChar() // skip closing quote
	return sb.String(), nil
}

func (l *lexer) nextToken() token {
	for {
		for unicode.IsSpace(l.current) {
			l.readChar()
		}
		pos := l.position - 1

		switch {
		case l.current == 0:
			return token{Type: tokenEOF, Position: pos}
		case l.current == ';':
			l.readWhile(func(r rune) bool { return r != '\n' })
			continue
		case l.current == '(':
			l.readChar()
			return token{Type: tokenLParen, Value: "(", Position: pos}
		case l.current == ')':
			l.readChar()
			return token{Type: tokenRParen, Value: ")", Position: pos}
		case l.current == '"':
			str, err := l.readString()
			if err != nil {
				return l.fail("%v", err)
			}
			return token{Type: tokenString, Value: str, Position: pos}
		case unicode.IsDigit(l.current),
			(l.current == '-' || l.current == '+') && unicode.IsDigit(l.peekChar()):
			l.readChar()
			digits := l.readWhile(unicode.IsDigit)
			return token{Type: tokenInteger, Value: l.input[pos:pos+1] + digits, Position: pos}
		case unicode.IsLetter(l.current):
			symbol := l.readWhile(isSymbolChar)
			return token{Type: tokenSymbol, Value: symbol, Position: pos}
		default:
			// Unknown character is a syntax error
			return l.fail("unexpected character '%c'", l.current)
		}
	}
}

func isSymbolChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
