package expr

import (
	"fmt"

	"github.com/rudell/cubecalc/bcp"
)

// ParseError is a one-line diagnostic identifying the byte offset and
// character that defeated the parser.
type ParseError struct {
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: %s at byte %d", e.Reason, e.Offset)
}

type parser struct {
	ctx *bcp.Context
	s   string
	pos int
}

// Parse reads one expression from s, terminated by ctx.Punct.End (or end of
// string), using ctx's configurable operator/punctuation characters
//. Identifiers are maximal runs of [A-Za-z0-9_]; referencing
// one registers it in ctx's symbol table via DefineVar.
func Parse(ctx *bcp.Context, s string) (*Node, error) {
	p := &parser{ctx: ctx, s: s}
	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ctx.Punct.End {
		p.pos++
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, &ParseError{Offset: p.pos, Reason: fmt.Sprintf("unexpected trailing input %q", p.s[p.pos:])}
	}
	return n, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0, false
	}
	return p.s[p.pos], true
}

// parseOr := parseAnd (Or parseAnd)*
func (p *parser) parseOr() (*Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	children := []*Node{left}
	for {
		ch, ok := p.peek()
		if !ok || ch != p.ctx.Punct.Or {
			break
		}
		p.pos++
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return or(children...), nil
}

// parseAnd := unary (And unary)*
func (p *parser) parseAnd() (*Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	children := []*Node{left}
	for {
		ch, ok := p.peek()
		if !ok || ch != p.ctx.Punct.And {
			break
		}
		p.pos++
		next, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return and(children...), nil
}

// parseUnary := Not unary | primary
func (p *parser) parseUnary() (*Node, error) {
	ch, ok := p.peek()
	if ok && ch == p.ctx.Punct.Not {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		inner.IsNot = !inner.IsNot
		return inner, nil
	}
	return p.parsePrimary()
}

// parsePrimary := True | False | Ident | '(' parseOr ')'
func (p *parser) parsePrimary() (*Node, error) {
	ch, ok := p.peek()
	if !ok {
		return nil, &ParseError{Offset: p.pos, Reason: "unexpected end of expression"}
	}
	switch {
	case ch == p.ctx.Punct.True:
		p.pos++
		return num(true), nil
	case ch == p.ctx.Punct.False:
		p.pos++
		return num(false), nil
	case ch == '(':
		p.pos++
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		ch, ok := p.peek()
		if !ok || ch != ')' {
			return nil, &ParseError{Offset: p.pos, Reason: "missing closing ')'"}
		}
		p.pos++
		return inner, nil
	case isIdentStart(ch):
		start := p.pos
		for p.pos < len(p.s) && isIdentChar(p.s[p.pos]) {
			p.pos++
		}
		name := p.s[start:p.pos]
		p.ctx.DefineVar(name)
		return id(name), nil
	default:
		return nil, &ParseError{Offset: p.pos, Reason: fmt.Sprintf("unexpected character %q", ch)}
	}
}

func isIdentStart(ch byte) bool {
	return isIdentChar(ch)
}

func isIdentChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '_'
}
