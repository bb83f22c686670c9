package parser

import (
	"github.com/skx/subc/internal/diag"
	"github.com/skx/subc/token"
)

// This file implements the token cursor primitives named by spec §4.2:
// peek, consume, consume_ident, expect, expect_number, expect_ident and
// at_eof. They are adapted to Go idiom as bool/ok-returning methods
// rather than returning a possibly-null Token pointer, but the semantics
// are identical to the spec's description.

// cur returns the token at the cursor without advancing.
func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

// peek reports whether the current token is RESERVED and spelled s,
// without advancing.
func (p *Parser) peek(s string) bool {
	return p.cur().Is(s)
}

// consume is like peek, but advances the cursor on a match.
func (p *Parser) consume(s string) bool {
	if p.peek(s) {
		p.pos++
		return true
	}
	return false
}

// consumeIdent returns the current token and advances if it is an IDENT.
func (p *Parser) consumeIdent() (token.Token, bool) {
	if p.cur().Kind == token.IDENT {
		t := p.cur()
		p.pos++
		return t, true
	}
	return token.Token{}, false
}

// expect consumes a RESERVED token spelled s, aborting with a caret
// diagnostic if the current token doesn't match.
func (p *Parser) expect(s string) token.Token {
	t := p.cur()
	if !p.consume(s) {
		diag.At(t.Pos, "expected %q", s)
	}
	return t
}

// expectNumber consumes a NUM token, aborting otherwise.
func (p *Parser) expectNumber() int64 {
	t := p.cur()
	if t.Kind != token.NUM {
		diag.At(t.Pos, "expected a number")
	}
	p.pos++
	return t.Val
}

// expectIdent consumes an IDENT token, aborting otherwise.
func (p *Parser) expectIdent() token.Token {
	t, ok := p.consumeIdent()
	if !ok {
		diag.At(p.cur().Pos, "expected an identifier")
	}
	return t
}

// atEOF reports whether the cursor has reached the EOF token.
func (p *Parser) atEOF() bool {
	return p.cur().Kind == token.EOF
}
