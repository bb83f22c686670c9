// Package lexer converts a source buffer into a token sequence (spec §4.1).
//
// The reference design produces a singly-linked token chain; following the
// rewrite guidance in spec §9 ("intrusive linked lists... become Vec<T>...
// in a safe rewrite"), and matching the teacher compiler's own
// []token.Token accumulator in compiler.go, Lex returns a slice instead.
package lexer

import (
	"strings"

	"github.com/skx/subc/internal/diag"
	"github.com/skx/subc/token"
)

// Lexer holds our object-state.
type Lexer struct {
	position     int    // current character position
	readPosition int    // next character position
	ch           rune   // current character
	characters   []rune // rune slice of input string
}

// New creates a Lexer instance from string input.
func New(input string) *Lexer {
	l := &Lexer{characters: []rune(input)}
	l.readChar()
	return l
}

// Lex runs the lexer to completion and returns the full token sequence,
// terminated by an EOF token.
func Lex(input string) []token.Token {
	l := New(input)

	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

// read one character forward.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.characters) {
		l.ch = rune(0)
	} else {
		l.ch = l.characters[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// NextToken reads the next token, skipping leading whitespace.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.position

	switch {
	case l.ch == rune(0):
		return token.Token{Kind: token.EOF, Pos: pos}

	case l.ch == '"':
		return l.readString(pos)

	case isDigit(l.ch):
		return l.readNumber(pos)

	case isIdentStart(l.ch):
		id := l.readIdentifier()
		if token.IsKeyword(id) {
			return token.Token{Kind: token.RESERVED, Literal: id, Pos: pos}
		}
		return token.Token{Kind: token.IDENT, Literal: id, Pos: pos}

	case isPunct(l.ch):
		return l.readPunctuator(pos)

	default:
		diag.At(pos, "invalid token")
		panic("unreachable")
	}
}

// readPunctuator recognizes a multi-character punctuator (longest match
// first) or falls back to a single punctuation byte.
func (l *Lexer) readPunctuator(pos int) token.Token {
	for _, p := range token.Punctuators {
		if l.startsWith(p) {
			for range p {
				l.readChar()
			}
			return token.Token{Kind: token.RESERVED, Literal: p, Pos: pos}
		}
	}

	ch := l.ch
	l.readChar()
	return token.Token{Kind: token.RESERVED, Literal: string(ch), Pos: pos}
}

// startsWith reports whether the remaining input begins with s.
func (l *Lexer) startsWith(s string) bool {
	runes := []rune(s)
	if l.position+len(runes) > len(l.characters) {
		return false
	}
	for i, r := range runes {
		if l.characters[l.position+i] != r {
			return false
		}
	}
	return true
}

// readString scans a double-quoted string literal. The interior bytes
// become the token's Literal, and StrLen counts them plus a trailing NUL
// (spec §4.1 rule 2); no escape processing is performed.
func (l *Lexer) readString(pos int) token.Token {
	l.readChar() // consume opening quote

	var sb strings.Builder
	for l.ch != '"' {
		if l.ch == rune(0) {
			diag.At(pos, "unclosed string literal")
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote

	contents := sb.String()
	return token.Token{
		Kind:    token.STR,
		Literal: contents,
		StrLen:  len(contents) + 1,
		Pos:     pos,
	}
}

// readNumber scans a decimal digit sequence.
func (l *Lexer) readNumber(pos int) token.Token {
	var sb strings.Builder
	for isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	lit := sb.String()
	var val int64
	for _, c := range lit {
		val = val*10 + int64(c-'0')
	}
	return token.Token{Kind: token.NUM, Literal: lit, Val: val, Pos: pos}
}

// readIdentifier scans [A-Za-z_][A-Za-z0-9_]*.
func (l *Lexer) readIdentifier() string {
	var sb strings.Builder
	for isIdentStart(l.ch) || isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return sb.String()
}

// skip white space.
func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// isPunct matches the ASCII punctuation/symbol bytes this grammar uses:
// operators, brackets and separators. Anything outside this set (and
// outside digits/letters/whitespace/quotes, already handled above) is an
// invalid token.
func isPunct(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>',
		'(', ')', '{', '}', '[', ']', ';', ',', '&', '.':
		return true
	}
	return false
}
