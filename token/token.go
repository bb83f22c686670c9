// Package token contains the tokens that the lexer produces when scanning
// a source file.
package token

// Kind is the variety of a Token.
type Kind string

// Token represents a single lexical unit of the source program.
type Token struct {
	Kind Kind

	// Literal is the token's spelling as it appeared in the source; for
	// NUM this is the digit sequence, for STR it holds the raw bytes
	// between the quotes (no escape processing, no trailing NUL), for
	// IDENT/RESERVED it is the spelling.
	Literal string

	// Val holds the parsed value of a NUM token.
	Val int64

	// StrLen is the byte length of Literal plus one for the NUL
	// terminator the string's storage carries, valid only for STR tokens.
	StrLen int

	// Pos is the byte offset of the token's first character in the
	// original source buffer, used for caret diagnostics.
	Pos int
}

// pre-defined Kind values.
const (
	EOF      Kind = "EOF"
	RESERVED Kind = "RESERVED"
	NUM      Kind = "NUM"
	IDENT    Kind = "IDENT"
	STR      Kind = "STR"
)

// keywords are reserved identifiers; a match must be followed by a
// non-identifier byte to count (see lexer.Lex).
var keywords = map[string]bool{
	"return": true,
	"if":     true,
	"else":   true,
	"while":  true,
	"for":    true,
	"int":    true,
	"char":   true,
	"sizeof": true,
	"struct": true,
}

// IsKeyword reports whether ident is a reserved word.
func IsKeyword(ident string) bool {
	return keywords[ident]
}

// Punctuators are multi-character punctuators, tried longest-match-first.
// Single-character punctuation is recognized directly by the lexer.
var Punctuators = []string{
	"==", "!=", "<=", ">=",
}

// Is reports whether t is a RESERVED token spelled exactly s.
func (t Token) Is(s string) bool {
	return t.Kind == RESERVED && t.Literal == s
}
