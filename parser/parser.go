// Package parser implements subc's recursive-descent parser (spec §4.4):
// it turns a token sequence into a typed Program, performing symbol
// resolution, struct layout, and "+"/"-" operator disambiguation as it
// goes.
//
// The overall shape — a hand-written descent with one method per grammar
// production, built on "new_node"/"new_binary"-style constructors — is
// grounded on original_source/parse.c, extended to the full grammar
// spec.md §6 specifies (declarations, control flow, structs, arrays,
// calls, sizeof, statement-expressions) that original_source predates.
package parser

import (
	"github.com/skx/subc/ast"
	"github.com/skx/subc/stack"
	"github.com/skx/subc/token"
)

// Parser holds the mutable state threaded through a single parse: the
// token cursor, the program-wide globals accumulator, the current
// function's locals accumulator, the name-resolution scope, and the
// anonymous-string-literal label counter.
//
// Spec §5 notes this state would be process-wide globals in the reference
// design; here it is owned by one Parser value instead.
type Parser struct {
	toks []token.Token
	pos  int

	globals []*ast.Var
	locals  []*ast.Var

	// scope is the union of visible locals and globals at the current
	// point, used for name resolution. Declaring a variable pushes it;
	// entering a block or function snapshots the depth and leaving
	// truncates back to it (spec §2, §4.4).
	scope *stack.Stack[*ast.Var]

	// strSeq numbers the anonymous globals synthesized for string
	// literals (".L.data.N").
	strSeq int
}

// Parse builds a typed Program from a complete token sequence.
func Parse(toks []token.Token) *ast.Program {
	p := &Parser{toks: toks, scope: stack.New[*ast.Var]()}

	prog := &ast.Program{}
	for !p.atEOF() {
		if p.startsFunction() {
			prog.Funcs = append(prog.Funcs, p.function())
		} else {
			p.globalVar()
		}
	}
	prog.Globals = p.globals
	return prog
}

// startsFunction implements the top-level function-vs-global lookahead
// (spec §4.4): speculatively read a base type and an identifier and check
// for a following "(", then rewind regardless of the outcome.
func (p *Parser) startsFunction() bool {
	save := p.pos
	defer func() { p.pos = save }()

	p.baseType()
	if _, ok := p.consumeIdent(); !ok {
		return false
	}
	return p.peek("(")
}

// findVar resolves name against the current scope, most-recently-declared
// first so that inner declarations shadow outer ones (spec §3 invariant 4).
func (p *Parser) findVar(name string) *ast.Var {
	entries := p.scope.All()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Name == name {
			return entries[i]
		}
	}
	return nil
}

// alignTo rounds n up to the next multiple of align.
func alignTo(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
