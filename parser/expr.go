package parser

import (
	"github.com/skx/subc/ast"
	"github.com/skx/subc/internal/diag"
	"github.com/skx/subc/token"
	"github.com/skx/subc/types"
)

// expr parses the lowest-precedence production: assignment (spec §6
// grammar: expr).
func (p *Parser) expr() *ast.Node {
	return p.assign()
}

// assign parses "equality (= assign)?", right-associatively.
func (p *Parser) assign() *ast.Node {
	n := p.equality()
	if tok := p.cur(); p.consume("=") {
		n = p.newAssign(n, p.assign(), tok)
	}
	return n
}

// equality parses "relational (('==' | '!=') relational)*".
func (p *Parser) equality() *ast.Node {
	n := p.relational()
	for {
		tok := p.cur()
		switch {
		case p.consume("=="):
			n = p.newCompare(ast.EQ, n, p.relational(), tok)
		case p.consume("!="):
			n = p.newCompare(ast.NE, n, p.relational(), tok)
		default:
			return n
		}
	}
}

// relational parses "add (('<' | '<=' | '>' | '>=') add)*". ">"/">="
// are rewritten as "<"/"<=" with swapped operands (spec §6 grammar:
// relational).
func (p *Parser) relational() *ast.Node {
	n := p.add()
	for {
		tok := p.cur()
		switch {
		case p.consume("<"):
			n = p.newCompare(ast.LT, n, p.add(), tok)
		case p.consume("<="):
			n = p.newCompare(ast.LE, n, p.add(), tok)
		case p.consume(">"):
			n = p.newCompare(ast.LT, p.add(), n, tok)
		case p.consume(">="):
			n = p.newCompare(ast.LE, p.add(), n, tok)
		default:
			return n
		}
	}
}

// add parses "mul (('+' | '-') mul)*", promoting to pointer arithmetic
// via newAdd/newSub as needed.
func (p *Parser) add() *ast.Node {
	n := p.mul()
	for {
		tok := p.cur()
		switch {
		case p.consume("+"):
			n = p.newAdd(n, p.mul(), tok)
		case p.consume("-"):
			n = p.newSub(n, p.mul(), tok)
		default:
			return n
		}
	}
}

// mul parses "unary (('*' | '/') unary)*".
func (p *Parser) mul() *ast.Node {
	n := p.unary()
	for {
		tok := p.cur()
		switch {
		case p.consume("*"):
			n = p.newBinary(ast.MUL, n, p.unary(), tok)
		case p.consume("/"):
			n = p.newBinary(ast.DIV, n, p.unary(), tok)
		default:
			return n
		}
	}
}

// unary parses a prefix "+"/"-"/"*"/"&" applied to another unary, or
// falls through to postfix (spec §6 grammar: unary).
func (p *Parser) unary() *ast.Node {
	tok := p.cur()
	switch {
	case p.consume("+"):
		return p.unary()
	case p.consume("-"):
		return p.newBinary(ast.SUB, p.newNum(0, tok), p.unary(), tok)
	case p.consume("&"):
		n := &ast.Node{Kind: ast.ADDR, Tok: tok, Lhs: p.unary()}
		ast.AddType(n)
		return n
	case p.consume("*"):
		return p.newDeref(p.unary(), tok)
	default:
		return p.postfix()
	}
}

// postfix parses "primary ('[' expr ']' | '.' ident)*": array indexing
// desugars to "*(a+b)" and member access resolves the named field (spec
// §6 grammar: postfix).
func (p *Parser) postfix() *ast.Node {
	n := p.primary()
	for {
		tok := p.cur()
		switch {
		case p.consume("["):
			idx := p.expr()
			p.expect("]")
			n = p.newDeref(p.newAdd(n, idx, tok), tok)
		case p.consume("."):
			name := p.expectIdent()
			n = p.newMember(n, name)
		default:
			return n
		}
	}
}

// primary parses the grammar's leaves: parenthesized expressions and
// statement-expressions, sizeof, numbers, string literals, and
// identifiers (variable references and function calls) (spec §6
// grammar: primary).
func (p *Parser) primary() *ast.Node {
	tok := p.cur()

	if p.consume("(") {
		if p.peek("{") {
			n := p.stmtExpr(tok)
			p.expect(")")
			return n
		}
		n := p.expr()
		p.expect(")")
		return n
	}

	if p.consume("sizeof") {
		operand := p.unary()
		ast.AddType(operand)
		return p.newNum(int64(operand.Ty.Size), tok)
	}

	if tok.Kind == token.NUM {
		p.pos++
		return p.newNum(tok.Val, tok)
	}

	if tok.Kind == token.STR {
		p.pos++
		return p.newStringLiteral(tok)
	}

	if ident, ok := p.consumeIdent(); ok {
		if p.peek("(") {
			return p.funcall(ident)
		}
		v := p.findVar(ident.Literal)
		if v == nil {
			diag.At(ident.Pos, "undefined variable: %s", ident.Literal)
		}
		n := &ast.Node{Kind: ast.VAR, Var: v, Tok: ident}
		ast.AddType(n)
		return n
	}

	diag.At(tok.Pos, "expected an expression")
	panic("unreachable")
}

// stmtExpr parses a GNU-style "({ stmt+ })" statement-expression (spec
// §6 grammar: stmt_expr; §4.3 types it as its final statement's value).
func (p *Parser) stmtExpr(tok token.Token) *ast.Node {
	p.expect("{")
	depth := p.scope.Snapshot()

	body := p.stmtList()
	if body == nil {
		diag.At(tok.Pos, "statement expression requires at least one statement")
	}

	p.expect("}")
	p.scope.TruncateTo(depth)

	n := &ast.Node{Kind: ast.STMT_EXPR, Tok: tok, Body: body}
	ast.AddType(n)
	return n
}

// funcall parses "ident ( arg (, arg)* )". The argument count is not
// checked here; codegen passes arguments only in the six System V integer
// registers (spec §4.5).
func (p *Parser) funcall(name token.Token) *ast.Node {
	p.expect("(")

	n := &ast.Node{Kind: ast.FUNCALL, Tok: name, FuncName: name.Literal}
	if p.consume(")") {
		ast.AddType(n)
		return n
	}

	head := &ast.Node{}
	cur := head
	cur.Next = p.expr()
	cur = cur.Next
	for p.consume(",") {
		cur.Next = p.expr()
		cur = cur.Next
	}
	p.expect(")")

	n.Args = head.Next
	ast.AddType(n)
	return n
}

// newAdd builds an ADD or PTR_ADD node, orienting pointer arithmetic so
// the pointer operand is always Lhs; codegen scales Rhs by the pointee
// size (resolves the PTR_ADD
// type-discrepancy open question: see DESIGN.md).
func (p *Parser) newAdd(lhs, rhs *ast.Node, tok token.Token) *ast.Node {
	ast.AddType(lhs)
	ast.AddType(rhs)

	lp, rp := types.HasBase(lhs.Ty), types.HasBase(rhs.Ty)
	switch {
	case !lp && !rp:
		return p.newBinary(ast.ADD, lhs, rhs, tok)
	case lp && rp:
		diag.At(tok.Pos, "invalid operands to +: pointer + pointer")
	case !lp && rp:
		lhs, rhs = rhs, lhs
	}

	n := &ast.Node{Kind: ast.PTR_ADD, Tok: tok, Lhs: lhs, Rhs: rhs}
	ast.AddType(n)
	return n
}

// newSub builds a SUB, PTR_SUB or PTR_DIFF node depending on which
// operands carry a base type.
func (p *Parser) newSub(lhs, rhs *ast.Node, tok token.Token) *ast.Node {
	ast.AddType(lhs)
	ast.AddType(rhs)

	lp, rp := types.HasBase(lhs.Ty), types.HasBase(rhs.Ty)
	switch {
	case !lp && !rp:
		return p.newBinary(ast.SUB, lhs, rhs, tok)
	case lp && rp:
		n := &ast.Node{Kind: ast.PTR_DIFF, Tok: tok, Lhs: lhs, Rhs: rhs}
		ast.AddType(n)
		return n
	case lp && !rp:
		n := &ast.Node{Kind: ast.PTR_SUB, Tok: tok, Lhs: lhs, Rhs: rhs}
		ast.AddType(n)
		return n
	default:
		diag.At(tok.Pos, "invalid operands to -: int - pointer")
		panic("unreachable")
	}
}

// newBinary builds a plain INT-typed binary node.
func (p *Parser) newBinary(kind ast.Kind, lhs, rhs *ast.Node, tok token.Token) *ast.Node {
	n := &ast.Node{Kind: kind, Tok: tok, Lhs: lhs, Rhs: rhs}
	ast.AddType(n)
	return n
}

// newCompare builds an EQ/NE/LT/LE node.
func (p *Parser) newCompare(kind ast.Kind, lhs, rhs *ast.Node, tok token.Token) *ast.Node {
	return p.newBinary(kind, lhs, rhs, tok)
}

// newDeref builds a DEREF node, erroring at parse time (via AddType) if
// the operand isn't a pointer or array.
func (p *Parser) newDeref(lhs *ast.Node, tok token.Token) *ast.Node {
	n := &ast.Node{Kind: ast.DEREF, Tok: tok, Lhs: lhs}
	ast.AddType(n)
	return n
}

// newMember builds a MEMBER node, resolving name against lhs's struct
// type.
func (p *Parser) newMember(lhs *ast.Node, name token.Token) *ast.Node {
	ast.AddType(lhs)
	if lhs.Ty.Kind != types.STRUCT {
		diag.At(name.Pos, "not a struct")
	}
	m := lhs.Ty.Member(name.Literal)
	if m == nil {
		diag.At(name.Pos, "no such member: %s", name.Literal)
	}
	n := &ast.Node{Kind: ast.MEMBER, Tok: name, Lhs: lhs, Member: m}
	ast.AddType(n)
	return n
}

// newAssign builds an ASSIGN node.
func (p *Parser) newAssign(lhs, rhs *ast.Node, tok token.Token) *ast.Node {
	ast.AddType(lhs)
	ast.AddType(rhs)
	n := &ast.Node{Kind: ast.ASSIGN, Tok: tok, Lhs: lhs, Rhs: rhs}
	ast.AddType(n)
	return n
}

// newNum builds a NUM node.
func (p *Parser) newNum(val int64, tok token.Token) *ast.Node {
	n := &ast.Node{Kind: ast.NUM, Tok: tok, Val: val}
	ast.AddType(n)
	return n
}
