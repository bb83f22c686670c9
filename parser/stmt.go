package parser

import "github.com/skx/subc/ast"

// stmt parses one statement (spec §6 grammar: stmt).
func (p *Parser) stmt() *ast.Node {
	switch {
	case p.peek("return"):
		return p.returnStmt()
	case p.peek("if"):
		return p.ifStmt()
	case p.peek("while"):
		return p.whileStmt()
	case p.peek("for"):
		return p.forStmt()
	case p.peek("{"):
		return p.block()
	case p.peek("int"), p.peek("char"), p.peek("struct"):
		return p.declaration()
	default:
		return p.exprStmt()
	}
}

// stmtList parses statements up to (but not consuming) a closing "}",
// chaining them through Next.
func (p *Parser) stmtList() *ast.Node {
	head := &ast.Node{}
	cur := head
	for !p.peek("}") && !p.atEOF() {
		cur.Next = p.stmt()
		cur = cur.Next
	}
	return head.Next
}

// block parses a "{ stmt* }" compound statement, scoping locals
// declared inside it to the enclosing block (spec §3 invariant 4).
func (p *Parser) block() *ast.Node {
	tok := p.expect("{")
	depth := p.scope.Snapshot()

	body := p.stmtList()
	p.expect("}")

	p.scope.TruncateTo(depth)
	return &ast.Node{Kind: ast.BLOCK, Tok: tok, Body: body}
}

// returnStmt parses "return" expr ";".
func (p *Parser) returnStmt() *ast.Node {
	tok := p.expect("return")
	n := &ast.Node{Kind: ast.RETURN, Tok: tok, Lhs: p.expr()}
	p.expect(";")
	ast.AddType(n.Lhs)
	return n
}

// ifStmt parses "if" "(" expr ")" stmt ["else" stmt].
func (p *Parser) ifStmt() *ast.Node {
	tok := p.expect("if")
	p.expect("(")
	cond := p.expr()
	p.expect(")")
	then := p.stmt()

	n := &ast.Node{Kind: ast.IF, Tok: tok, Cond: cond, Then: then}
	if p.consume("else") {
		n.Els = p.stmt()
	}
	return n
}

// whileStmt parses "while" "(" expr ")" stmt.
func (p *Parser) whileStmt() *ast.Node {
	tok := p.expect("while")
	p.expect("(")
	cond := p.expr()
	p.expect(")")
	then := p.stmt()

	return &ast.Node{Kind: ast.WHILE, Tok: tok, Cond: cond, Then: then}
}

// forStmt parses "for" "(" expr_stmt? ";" expr? ";" expr_stmt? ")" stmt,
// wrapping any bare init/inc expression in an EXPR_STMT so that codegen
// sees a uniform statement shape (spec §6 grammar: for_stmt).
func (p *Parser) forStmt() *ast.Node {
	tok := p.expect("for")
	p.expect("(")

	n := &ast.Node{Kind: ast.FOR, Tok: tok}
	if !p.peek(";") {
		n.Init = p.wrapExprStmt(p.expr())
	}
	p.expect(";")

	if !p.peek(";") {
		n.Cond = p.expr()
	}
	p.expect(";")

	if !p.peek(")") {
		n.Inc = p.wrapExprStmt(p.expr())
	}
	p.expect(")")

	n.Then = p.stmt()
	return n
}

// wrapExprStmt wraps a bare expression as an EXPR_STMT node.
func (p *Parser) wrapExprStmt(e *ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.EXPR_STMT, Tok: e.Tok, Lhs: e}
}

// exprStmt parses a bare "expr ;" statement.
func (p *Parser) exprStmt() *ast.Node {
	e := p.expr()
	p.expect(";")
	return p.wrapExprStmt(e)
}

// declaration parses a local variable declaration, "basetype ident
// type_suffix (= expr)? ;". An initializer desugars to an assignment
// wrapped as an EXPR_STMT; a bare declaration produces a NULL statement
// (spec §6 grammar: declaration).
func (p *Parser) declaration() *ast.Node {
	ty := p.baseType()
	name := p.expectIdent()
	ty = p.typeSuffix(ty)

	v := p.newLocal(name.Literal, ty)

	if !p.consume("=") {
		p.expect(";")
		return &ast.Node{Kind: ast.NULL, Tok: name}
	}

	lhs := &ast.Node{Kind: ast.VAR, Var: v, Tok: name}
	rhs := p.expr()
	p.expect(";")

	assign := p.newAssign(lhs, rhs, name)
	return p.wrapExprStmt(assign)
}
