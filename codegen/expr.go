package codegen

import "github.com/skx/subc/ast"

// genExpr emits code for an expression node, leaving exactly one value
// on the evaluation stack (spec §4.5 "Expression codegen"). Binary
// operators generate their left then right operand, pop into rax/rdi,
// emit the operation, and push rax; this shape is grounded on
// original_source/codegen.c's gen().
func (g *Generator) genExpr(n *ast.Node) {
	switch n.Kind {
	case ast.NUM:
		g.emitf("  push %d\n", n.Val)
		g.balance.Push(1)
		return

	case ast.VAR:
		g.genAddr(n)
		g.load(n.Ty)
		return

	case ast.MEMBER:
		g.genAddr(n)
		g.load(n.Ty)
		return

	case ast.ASSIGN:
		g.genLval(n.Lhs)
		g.genExpr(n.Rhs)
		g.store()
		return

	case ast.ADDR:
		g.genAddr(n.Lhs)
		return

	case ast.DEREF:
		g.genExpr(n.Lhs)
		g.load(n.Ty)
		return

	case ast.STMT_EXPR:
		g.genStmtExpr(n)
		return

	case ast.FUNCALL:
		g.genFuncall(n)
		return
	}

	g.genExpr(n.Lhs)
	g.genExpr(n.Rhs)
	g.popVal("rdi")
	g.popVal("rax")

	switch n.Kind {
	case ast.ADD:
		g.emit("  add rax, rdi\n")
	case ast.PTR_ADD:
		g.emitf("  imul rdi, %d\n", n.Ty.Base.Size)
		g.emit("  add rax, rdi\n")
	case ast.SUB:
		g.emit("  sub rax, rdi\n")
	case ast.PTR_SUB:
		g.emitf("  imul rdi, %d\n", n.Ty.Base.Size)
		g.emit("  sub rax, rdi\n")
	case ast.PTR_DIFF:
		g.emit("  sub rax, rdi\n")
		g.emit("  cqo\n")
		g.emitf("  mov rdi, %d\n", n.Lhs.Ty.Base.Size)
		g.emit("  idiv rdi\n")
	case ast.MUL:
		g.emit("  imul rax, rdi\n")
	case ast.DIV:
		g.emit("  cqo\n")
		g.emit("  idiv rdi\n")
	case ast.EQ:
		g.emit("  cmp rax, rdi\n")
		g.emit("  sete al\n")
		g.emit("  movzx rax, al\n")
	case ast.NE:
		g.emit("  cmp rax, rdi\n")
		g.emit("  setne al\n")
		g.emit("  movzx rax, al\n")
	case ast.LT:
		g.emit("  cmp rax, rdi\n")
		g.emit("  setl al\n")
		g.emit("  movzx rax, al\n")
	case ast.LE:
		g.emit("  cmp rax, rdi\n")
		g.emit("  setle al\n")
		g.emit("  movzx rax, al\n")
	default:
		g.unreachable(n)
		return
	}
	g.pushVal()
}

// genStmtExpr emits a GNU statement-expression: every statement but the
// last runs as an ordinary discarded statement, and the last (always an
// EXPR_STMT, enforced by ast.AddType) has its expression evaluated in
// value position, leaving its result as the whole construct's value.
func (g *Generator) genStmtExpr(n *ast.Node) {
	body := n.Body
	for body != nil && body.Next != nil {
		g.genStmt(body)
		body = body.Next
	}
	g.genExpr(body.Lhs)
}

// genFuncall evaluates each argument left to right, pops them in
// reverse into the System V argument registers, aligns rsp to 16 bytes
// at the call boundary (the ABI requirement, checked at run time since
// the dynamic call depth isn't known at compile time), and pushes the
// return value (spec §4.5 "FUNCALL").
func (g *Generator) genFuncall(n *ast.Node) {
	nargs := 0
	for a := n.Args; a != nil; a = a.Next {
		g.genExpr(a)
		nargs++
	}
	for i := nargs - 1; i >= 0; i-- {
		g.popVal(argRegs[i])
	}

	seq := g.nextLabel()
	g.emit("  mov rax, rsp\n")
	g.emit("  and rax, 15\n")
	g.emitf("  jnz .L.call.%d\n", seq)
	g.emitf("  mov rax, 0\n")
	g.emitf("  call _%s\n", n.FuncName)
	g.emitf("  jmp .L.endcall.%d\n", seq)
	g.emitf(".L.call.%d:\n", seq)
	g.emit("  sub rsp, 8\n")
	g.emit("  mov rax, 0\n")
	g.emitf("  call _%s\n", n.FuncName)
	g.emit("  add rsp, 8\n")
	g.emitf(".L.endcall.%d:\n", seq)
	g.pushVal()
}
