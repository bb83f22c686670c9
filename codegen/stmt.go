package codegen

import "github.com/skx/subc/ast"

// genStmt emits code for one statement node (spec §4.5 "Statement
// codegen"). Every statement shape here is grounded on
// original_source/codegen.c's gen(), generalized to WHILE/FOR/BLOCK/
// STMT_EXPR and the per-function return label.
func (g *Generator) genStmt(n *ast.Node) {
	switch n.Kind {
	case ast.NULL:
		return

	case ast.EXPR_STMT:
		g.genExpr(n.Lhs)
		g.dropVal()

	case ast.RETURN:
		g.genExpr(n.Lhs)
		g.popVal("rax")
		g.emitf("  jmp .L.return.%s\n", g.curFunc)

	case ast.IF:
		seq := g.nextLabel()
		g.genExpr(n.Cond)
		g.popVal("rax")
		g.emit("  cmp rax, 0\n")
		if n.Els != nil {
			g.emitf("  je  .L.else.%d\n", seq)
			g.genStmt(n.Then)
			g.emitf("  jmp .L.end.%d\n", seq)
			g.emitf(".L.else.%d:\n", seq)
			g.genStmt(n.Els)
		} else {
			g.emitf("  je  .L.end.%d\n", seq)
			g.genStmt(n.Then)
		}
		g.emitf(".L.end.%d:\n", seq)

	case ast.WHILE:
		seq := g.nextLabel()
		g.emitf(".L.begin.%d:\n", seq)
		g.genExpr(n.Cond)
		g.popVal("rax")
		g.emit("  cmp rax, 0\n")
		g.emitf("  je  .L.end.%d\n", seq)
		g.genStmt(n.Then)
		g.emitf("  jmp .L.begin.%d\n", seq)
		g.emitf(".L.end.%d:\n", seq)

	case ast.FOR:
		seq := g.nextLabel()
		if n.Init != nil {
			g.genStmt(n.Init)
		}
		g.emitf(".L.begin.%d:\n", seq)
		if n.Cond != nil {
			g.genExpr(n.Cond)
			g.popVal("rax")
			g.emit("  cmp rax, 0\n")
			g.emitf("  je  .L.end.%d\n", seq)
		}
		g.genStmt(n.Then)
		if n.Inc != nil {
			g.genStmt(n.Inc)
		}
		g.emitf("  jmp .L.begin.%d\n", seq)
		g.emitf(".L.end.%d:\n", seq)

	case ast.BLOCK:
		for b := n.Body; b != nil; b = b.Next {
			g.genStmt(b)
		}

	default:
		g.unreachable(n)
	}
}
