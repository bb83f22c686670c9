package codegen

import (
	"github.com/skx/subc/ast"
	"github.com/skx/subc/internal/diag"
	"github.com/skx/subc/types"
)

// genAddr pushes the effective address of an lvalue node (spec §4.5
// "Address vs value"): a local/global variable's storage address, a
// dereferenced pointer's pointee address, or a struct member's address
// via its base address plus offset.
func (g *Generator) genAddr(n *ast.Node) {
	switch n.Kind {
	case ast.VAR:
		if n.Var.IsLocal {
			g.emitf("  lea rax, [rbp-%d]\n", n.Var.Offset)
		} else {
			g.emitf("  lea rax, %s\n", n.Var.Name)
		}
		g.pushVal()

	case ast.DEREF:
		g.genExpr(n.Lhs)

	case ast.MEMBER:
		g.genAddr(n.Lhs)
		g.popVal("rax")
		g.emitf("  add rax, %d\n", n.Member.Offset)
		g.pushVal()

	default:
		diag.At(n.Tok.Pos, "not an lvalue")
	}
}

// genLval is genAddr, but rejects ARRAY-typed lvalues: an array has no
// standalone storage location distinct from its own address (spec
// §4.5).
func (g *Generator) genLval(n *ast.Node) {
	if n.Ty.Kind == types.ARRAY {
		diag.At(n.Tok.Pos, "not an lvalue")
	}
	g.genAddr(n)
}

// load replaces a pushed address with the value stored there. A struct
// or array is its own address, so loading it is a no-op: its "value" is
// already on the stack.
func (g *Generator) load(ty *types.Type) {
	if ty.Kind == types.ARRAY || ty.Kind == types.STRUCT {
		return
	}
	g.popVal("rax")
	g.emit("  mov rax, [rax]\n")
	g.pushVal()
}

// store pops a value and an address (pushed in that order by an
// assignment's code shape) and writes the value to the address,
// leaving the value on the stack as the assignment expression's result.
func (g *Generator) store() {
	g.popVal("rdi")
	g.popVal("rax")
	g.emit("  mov [rax], rdi\n")
	g.pushVal()
}
