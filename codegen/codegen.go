// Package codegen walks a parsed Program and emits x86-64 assembly in
// Intel syntax (spec §4.5). The overall shape — a gen_addr/load/store
// split, per-kind emission, and a monotonic label counter — is grounded
// on original_source/codegen.c, generalized from its single hard-coded
// ".L.return" label to one per function and extended to the fuller node
// set spec.md §6 adds (pointers, structs, arrays, control flow, calls,
// statement-expressions). Emission via fmt.Fprintf into a strings.Builder,
// one method per node kind, follows the teacher compiler's
// generator.go layout.
package codegen

import (
	"fmt"
	"strings"

	"github.com/skx/subc/ast"
	"github.com/skx/subc/internal/diag"
	"github.com/skx/subc/stack"
)

// argRegs holds the System V integer argument registers, used in order
// for a function call's first six arguments (spec §4.5, §9).
var argRegs = []string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// Generator holds the mutable state threaded through one Generate call:
// the output buffer, the label sequence, the name of the function
// currently being emitted (for its ".L.return" label), and a push/pop
// balance tracker.
type Generator struct {
	out strings.Builder

	debug bool

	labelSeq int

	curFunc string

	// balance counts the values the emitted code has pushed on the
	// evaluation stack. Popping it when empty is always an internal
	// error; when debug is set, assertBalanced also checks that it is
	// empty at the end of each function body. It mirrors the reference
	// compiler's runtime "[depth]" counter, checked here at compile time
	// instead of at run time.
	balance *stack.Stack[int]
}

// New creates a Generator. When debug is set, a "int3" breakpoint is
// emitted at the start of each function body.
func New(debug bool) *Generator {
	return &Generator{debug: debug, balance: stack.New[int]()}
}

// Generate emits a complete assembly file for prog.
func (g *Generator) Generate(prog *ast.Program) string {
	g.emit(".intel_syntax noprefix\n")
	g.genGlobals(prog.Globals)

	for _, fn := range prog.Funcs {
		g.emitf(".global _%s\n", fn.Name)
	}
	for _, fn := range prog.Funcs {
		g.genFunction(fn)
	}

	return g.out.String()
}

// emit writes s verbatim to the output.
func (g *Generator) emit(s string) {
	g.out.WriteString(s)
}

// emitf writes a formatted line to the output.
func (g *Generator) emitf(format string, args ...interface{}) {
	fmt.Fprintf(&g.out, format, args...)
}

// nextLabel returns the next label sequence number.
func (g *Generator) nextLabel() int {
	g.labelSeq++
	return g.labelSeq
}

// pushVal emits a push of rax onto the evaluation stack and records it
// on the debug balance tracker.
func (g *Generator) pushVal() {
	g.emit("  push rax\n")
	g.balance.Push(1)
}

// popVal emits a pop of the evaluation stack's top value into reg and
// records it on the debug balance tracker.
func (g *Generator) popVal(reg string) {
	g.emitf("  pop %s\n", reg)
	if _, err := g.balance.Pop(); err != nil {
		diag.Fatal("internal error: popVal on an empty evaluation stack in %s", g.curFunc)
	}
}

// dropVal discards the evaluation stack's top value in place, used by
// EXPR_STMT to throw away a statement's expression result (spec §4.5).
func (g *Generator) dropVal() {
	g.emit("  add rsp, 8\n")
	if _, err := g.balance.Pop(); err != nil {
		diag.Fatal("internal error: dropVal on an empty evaluation stack in %s", g.curFunc)
	}
}

// assertBalanced reports an internal error and exits with status 1 if the
// evaluation stack isn't empty at a point it should be (only when debug
// is set); this is the
// compile-time analogue of the reference compiler's runtime stack-depth
// check.
func (g *Generator) assertBalanced() {
	if g.debug && !g.balance.Empty() {
		diag.Fatal("internal error: unbalanced evaluation stack in %s (depth %d)", g.curFunc, g.balance.Len())
	}
}

// genGlobals emits the ".data" section: a ".zero" reservation for plain
// globals, and a ".byte" sequence for globals synthesized from string
// literals (spec §4.5, §6 scenario 6).
func (g *Generator) genGlobals(globals []*ast.Var) {
	if len(globals) == 0 {
		return
	}

	g.emit(".data\n")
	for _, v := range globals {
		g.emitf("%s:\n", v.Name)
		if v.Contents == nil {
			g.emitf("  .zero %d\n", v.Ty.Size)
			continue
		}
		for _, b := range v.Contents {
			g.emitf("  .byte %d\n", b)
		}
	}
}

// genFunction emits one function's prologue, body and epilogue (spec
// §4.5 "Function prologue/epilogue").
func (g *Generator) genFunction(fn *ast.Function) {
	g.curFunc = fn.Name

	g.emitf("_%s:\n", fn.Name)
	g.emit("  push rbp\n")
	g.emit("  mov rbp, rsp\n")
	g.emitf("  sub rsp, %d\n", fn.StackSize)

	if g.debug {
		g.emit("  int3\n")
	}

	for i, p := range fn.Params {
		g.emitf("  mov [rbp-%d], %s\n", p.Offset, argRegs[i])
	}

	for n := fn.Body; n != nil; n = n.Next {
		g.genStmt(n)
	}
	g.assertBalanced()

	g.emitf(".L.return.%s:\n", fn.Name)
	g.emit("  mov rsp, rbp\n")
	g.emit("  pop rbp\n")
	g.emit("  ret\n")
}

// unreachable reports an internal inconsistency: a node kind codegen
// doesn't know how to handle, which AddType should have ruled out
// earlier. It is never expected to fire against parser output.
func (g *Generator) unreachable(n *ast.Node) {
	diag.At(n.Tok.Pos, "internal error: unhandled node kind %q in codegen", n.Kind)
}
