package parser

import (
	"testing"

	"github.com/skx/subc/ast"
	"github.com/skx/subc/internal/diag"
	"github.com/skx/subc/lexer"
	"github.com/skx/subc/types"
)

func init() {
	diag.Init("")
}

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	return Parse(lexer.Lex(src))
}

// Trivial test of the minimal valid program.
func TestParseReturnConstant(t *testing.T) {
	prog := parse(t, "int main(){ return 42; }")

	if len(prog.Funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(prog.Funcs))
	}
	fn := prog.Funcs[0]
	if fn.Name != "main" {
		t.Fatalf("expected main, got %s", fn.Name)
	}
	if fn.Body == nil || fn.Body.Kind != ast.RETURN {
		t.Fatalf("expected a return statement, got %+v", fn.Body)
	}
	if fn.Body.Lhs.Val != 42 {
		t.Fatalf("expected 42, got %d", fn.Body.Lhs.Val)
	}
}

// Local variable declarations, assignment and arithmetic.
func TestParseLocalsAndArithmetic(t *testing.T) {
	prog := parse(t, "int main(){ int x; int y; x=3; y=4; return x+y*2; }")
	fn := prog.Funcs[0]

	if len(fn.Locals) != 2 {
		t.Fatalf("expected 2 locals, got %d", len(fn.Locals))
	}
	if fn.Locals[0].Offset != 8 || fn.Locals[1].Offset != 16 {
		t.Fatalf("expected sequential 8-byte offsets, got %d, %d",
			fn.Locals[0].Offset, fn.Locals[1].Offset)
	}
	if fn.StackSize != 16 {
		t.Fatalf("expected 16-byte frame, got %d", fn.StackSize)
	}
}

// Pointer arithmetic: with int *p, both p+0 and 1+p must become PTR_ADD
// with the pointer as Lhs and pointer typing, regardless of operand order.
func TestParsePointerArithmeticBothOrders(t *testing.T) {
	prog := parse(t, "int main(){ int x; int *p; p=&x; return *(p+0)+(*(1+p)); }")
	fn := prog.Funcs[0]

	ret := fn.Body.Next.Next.Next
	if ret.Kind != ast.RETURN {
		t.Fatalf("expected return statement, got %+v", ret)
	}
	if !types.IsInteger(ret.Lhs.Ty) {
		t.Fatalf("expected the overall return expression to be int-typed")
	}
	for i, d := range []*ast.Node{ret.Lhs.Lhs, ret.Lhs.Rhs} {
		if d.Kind != ast.DEREF || d.Lhs.Kind != ast.PTR_ADD || d.Lhs.Lhs.Var != fn.Locals[1] || d.Lhs.Ty.Kind != types.PTR {
			t.Fatalf("operand %d: expected *(PTR_ADD) with p as Lhs and pointer type, got %+v", i, d)
		}
	}
}

// Array declaration, sizeof, and a[i] desugaring to *(a+i).
func TestParseArrayIndexing(t *testing.T) {
	prog := parse(t, "int main(){ int a[3]; a[0]=1; a[1]=2; return a[0]+a[1]+sizeof(a); }")
	fn := prog.Funcs[0]

	if fn.Locals[0].Ty.Kind != types.ARRAY || fn.Locals[0].Ty.Len != 3 {
		t.Fatalf("expected a to be array[3], got %+v", fn.Locals[0].Ty)
	}

	assign := fn.Body.Next
	if assign.Lhs.Kind != ast.ASSIGN || assign.Lhs.Lhs.Kind != ast.DEREF {
		t.Fatalf("expected a[0]=1 to desugar to *(a+0)=1, got %+v", assign.Lhs)
	}
}

// Struct member access and unpadded layout (spec scenario 5).
func TestParseStructMemberAccess(t *testing.T) {
	prog := parse(t, `
		int main(){
			struct { char a; int b; } s;
			s.a = 1;
			s.b = 2;
			return s.a + s.b;
		}`)
	fn := prog.Funcs[0]

	sTy := fn.Locals[0].Ty
	if sTy.Kind != types.STRUCT {
		t.Fatalf("expected s to be a struct, got %+v", sTy)
	}
	if sTy.Member("a").Offset != 0 || sTy.Member("b").Offset != 1 {
		t.Fatalf("expected unpadded offsets 0 and 1, got %d and %d",
			sTy.Member("a").Offset, sTy.Member("b").Offset)
	}
	if sTy.Size != 9 {
		t.Fatalf("expected unpadded size 9, got %d", sTy.Size)
	}
}

// String literals become anonymous globals.
func TestParseStringLiteral(t *testing.T) {
	prog := parse(t, `int main(){ return puts("hi"); }`)

	if len(prog.Globals) != 1 {
		t.Fatalf("expected 1 synthesized global, got %d", len(prog.Globals))
	}
	g := prog.Globals[0]
	if g.ContLen != 3 {
		t.Fatalf("expected ContLen 3, got %d", g.ContLen)
	}
}

// Statement-expressions yield the value of their final expression
// statement.
func TestParseStatementExpression(t *testing.T) {
	prog := parse(t, "int main(){ return ({ int x; x=1; x+1; }); }")
	fn := prog.Funcs[0]

	ret := fn.Body
	if ret.Lhs.Kind != ast.STMT_EXPR {
		t.Fatalf("expected STMT_EXPR, got %q", ret.Lhs.Kind)
	}
	if !types.IsInteger(ret.Lhs.Ty) {
		t.Fatalf("expected int-typed statement-expression")
	}
}

// Control flow: if/else, while, for.
func TestParseControlFlow(t *testing.T) {
	prog := parse(t, `
		int main(){
			int i;
			int sum;
			sum = 0;
			for (i=0; i<10; i=i+1) {
				if (i == 5) sum = sum + 100; else sum = sum + 1;
			}
			while (sum > 1000) sum = sum - 1;
			return sum;
		}`)
	fn := prog.Funcs[0]

	var forNode *ast.Node
	for n := fn.Body; n != nil; n = n.Next {
		if n.Kind == ast.FOR {
			forNode = n
		}
	}
	if forNode == nil {
		t.Fatalf("expected a FOR statement")
	}
	if forNode.Then.Kind != ast.BLOCK {
		t.Fatalf("expected the for body to be a block")
	}
}

// Shadowing: an inner block's declaration of the same name resolves to
// the inner variable within the block, and the outer variable again
// afterwards.
func TestParseShadowing(t *testing.T) {
	prog := parse(t, `
		int main(){
			int x;
			x = 1;
			{
				int x;
				x = 2;
			}
			return x;
		}`)
	fn := prog.Funcs[0]

	if len(fn.Locals) != 2 {
		t.Fatalf("expected 2 distinct locals (outer and inner x), got %d", len(fn.Locals))
	}

	ret := fn.Body.Next.Next.Next
	if ret.Kind != ast.RETURN {
		t.Fatalf("expected return statement, got %+v", ret)
	}
	if ret.Lhs.Var != fn.Locals[0] {
		t.Fatalf("expected return x to resolve to the outer local")
	}
}

// Function calls with multiple arguments.
func TestParseFunctionCall(t *testing.T) {
	prog := parse(t, "int add(int a, int b){ return a+b; } int main(){ return add(1,2); }")

	if len(prog.Funcs) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(prog.Funcs))
	}
	main := prog.Funcs[1]
	call := main.Body.Lhs
	if call.Kind != ast.FUNCALL || call.FuncName != "add" {
		t.Fatalf("expected a call to add, got %+v", call)
	}
	if call.Args == nil || call.Args.Next == nil {
		t.Fatalf("expected 2 arguments")
	}
}
