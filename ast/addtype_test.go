package ast

import (
	"testing"

	"github.com/skx/subc/types"
)

// Trivial test of NUM/ADD typing.
func TestAddTypeArithmetic(t *testing.T) {
	lhs := &Node{Kind: NUM, Val: 1}
	rhs := &Node{Kind: NUM, Val: 2}
	add := &Node{Kind: ADD, Lhs: lhs, Rhs: rhs}

	AddType(add)

	if add.Ty.Kind != types.INT {
		t.Fatalf("expected ADD to have INT type")
	}
	if lhs.Ty.Kind != types.INT || rhs.Ty.Kind != types.INT {
		t.Fatalf("expected operands to have been typed too")
	}
}

// Trivial test that PTR_ADD inherits the pointer operand's type (the §9
// open question resolution).
func TestAddTypePtrAddInheritsPointerType(t *testing.T) {
	ptrTy := types.PointerTo(types.NewInt())
	v := &Var{Name: "p", Ty: ptrTy}

	lhs := &Node{Kind: VAR, Var: v}
	rhs := &Node{Kind: NUM, Val: 1}
	add := &Node{Kind: PTR_ADD, Lhs: lhs, Rhs: rhs}

	AddType(add)

	if add.Ty != ptrTy {
		t.Fatalf("expected PTR_ADD's type to be the pointer operand's type")
	}
}

// Trivial test of ADDR decaying an array's element type rather than
// pointing at the array itself (spec §4.3).
func TestAddTypeAddrOfArrayDecays(t *testing.T) {
	elem := types.NewInt()
	arrTy := types.ArrayOf(elem, 3)
	v := &Var{Name: "a", Ty: arrTy}

	varNode := &Node{Kind: VAR, Var: v}
	addr := &Node{Kind: ADDR, Lhs: varNode}

	AddType(addr)

	if addr.Ty.Kind != types.PTR || addr.Ty.Base != elem {
		t.Fatalf("expected &array to be a pointer to the element type")
	}
}

// Trivial test of MEMBER typing.
func TestAddTypeMember(t *testing.T) {
	memberTy := types.NewInt()
	m := &types.Member{Name: "a", Ty: memberTy, Offset: 0}

	node := &Node{Kind: MEMBER, Member: m}
	AddType(node)

	if node.Ty != memberTy {
		t.Fatalf("expected MEMBER node to take its member's type")
	}
}
