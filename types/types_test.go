package types

import "testing"

// Trivial test of the basic sizes (spec §3).
func TestBasicSizes(t *testing.T) {
	if NewChar().Size != 1 {
		t.Fatalf("char should be 1 byte")
	}
	if NewInt().Size != 8 {
		t.Fatalf("int should be 8 bytes")
	}
	if PointerTo(NewInt()).Size != 8 {
		t.Fatalf("pointers should be 8 bytes")
	}
}

// Trivial test that "int *x[3]" is array-of-3-pointer-to-int, size 24
// (spec §4.4).
func TestArrayOfPointerSize(t *testing.T) {
	ty := ArrayOf(PointerTo(NewInt()), 3)
	if ty.Size != 24 {
		t.Fatalf("expected size 24, got %d", ty.Size)
	}
	if ty.Base.Kind != PTR {
		t.Fatalf("expected base kind PTR, got %v", ty.Base.Kind)
	}
}

// Trivial test that struct members are unpadded (spec §9, scenario 5).
func TestStructSizeUnpadded(t *testing.T) {
	members := []*Member{
		{Name: "a", Ty: NewInt(), Offset: 0},
		{Name: "b", Ty: NewInt(), Offset: 8},
	}
	st := NewStruct(members)
	if st.Size != 16 {
		t.Fatalf("expected unpadded struct size 16, got %d", st.Size)
	}
	if st.Member("b").Offset != 8 {
		t.Fatalf("expected b's offset to equal a's size (8), got %d", st.Member("b").Offset)
	}
	if st.Member("c") != nil {
		t.Fatalf("expected no member named c")
	}
}

// Trivial test of IsInteger / HasBase.
func TestPredicates(t *testing.T) {
	if !IsInteger(NewChar()) || !IsInteger(NewInt()) {
		t.Fatalf("char and int should be integer types")
	}
	if IsInteger(PointerTo(NewInt())) {
		t.Fatalf("pointers should not be integer types")
	}
	if !HasBase(PointerTo(NewInt())) {
		t.Fatalf("pointers should have a base")
	}
	if !HasBase(ArrayOf(NewInt(), 3)) {
		t.Fatalf("arrays should have a base")
	}
	if HasBase(NewInt()) {
		t.Fatalf("int should not have a base")
	}
}
