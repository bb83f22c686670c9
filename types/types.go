// Package types implements subc's type engine (spec §4.3): constructors
// for char, int, pointer-to(T), array-of(T, N) and struct-of(members),
// size computation, and the integer/pointer predicates the parser uses to
// disambiguate "+"/"-" and array indexing.
package types

// Kind is the tag of a Type.
type Kind int

const (
	// CHAR is a one-byte integer.
	CHAR Kind = iota
	// INT is an eight-byte integer (non-standard width, kept for test
	// parity with the reference compiler; see spec §9).
	INT
	// PTR is an eight-byte pointer to Base.
	PTR
	// ARRAY is Len contiguous elements of Base, with no padding.
	ARRAY
	// STRUCT is a sequence of Members laid out with no padding.
	STRUCT
)

// Type is a tagged variant describing the shape and size of a value.
type Type struct {
	Kind Kind

	// Size is the type's size in bytes.
	Size int

	// Base is the referent type for PTR and the element type for ARRAY.
	// Nil for CHAR, INT and STRUCT.
	Base *Type

	// Len is the element count, valid only for ARRAY.
	Len int

	// Members is the field list, valid only for STRUCT, in declaration
	// order.
	Members []*Member
}

// Member is one field of a STRUCT type.
type Member struct {
	Name   string
	Ty     *Type
	Offset int
}

// NewChar returns the one-byte char type.
func NewChar() *Type {
	return &Type{Kind: CHAR, Size: 1}
}

// NewInt returns the eight-byte int type.
func NewInt() *Type {
	return &Type{Kind: INT, Size: 8}
}

// PointerTo returns a pointer-to-base type.
func PointerTo(base *Type) *Type {
	return &Type{Kind: PTR, Size: 8, Base: base}
}

// ArrayOf returns an array of len elements of base.
func ArrayOf(base *Type, len int) *Type {
	return &Type{Kind: ARRAY, Size: base.Size * len, Base: base, Len: len}
}

// NewStruct returns a struct type whose members have already been laid
// out (offsets assigned) by the caller; see parser.layoutMembers. Its
// size is the sum of its members' sizes, unpadded (spec §9).
func NewStruct(members []*Member) *Type {
	size := 0
	for _, m := range members {
		size += m.Ty.Size
	}
	return &Type{Kind: STRUCT, Size: size, Members: members}
}

// IsInteger reports whether t is CHAR or INT.
func IsInteger(t *Type) bool {
	return t.Kind == CHAR || t.Kind == INT
}

// HasBase reports whether t has a referent type, i.e. is PTR or ARRAY.
// The parser uses this (not a plain PTR check) to decide pointer-arithmetic
// promotion, since an array's address decays to a pointer to its base.
func HasBase(t *Type) bool {
	return t.Kind == PTR || t.Kind == ARRAY
}

// Member looks up a named member of a STRUCT type, returning nil if there
// is no such member.
func (t *Type) Member(name string) *Member {
	for _, m := range t.Members {
		if m.Name == name {
			return m
		}
	}
	return nil
}
