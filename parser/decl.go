package parser

import (
	"strconv"

	"github.com/skx/subc/ast"
	"github.com/skx/subc/internal/diag"
	"github.com/skx/subc/token"
	"github.com/skx/subc/types"
)

// baseType parses the leading type keyword of a declaration ("int",
// "char" or "struct { ... }"), followed by zero or more "*" for pointer
// nesting (spec §6 grammar: basetype). Array suffixes are handled
// separately by typeSuffix once the declared name is known.
func (p *Parser) baseType() *types.Type {
	var ty *types.Type

	switch {
	case p.consume("int"):
		ty = types.NewInt()
	case p.consume("char"):
		ty = types.NewChar()
	case p.consume("struct"):
		ty = p.structDecl()
	default:
		diag.At(p.cur().Pos, "expected a type")
	}

	for p.consume("*") {
		ty = types.PointerTo(ty)
	}
	return ty
}

// structDecl parses a "{ member ; member ; ... }" body and lays its
// members out sequentially with no padding (spec §4.3, §9).
func (p *Parser) structDecl() *types.Type {
	p.expect("{")

	var members []*Member
	for !p.consume("}") {
		members = append(members, p.structMember())
	}
	return types.NewStruct(layoutMembers(members))
}

// Member is a not-yet-offset-assigned struct member, parsed in
// declaration order.
type Member struct {
	name string
	ty   *types.Type
}

func (p *Parser) structMember() *Member {
	ty := p.baseType()
	name := p.expectIdent()
	ty = p.typeSuffix(ty)
	p.expect(";")
	return &Member{name: name.Literal, ty: ty}
}

// layoutMembers assigns each member a sequential, unpadded byte offset.
func layoutMembers(members []*Member) []*types.Member {
	out := make([]*types.Member, len(members))
	offset := 0
	for i, m := range members {
		out[i] = &types.Member{Name: m.name, Ty: m.ty, Offset: offset}
		offset += m.ty.Size
	}
	return out
}

// typeSuffix parses zero or more "[N]" array dimensions, right-nesting so
// that "int x[2][3]" builds array-of-2(array-of-3(int)) — 2 rows of 3
// ints each (spec §6 grammar: type_suffix, modeled on chibicc's
// recursive suffix parse).
func (p *Parser) typeSuffix(base *types.Type) *types.Type {
	if !p.consume("[") {
		return base
	}
	n := int(p.expectNumber())
	p.expect("]")
	inner := p.typeSuffix(base)
	return types.ArrayOf(inner, n)
}

// param parses one "type ident" function parameter.
func (p *Parser) param() *ast.Var {
	ty := p.baseType()
	name := p.expectIdent()
	ty = p.typeSuffix(ty)
	return p.newLocal(name.Literal, ty)
}

// params parses a parenthesized, comma-separated, possibly-empty
// parameter list, including it in scope for the function body.
func (p *Parser) params() []*ast.Var {
	p.expect("(")
	if p.consume(")") {
		return nil
	}

	var list []*ast.Var
	list = append(list, p.param())
	for p.consume(",") {
		list = append(list, p.param())
	}
	p.expect(")")
	return list
}

// globalVar parses one top-level "type ident [suffix] ;" declaration.
func (p *Parser) globalVar() {
	ty := p.baseType()
	name := p.expectIdent()
	ty = p.typeSuffix(ty)
	p.expect(";")

	v := &ast.Var{Name: name.Literal, Ty: ty}
	p.globals = append(p.globals, v)
	p.scope.Push(v)
}

// newLocal creates, registers and scopes a new local variable. Offsets
// are assigned afterwards, once every local of the function is known
// (see function).
func (p *Parser) newLocal(name string, ty *types.Type) *ast.Var {
	v := &ast.Var{Name: name, Ty: ty, IsLocal: true}
	p.locals = append(p.locals, v)
	p.scope.Push(v)
	return v
}

// function parses one top-level function definition: "basetype ident (
// params ) { stmt* }" (spec §6 grammar: function). Locals accumulated
// during parsing of params and body are offset-assigned and the
// function's frame size computed once the body is complete.
func (p *Parser) function() *ast.Function {
	p.baseType()
	name := p.expectIdent()

	p.locals = nil
	depth := p.scope.Snapshot()

	fn := &ast.Function{Name: name.Literal}
	fn.Params = p.params()

	p.expect("{")
	fn.Body = p.stmtList()
	p.expect("}")

	p.scope.TruncateTo(depth)

	offset := 0
	for _, v := range p.locals {
		offset += v.Ty.Size
		v.Offset = offset
	}
	fn.Locals = p.locals
	fn.StackSize = alignTo(offset, 8)

	return fn
}

// newStringLiteral interns a string-literal token as an anonymous global
// (".L.data.N") and returns a VAR node referring to it (spec §4.4).
func (p *Parser) newStringLiteral(tok token.Token) *ast.Node {
	ty := types.ArrayOf(types.NewChar(), tok.StrLen)

	label := p.anonLabel()
	v := &ast.Var{
		Name:     label,
		Ty:       ty,
		Contents: append([]byte(tok.Literal), 0),
		ContLen:  tok.StrLen,
	}
	p.globals = append(p.globals, v)

	return &ast.Node{Kind: ast.VAR, Var: v, Tok: tok}
}

// anonLabel returns the next ".L.data.N" label for an interned string.
func (p *Parser) anonLabel() string {
	label := ".L.data." + strconv.Itoa(p.strSeq)
	p.strSeq++
	return label
}
