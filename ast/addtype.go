package ast

import (
	"github.com/skx/subc/internal/diag"
	"github.com/skx/subc/types"
)

// AddType implements the type engine's bottom-up decoration pass (spec
// §4.3): it walks node and its descendants, setting Ty on every node that
// carries a meaningful type. Statement nodes do not get a Ty of their own,
// but their expression children are still visited.
//
// It lives here rather than in package types to avoid an import cycle
// (types has no notion of Node); see DESIGN.md.
func AddType(n *Node) {
	if n == nil || n.Ty != nil {
		return
	}

	AddType(n.Lhs)
	AddType(n.Rhs)
	AddType(n.Cond)
	AddType(n.Then)
	AddType(n.Els)
	AddType(n.Init)
	AddType(n.Inc)
	for b := n.Body; b != nil; b = b.Next {
		AddType(b)
	}
	for a := n.Args; a != nil; a = a.Next {
		AddType(a)
	}

	switch n.Kind {
	case NUM:
		n.Ty = types.NewInt()

	case VAR:
		n.Ty = n.Var.Ty

	case ADD, SUB, MUL, DIV, PTR_DIFF, EQ, NE, LT, LE, FUNCALL:
		n.Ty = types.NewInt()

	case PTR_ADD, PTR_SUB, ASSIGN:
		n.Ty = n.Lhs.Ty

	case ADDR:
		if n.Lhs.Ty.Kind == types.ARRAY {
			n.Ty = types.PointerTo(n.Lhs.Ty.Base)
		} else {
			n.Ty = types.PointerTo(n.Lhs.Ty)
		}

	case DEREF:
		if n.Lhs.Ty.Base == nil {
			diag.At(n.Tok.Pos, "invalid pointer dereference")
		}
		n.Ty = n.Lhs.Ty.Base

	case MEMBER:
		n.Ty = n.Member.Ty

	case STMT_EXPR:
		last := lastStmt(n.Body)
		if last == nil || last.Kind != EXPR_STMT {
			diag.At(n.Tok.Pos, "statement expression returning void is not supported")
		}
		n.Ty = last.Lhs.Ty
	}
}

// lastStmt returns the final statement of a Body-chained list.
func lastStmt(body *Node) *Node {
	if body == nil {
		return nil
	}
	for body.Next != nil {
		body = body.Next
	}
	return body
}
