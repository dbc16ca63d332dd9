package ast

import "surge/internal/source"

// Node is the capability every syntax tree node shares: knowing its own
// source extent. Span tracking is optional per the surface language but is
// cheap to carry and pays for itself in diagnostics, so every node here
// carries one.
type Node interface {
	Span() source.Span
}

// Expr is any node that can appear where an expression is expected.
// Implementations are the sealed set enumerated in this package; callers
// switch on the concrete type rather than
// relying on virtual dispatch.
type Expr interface {
	Node
	exprNode()
}

// Stmt is one entry in a Block's statement list: either a bare expression
// or a return. Unlike Expr, Stmt is not itself embeddable as a
// sub-expression — "return" cannot appear nested inside another expression.
type Stmt interface {
	Node
	stmtNode()
}

// Base carries a span and gives every concrete node type a Span() method
// for free via embedding.
type Base struct {
	Sp source.Span
}

func (b Base) Span() source.Span { return b.Sp }
