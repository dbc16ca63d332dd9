package ast

import "surge/internal/token"

// IfExpression covers both "if" and "unless" (Operator distinguishes them),
// in either block or "then" surface form. Else is nil, a *Block (a plain
// "else" arm), or an *IfExpression (an "else if"/"else unless" chain) — no
// other type ever appears there.
type IfExpression struct {
	Base
	Operator token.Kind // token.IF or token.UNLESS
	Cond     Expr
	Then     *Block
	Else     Node
}

// LoopExpression covers bare "loop" (Operator == token.LOOP, Cond nil) and
// "until cond" (Operator == token.UNTIL, Cond required).
type LoopExpression struct {
	Base
	Operator token.Kind
	Cond     Expr
	Body     *Block
}

// ForExpression is "iter1 [, iter2] (in|of) iterable [body]". Body is nil
// when this node is reached only as the tail of a ForExpression2 (postfix
// comprehension), where the loop has no block of its own.
type ForExpression struct {
	Base
	Iter1    Expr // Identifier or this-property access
	Iter2    Expr // optional; nil when absent
	IterType token.Kind // token.IN or token.OF
	Iterable Expr
	Body     *Block
}

// ForExpression2 is a postfix comprehension: "Inner for iter1 in iterable".
// Loop.Body is always nil here; the loop's only job is to carry the
// iteration header.
type ForExpression2 struct {
	Base
	Inner Expr
	Loop  *ForExpression
}

func (*IfExpression) exprNode()    {}
func (*LoopExpression) exprNode()  {}
func (*ForExpression) exprNode()   {}
func (*ForExpression2) exprNode()  {}
