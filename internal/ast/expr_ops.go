package ast

import "surge/internal/token"

// BinaryExpression is a two-operand expression built by the Pratt-style
// precedence climber. Operator carries the whole matched token (not just
// its text) so callers can recover both the operator kind (OPERATOR,
// IF, UNLESS for postfix conditionals) and its exact spelling ("is" vs
// "==").
type BinaryExpression struct {
	Base
	Left     Expr
	Operator token.Token
	Right    Expr
}

// PrefixUnaryExpression is "op Inner": a leading +, -, ++, --, ! or other
// UNARY/UNARY_MATH token applied to the expression that follows it.
type PrefixUnaryExpression struct {
	Base
	Operator token.Token
	Inner    Expr
}

// PostfixUnaryExpression is "Inner op": ++ or -- applied after a primary,
// recognized only when no whitespace separates them.
type PostfixUnaryExpression struct {
	Base
	Operator token.Token
	Inner    Expr
}

// Assign is "Target op Value" where Target is an Identifier or a
// this-property access and op is one of the ASSIGN_OPERATOR spellings.
type Assign struct {
	Base
	Target   Expr
	Operator token.Token
	Value    Expr
}

// PropertyAccess is "Target.Member", or — when Proto is set — the
// "Target::Member" prototype-access spelling. Member is always an
// Identifier, never a computed expression (there is no bracket-index form
// in this language).
type PropertyAccess struct {
	Base
	Target Expr
	Member *Identifier
	Proto  bool
}

func (*BinaryExpression) exprNode()        {}
func (*PrefixUnaryExpression) exprNode()   {}
func (*PostfixUnaryExpression) exprNode()  {}
func (*Assign) exprNode()                  {}
func (*PropertyAccess) exprNode()          {}
