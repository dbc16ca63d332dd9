package ast

// Number is a numeric literal, stored as the exact matched source text
// (the scanner only recognizes unsigned integers; a leading '-' is always a
// separate unary operator node).
type Number struct {
	Base
	Text string
}

// StringLiteral is a quoted string literal, Text including its delimiters
// exactly as scanned (escapes are not unescaped).
type StringLiteral struct {
	Base
	Text string
}

// Identifier is a bare name reference.
type Identifier struct {
	Base
	Text string
}

// BuiltinPrimary is one of the reserved value keywords: true, false,
// undefined, null.
type BuiltinPrimary struct {
	Base
	Text string
}

// ThisExpression is a bare reference to the enclosing "this", written
// either as the short sigil '@' or the long keyword "this". Token preserves
// which spelling was used so Emit can round-trip it.
type ThisExpression struct {
	Base
	Token string
}

// Parens is a parenthesized expression: "(" Inner ")".
type Parens struct {
	Base
	Inner Expr
}

func (*Number) exprNode()         {}
func (*StringLiteral) exprNode()  {}
func (*Identifier) exprNode()     {}
func (*BuiltinPrimary) exprNode() {}
func (*ThisExpression) exprNode() {}
func (*Parens) exprNode()         {}
