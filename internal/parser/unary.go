package parser

import (
	"surge/internal/ast"
	"surge/internal/token"
)

// isPrefixStart reports whether tok can open a prefix-unary expression:
// a leading +, -, or any UNARY/UNARY_MATH token (§4.4).
func isPrefixStart(tok token.Token) bool {
	if tok.Kind == token.UNARY || tok.Kind == token.UNARY_MATH {
		return true
	}
	return tok.Kind == token.OPERATOR && (tok.Text == "+" || tok.Text == "-")
}

// parseUnary parses a prefix-unary chain, or falls through to a primary
// plus its postfix chain (property access, calls, postfix ++/--).
func (p *Parser) parseUnary(st exprState) ast.Expr {
	tok := p.peek()
	if isPrefixStart(tok) {
		p.take()
		if p.peekNewline() {
			p.moveToNextLine(false)
		}
		inner := p.parseUnary(st)
		expr := ast.Expr(&ast.PrefixUnaryExpression{
			Operator: tok,
			Inner:    inner,
			Base:     ast.Base{Sp: tok.Span.Cover(inner.Span())},
		})
		return p.parsePostfixChain(expr)
	}
	primary := p.parsePrimary(st)
	return p.parsePostfixChain(primary)
}

// parsePostfixChain interleaves property access, call chains, and postfix
// ++/-- on top of an already-parsed expression, per §4.8's "repeat until
// neither applies" loop.
func (p *Parser) parsePostfixChain(expr ast.Expr) ast.Expr {
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.DOT:
			p.take()
			memberTok := p.expect(token.IDENTIFIER, "member name")
			member := &ast.Identifier{Text: memberTok.Text, Base: ast.Base{Sp: memberTok.Span}}
			expr = &ast.PropertyAccess{
				Target: expr,
				Member: member,
				Base:   ast.Base{Sp: expr.Span().Cover(memberTok.Span)},
			}
		case tok.Kind == token.LPAREN && !p.peekSpace() && canBeCallTarget(expr):
			expr = p.parseParenCallArgs(expr)
		case canBeCallTarget(expr) && p.canStartImplicitArg():
			expr = p.parseImplicitCallArgs(expr)
		case tok.Kind == token.UNARY_MATH && !p.peekSpace():
			p.take()
			expr = &ast.PostfixUnaryExpression{
				Operator: tok,
				Inner:    expr,
				Base:     ast.Base{Sp: expr.Span().Cover(tok.Span)},
			}
		default:
			return expr
		}
	}
}

// canBeCallTarget implements the target rule of §4.8: identifiers,
// this/@name access, parenthesized expressions, and already-built calls
// (for chaining) all qualify; literals and compound expressions don't.
func canBeCallTarget(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Number, *ast.StringLiteral, *ast.BuiltinPrimary,
		*ast.BinaryExpression, *ast.PrefixUnaryExpression, *ast.PostfixUnaryExpression,
		*ast.ObjectLiteral, *ast.Assign,
		*ast.IfExpression, *ast.LoopExpression, *ast.ForExpression, *ast.ForExpression2:
		return false
	default:
		return true
	}
}

// canStartImplicitArg reports whether the token past the current cursor's
// whitespace can open an implicit call's first argument (§4.8). A leading
// "+"/"-" only qualifies when it sits tight against its operand: with a
// space after it, "target - 2" reads as plain subtraction rather than the
// start of a call.
func (p *Parser) canStartImplicitArg() bool {
	if !p.peekSpace() {
		return false
	}
	tok := p.peek()
	switch tok.Kind {
	case token.IDENTIFIER, token.NUMBER, token.STRING, token.LPAREN, token.LBRACE,
		token.SHORT_THIS, token.LONG_THIS, token.BUILTIN_PRIMARY, token.UNARY, token.UNARY_MATH:
		return true
	case token.OPERATOR:
		if tok.Text == "+" || tok.Text == "-" {
			return !p.spaceAfterPeek()
		}
		return false
	default:
		return false
	}
}
