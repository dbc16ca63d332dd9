package parser

import (
	"surge/internal/ast"
	"surge/internal/token"
)

// exprState is the rule-local ParseExpressionState of §4.3.2, threaded by
// value through the expression rules (its fields are small enough that
// copying beats aliasing: a callee can widen or narrow it for a
// sub-expression without the caller ever seeing the change).
type exprState struct {
	// exprIndent is set once an assignment or object value has opened an
	// implicit block by landing on a new line at or past the enclosing
	// block's indent (§4.6, §4.7).
	exprIndent *int
	// implicitFCallArg is set while parsing one argument of a
	// parenthesis-less call (§4.3.2).
	implicitFCallArg bool
	// allowObjectProbe is set at the three positions where an unbracketed
	// object literal may open: assignment RHS, call argument, object value.
	allowObjectProbe bool
}

// parseExpression is the top-level expression rule: assignment, then
// binary-operator climbing, then the postfix "for" comprehension wrap.
func (p *Parser) parseExpression(st exprState) ast.Expr {
	if st.allowObjectProbe && p.probeUnbracketedObject() {
		return p.parseUnbracketedObjectLiteral(st)
	}

	left := p.parseUnary(st)

	if isAssignTargetExpr(left) && p.peek().Kind == token.ASSIGN_OPERATOR {
		return p.parseAssignTail(left)
	}

	left = p.climbFrom(left, st, 1)

	for !st.implicitFCallArg && p.peek().Kind == token.FOR {
		left = p.parseForPostfix(left)
	}
	return left
}

// climbFrom runs the Pratt precedence-climbing loop starting from an
// already-parsed left operand. Recursing with minPrec = prec+1 for the
// right-hand side gives the correctly-shaped tree directly, without the
// after-the-fact rotation of a naive left-to-right builder.
func (p *Parser) climbFrom(left ast.Expr, st exprState, minPrec int) ast.Expr {
	for {
		tok := p.peek()
		if st.implicitFCallArg && (tok.Kind == token.IF || tok.Kind == token.UNLESS) {
			return left
		}
		if !isBinaryOperator(tok) {
			return left
		}
		prec, ok := priority(tok)
		if !ok {
			p.undefinedPriority(tok)
		}
		if prec < minPrec {
			return left
		}
		opTok := p.take()
		if p.peekNewline() {
			p.moveToNextLine(false)
		}
		right := p.parseUnaryThenClimb(st, prec+1)
		left = &ast.BinaryExpression{
			Left:     left,
			Operator: opTok,
			Right:    right,
			Base:     ast.Base{Sp: left.Span().Cover(right.Span())},
		}
	}
}

func (p *Parser) parseUnaryThenClimb(st exprState, minPrec int) ast.Expr {
	left := p.parseUnary(st)
	return p.climbFrom(left, st, minPrec)
}

func isAssignTargetExpr(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.Identifier:
		return true
	case *ast.PropertyAccess:
		_, isThis := v.Target.(*ast.ThisExpression)
		return isThis
	default:
		return false
	}
}

// parseAssignTail continues an Assign after its target has already been
// parsed as a plain unary/postfix chain (§4.6). A newline right after the
// operator opens an implicit block, recorded as the child's exprIndent
// provided its indent doesn't fall below the current block.
func (p *Parser) parseAssignTail(target ast.Expr) ast.Expr {
	opTok := p.take() // ASSIGN_OPERATOR

	childSt := exprState{allowObjectProbe: true}
	if p.peekNewline() {
		landed := p.moveToNextLine(false)
		if landed >= p.topIndent() {
			v := landed
			childSt.exprIndent = &v
		}
	}
	value := p.parseExpression(childSt)
	return &ast.Assign{
		Target:   target,
		Operator: opTok,
		Value:    value,
		Base:     ast.Base{Sp: target.Span().Cover(value.Span())},
	}
}
