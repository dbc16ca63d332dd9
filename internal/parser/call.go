package parser

import (
	"surge/internal/ast"
	"surge/internal/token"
)

// parseCallArg parses one call argument: an expression that may probe for
// an unbracketed object literal, with an optional trailing "..." making it
// a splat.
func (p *Parser) parseCallArg(base exprState) ast.Expr {
	argSt := base
	argSt.allowObjectProbe = true
	expr := p.parseExpression(argSt)
	if p.peek().Kind == token.ELLIPSIS && !p.peekSpace() {
		tok := p.take()
		expr = &ast.SplatExpression{Inner: expr, Base: ast.Base{Sp: expr.Span().Cover(tok.Span)}}
	}
	return expr
}

// parseParenCallArgs parses "( args? )" for an already-recognized call
// target. Newlines are tolerated anywhere inside the list without an
// indent floor of their own (§4.8).
func (p *Parser) parseParenCallArgs(target ast.Expr) ast.Expr {
	p.expect(token.LPAREN, "'('")
	p.inParens++
	var args []ast.Expr
	p.skipAllTrivia()
	if p.peek().Kind != token.RPAREN {
		args = append(args, p.parseCallArg(exprState{}))
		p.skipAllTrivia()
		for p.peek().Kind == token.COMMA {
			p.take()
			p.skipAllTrivia()
			args = append(args, p.parseCallArg(exprState{}))
			p.skipAllTrivia()
		}
	}
	closeTok := p.expect(token.RPAREN, "')'")
	p.inParens--
	return &ast.FunctionCall{Target: target, Args: args, Base: ast.Base{Sp: target.Span().Cover(closeTok.Span)}}
}

// parseImplicitCallArgs parses a parenthesis-less argument list following
// whitespace, tracking the comma-separated and newline-continuation rules
// of §4.8. inFCall is bumped for the duration and saved with parser
// snapshots, but no rule reads it: nested rules (the postfix if/unless
// carve-out in particular) tell an implicit-call argument position apart
// from an ordinary expression through exprState.implicitFCallArg.
func (p *Parser) parseImplicitCallArgs(target ast.Expr) ast.Expr {
	p.inFCall++
	defer func() { p.inFCall-- }()

	blockIndent := p.topIndent()
	var impBlockIndent *int

	argSt := exprState{implicitFCallArg: true}
	first := p.parseCallArg(argSt)
	args := []ast.Expr{first}
	last := first

	for p.peek().Kind == token.COMMA {
		p.take()
		if p.peekNewline() {
			p.moveToNextLine(false) // hard error below blockIndent, per "after a comma" rule
		}
		arg := p.parseCallArg(argSt)
		args = append(args, arg)
		last = arg
	}

	for p.peekNewline() {
		snap := p.snapshot()
		landed := p.tryMoveToNextLine()
		floor := blockIndent
		if impBlockIndent != nil {
			floor = *impBlockIndent
		}
		if landed <= floor || p.peek().Kind != token.COMMA {
			p.restoreSnapshot(snap)
			break
		}
		if impBlockIndent == nil {
			v := landed
			impBlockIndent = &v
		}
		p.take() // comma
		if p.peekNewline() {
			p.moveToNextLine(false)
		}
		arg := p.parseCallArg(argSt)
		args = append(args, arg)
		last = arg
	}

	return &ast.FunctionCall{Target: target, Args: args, Base: ast.Base{Sp: target.Span().Cover(last.Span())}}
}
