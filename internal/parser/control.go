package parser

import (
	"surge/internal/ast"
	"surge/internal/token"
)

// parseBlockOrThen parses the body shared by if/unless/loop/until/for in
// either surface form: "then expr" or same-line bare expr collapse into a
// single-statement Block; a newline opens an indented multi-statement
// Block (§4.10). An empty body is an error in every construct that reaches
// here — the implicit-fcall-arg rewind case is handled by the caller
// before this is ever invoked.
func (p *Parser) parseBlockOrThen(construct string) *ast.Block {
	if p.peek().Kind == token.THEN {
		p.take()
	} else if p.peekNewline() {
		snap := p.snapshot()
		landed := p.tryMoveToNextLine()
		if p.eof || landed <= p.topIndent() {
			p.restoreSnapshot(snap)
			p.emptyBlock(construct, p.peek())
		}
		p.pushIndent(landed)
		p.elseStop++
		block := p.parseBlockStatements(landed)
		p.elseStop--
		p.popIndent()
		if len(block.Statements) == 0 {
			p.emptyBlock(construct, p.peek())
		}
		return block
	}

	if !p.canStartExpression() {
		p.emptyBlock(construct, p.peek())
	}
	stmt := p.parseStatement()
	return &ast.Block{Statements: []ast.Stmt{stmt}, Indent: p.topIndent(), Base: ast.Base{Sp: stmt.Span()}}
}

// ifHasEmptyBody reports whether an if/unless whose condition has just
// been parsed has no body: there is no THEN, and either the next line does
// not indent past the enclosing block (or input ends there), or the next
// token on this line cannot start an expression. The cursor is left where
// it was.
func (p *Parser) ifHasEmptyBody() bool {
	if p.peek().Kind == token.THEN {
		return false
	}
	if p.peekNewline() {
		snap := p.snapshot()
		landed := p.tryMoveToNextLine()
		empty := p.eof || landed <= p.topIndent()
		p.restoreSnapshot(snap)
		return empty
	}
	return !p.canStartExpression()
}

func (p *Parser) parseIfExpression(st exprState) ast.Expr {
	opTok := p.peek()
	if st.implicitFCallArg {
		// (a): an if/unless never opens as a statement head inside an
		// implicit call's argument: one that starts an argument (e.g. after
		// a comma) is rejected here, and climbFrom stops before one that
		// follows an argument, leaving it to the enclosing expression as a
		// postfix conditional.
		p.unexpected(opTok)
	}
	p.take()
	cond := p.parseExpression(exprState{})
	if p.ifHasEmptyBody() {
		p.emptyBlock(opTok.Text, p.peek())
	}
	thenBlock := p.parseBlockOrThen(opTok.Text)

	var elseNode ast.Node
	if p.peek().Kind == token.ELSE {
		p.take()
		if p.peek().Kind == token.IF || p.peek().Kind == token.UNLESS {
			elseNode = p.parseIfExpression(exprState{})
		} else {
			elseNode = p.parseBlockOrThen("else")
		}
	}

	sp := opTok.Span.Cover(thenBlock.Span())
	if elseNode != nil {
		sp = sp.Cover(elseNode.Span())
	}
	return &ast.IfExpression{
		Operator: opTok.Kind,
		Cond:     cond,
		Then:     thenBlock,
		Else:     elseNode,
		Base:     ast.Base{Sp: sp},
	}
}

func (p *Parser) parseLoopExpression() ast.Expr {
	opTok := p.take() // LOOP or UNTIL
	var cond ast.Expr
	if opTok.Kind == token.UNTIL {
		cond = p.parseExpression(exprState{})
	}
	body := p.parseBlockOrThen(opTok.Text)
	return &ast.LoopExpression{
		Operator: opTok.Kind,
		Cond:     cond,
		Body:     body,
		Base:     ast.Base{Sp: opTok.Span.Cover(body.Span())},
	}
}

// parseForIterTarget parses one loop variable, which must be a left-hand
// value: an Identifier or a this-property access (§4.8's target rule
// doubles as the for-loop's; the invariant is stated separately in §3.2).
func (p *Parser) parseForIterTarget() ast.Expr {
	start := p.peek()
	expr := p.parseUnary(exprState{})
	if !isAssignTargetExpr(expr) {
		p.unexpectedMsg(start, "for-loop variable must be an identifier or a this-property access")
	}
	return expr
}

func (p *Parser) parseForHeader() (iter1, iter2 ast.Expr, iterType token.Kind, iterable ast.Expr, endTok token.Token) {
	iter1 = p.parseForIterTarget()
	if p.peek().Kind == token.COMMA {
		p.take()
		iter2 = p.parseForIterTarget()
	}
	kindTok := p.peek()
	if kindTok.Kind != token.IN && kindTok.Kind != token.OF {
		p.expected("'in' or 'of'", kindTok)
	}
	p.take()
	iterable = p.parseExpression(exprState{})
	return iter1, iter2, kindTok.Kind, iterable, kindTok
}

func (p *Parser) parseForExpression() ast.Expr {
	forTok := p.take() // FOR
	iter1, iter2, iterType, iterable, _ := p.parseForHeader()
	body := p.parseBlockOrThen("for")
	return &ast.ForExpression{
		Iter1:    iter1,
		Iter2:    iter2,
		IterType: iterType,
		Iterable: iterable,
		Body:     body,
		Base:     ast.Base{Sp: forTok.Span.Cover(body.Span())},
	}
}

// parseForPostfix wraps inner in a ForExpression2 after seeing a trailing
// "for" (a postfix comprehension). §4.3.2(c) says this is suppressed in
// implicit-fcall-arg context; callers only invoke this once that's checked.
func (p *Parser) parseForPostfix(inner ast.Expr) ast.Expr {
	p.take() // FOR
	iter1, iter2, iterType, iterable, _ := p.parseForHeader()
	loop := &ast.ForExpression{
		Iter1:    iter1,
		Iter2:    iter2,
		IterType: iterType,
		Iterable: iterable,
		Base:     ast.Base{Sp: iter1.Span().Cover(iterable.Span())},
	}
	return &ast.ForExpression2{
		Inner: inner,
		Loop:  loop,
		Base:  ast.Base{Sp: inner.Span().Cover(iterable.Span())},
	}
}
