package parser

import (
	"surge/internal/ast"
	"surge/internal/token"
)

// parseFunctionLiteral parses "(params?) -> body?" or "(params?) => body?",
// and the parameter-less spelling "-> body?" (§4.11).
func (p *Parser) parseFunctionLiteral() ast.Expr {
	start := p.peek()
	var params []*ast.FunctionParam

	if p.peek().Kind == token.LPAREN {
		p.take()
		p.inParens++
		p.skipAllTrivia()
		if p.peek().Kind != token.RPAREN {
			params = append(params, p.parseFunctionParam())
			p.skipAllTrivia()
			for p.peek().Kind == token.COMMA {
				p.take()
				p.skipAllTrivia()
				params = append(params, p.parseFunctionParam())
				p.skipAllTrivia()
			}
		}
		p.expect(token.RPAREN, "')'")
		p.inParens--
	}

	funcTok := p.expect(token.FUNC, "'->' or '=>'")
	bindThis := funcTok.Text == "=>"
	body := p.parseFunctionBody()
	return &ast.Function{
		Params:   params,
		Body:     body,
		BindThis: bindThis,
		Base:     ast.Base{Sp: start.Span.Cover(body.Span())},
	}
}

func (p *Parser) parseFunctionParam() *ast.FunctionParam {
	nameTok := p.expect(token.IDENTIFIER, "parameter name")
	param := &ast.FunctionParam{Name: nameTok.Text, Base: ast.Base{Sp: nameTok.Span}}
	switch {
	case p.peek().Kind == token.ELLIPSIS:
		end := p.take()
		param.Splat = true
		param.Base.Sp = param.Base.Sp.Cover(end.Span)
	case p.peek().Kind == token.ASSIGN_OPERATOR && p.peek().Text == "=":
		p.take()
		param.Default = p.parseExpression(exprState{allowObjectProbe: true})
		param.Base.Sp = param.Base.Sp.Cover(param.Default.Span())
	}
	return param
}

// parseFunctionBody parses the block or inline form of a function body. A
// de-indent or end-of-input right after the header yields an empty Block
// (§4.11).
func (p *Parser) parseFunctionBody() *ast.Block {
	if p.peekNewline() {
		snap := p.snapshot()
		landed := p.tryMoveToNextLine()
		if p.eof || landed <= p.topIndent() {
			p.restoreSnapshot(snap)
			at := p.peek().Span
			return &ast.Block{Indent: p.topIndent(), Base: ast.Base{Sp: at}}
		}
		p.pushIndent(landed)
		block := p.parseBlockStatements(landed)
		p.popIndent()
		return block
	}
	if p.peek().Kind == token.EOF || p.isBlockTerminator() {
		at := p.peek().Span
		return &ast.Block{Indent: p.topIndent(), Base: ast.Base{Sp: at}}
	}
	stmt := p.parseStatement()
	return &ast.Block{Statements: []ast.Stmt{stmt}, Indent: p.topIndent(), Base: ast.Base{Sp: stmt.Span()}}
}
