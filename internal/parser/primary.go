package parser

import (
	"surge/internal/ast"
	"surge/internal/token"
)

// parsePrimary recognizes the atoms and grouping forms of §3.2/§4: number,
// string, identifier, builtin, this/@, a parenthesized expression, a
// function literal, or a bracketed object literal.
func (p *Parser) parsePrimary(st exprState) ast.Expr {
	tok := p.peek()
	if isFunctionStart(p, tok) {
		return p.parseFunctionLiteral()
	}
	switch tok.Kind {
	case token.NUMBER:
		p.take()
		return &ast.Number{Text: tok.Text, Base: ast.Base{Sp: tok.Span}}
	case token.STRING:
		p.take()
		return &ast.StringLiteral{Text: tok.Text, Base: ast.Base{Sp: tok.Span}}
	case token.BUILTIN_PRIMARY:
		p.take()
		return &ast.BuiltinPrimary{Text: tok.Text, Base: ast.Base{Sp: tok.Span}}
	case token.SHORT_THIS, token.LONG_THIS:
		p.take()
		return &ast.ThisExpression{Token: tok.Text, Base: ast.Base{Sp: tok.Span}}
	case token.IDENTIFIER:
		p.take()
		return &ast.Identifier{Text: tok.Text, Base: ast.Base{Sp: tok.Span}}
	case token.LPAREN:
		return p.parseParensPrimary()
	case token.LBRACE:
		return p.parseBracketedObjectLiteral(st)
	case token.IF, token.UNLESS:
		return p.parseIfExpression(st)
	case token.LOOP, token.UNTIL:
		return p.parseLoopExpression()
	case token.FOR:
		return p.parseForExpression()
	default:
		p.unexpected(tok)
		return nil
	}
}

// isFunctionStart reports whether the tokens at the cursor open a function
// literal: "(" ... ")" "->"/"=>", or a bare "->"/"=>" with no parameter
// list at all.
func isFunctionStart(p *Parser, tok token.Token) bool {
	if tok.Kind == token.FUNC {
		return true
	}
	if tok.Kind != token.LPAREN {
		return false
	}
	// Look ahead past a balanced "(...)" for FUNC without consuming.
	save := p.stash()
	defer p.restore(save)
	p.take() // "("
	depth := 1
	for depth > 0 {
		t := p.take()
		switch t.Kind {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
		case token.EOF:
			return false
		}
	}
	return p.peek().Kind == token.FUNC
}

func (p *Parser) parseParensPrimary() ast.Expr {
	open := p.expect(token.LPAREN, "'('")
	p.inParens++
	inner := p.parseExpression(exprState{})
	p.inParens--
	closeTok := p.expect(token.RPAREN, "')'")
	return &ast.Parens{Inner: inner, Base: ast.Base{Sp: open.Span.Cover(closeTok.Span)}}
}
