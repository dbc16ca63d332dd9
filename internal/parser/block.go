package parser

import (
	"surge/internal/ast"
	"surge/internal/token"
)

// isBlockTerminator reports whether the token at the cursor legitimately
// ends a block without being consumed by it: end of input, a ")" while
// inside parens, or an "else" closing an if-block's then-part (§4.12).
func (p *Parser) isBlockTerminator() bool {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return true
	}
	if p.inParens > 0 && tok.Kind == token.RPAREN {
		return true
	}
	return p.elseStop > 0 && tok.Kind == token.ELSE
}

// parseBlockStatements runs the statement loop shared by every nested
// block: entry already happened (indent is on the stack), so this only
// handles the body and the various ways it can end (§4.12).
func (p *Parser) parseBlockStatements(indent int) *ast.Block {
	var stmts []ast.Stmt
	for {
		if p.isBlockTerminator() {
			break
		}
		stmts = append(stmts, p.parseStatement())

		sawSep := false
		for p.peek().Kind == token.SEMI {
			p.take()
			sawSep = true
		}

		if p.peekNewline() {
			snap := p.snapshot()
			landed := p.tryMoveToNextLine()
			if p.eof {
				break
			}
			if landed < indent {
				p.restoreSnapshot(snap)
				break
			}
			if landed > indent {
				p.indentUnexpected(p.peek())
			}
			continue
		}
		if sawSep {
			continue
		}
		if p.isBlockTerminator() {
			break
		}
		p.leftover(p.peek())
	}
	return &ast.Block{Statements: stmts, Indent: indent}
}

// parseStatement parses "return [expr]" or a bare expression (§4.13). A
// leading ";" before the first statement of a block is an error, raised
// here when the statement would start at a raw SEMI.
func (p *Parser) parseStatement() ast.Stmt {
	tok := p.peek()
	if tok.Kind == token.SEMI {
		p.unexpectedMsg(tok, "unexpected ';' before the first statement")
	}
	if tok.Kind == token.RETURN {
		p.take()
		var value ast.Expr
		if p.canStartExpression() {
			value = p.parseExpression(exprState{allowObjectProbe: true})
		}
		sp := tok.Span
		if value != nil {
			sp = sp.Cover(value.Span())
		}
		return &ast.ReturnStatement{Value: value, Base: ast.Base{Sp: sp}}
	}
	expr := p.parseExpression(exprState{allowObjectProbe: true})
	return &ast.ExprStmt{X: expr, Base: ast.Base{Sp: expr.Span()}}
}

// canStartExpression reports whether the token at the cursor could open a
// new expression, used to tell a bare "return" from "return <value>"
// without committing to a parse attempt.
func (p *Parser) canStartExpression() bool {
	tok := p.peek()
	switch tok.Kind {
	case token.NEWLINE, token.EOF, token.SEMI, token.RBRACE, token.RPAREN, token.ELSE:
		return false
	default:
		return true
	}
}
