package parser

import (
	"surge/internal/ast"
	"surge/internal/token"
)

// probeUnbracketedObject is the speculative lookahead of §4.7: an
// unbracketed object literal is only attempted where the caller has
// already decided the context permits one, and only when the very next
// tokens are "key :".
func (p *Parser) probeUnbracketedObject() bool {
	tok := p.peek()
	if tok.Kind != token.IDENTIFIER && tok.Kind != token.NUMBER && tok.Kind != token.STRING {
		return false
	}
	return p.peekAfter().Kind == token.COLON
}

func (p *Parser) parseObjectKey() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.IDENTIFIER:
		p.take()
		return &ast.Identifier{Text: tok.Text, Base: ast.Base{Sp: tok.Span}}
	case token.NUMBER:
		p.take()
		return &ast.Number{Text: tok.Text, Base: ast.Base{Sp: tok.Span}}
	case token.STRING:
		p.take()
		return &ast.StringLiteral{Text: tok.Text, Base: ast.Base{Sp: tok.Span}}
	default:
		p.expected("object key", tok)
		return nil
	}
}

func (p *Parser) parseObjectProperty() ast.ObjectProperty {
	key := p.parseObjectKey()
	p.expect(token.COLON, "':'")
	valSt := exprState{allowObjectProbe: true}
	if p.peekNewline() {
		snap := p.snapshot()
		landed := p.tryMoveToNextLine()
		lastIndent := p.topIndent()
		if landed > lastIndent {
			v := landed
			valSt.exprIndent = &v
		} else {
			p.restoreSnapshot(snap)
		}
	}
	val := p.parseExpression(valSt)
	return ast.ObjectProperty{Key: key, Value: val}
}

// parseObjectProperties implements the shared indent state machine of
// §4.7 for both surface forms. bracketed selects whether a violated floor
// is a hard error (inside "{}") or a clean rewind (unbracketed, where the
// offending line belongs to whatever follows the literal). inline marks an
// unbracketed literal that opened on the same line as its enclosing
// construct (exprIndent was never set): a bare newline landing back at
// lastIndent there belongs to whatever statement follows, not to another
// property, so continuing past it requires an explicit comma.
func (p *Parser) parseObjectProperties(lastIndent int, bracketed, inline bool) []ast.ObjectProperty {
	minIndent := lastIndent
	props := []ast.ObjectProperty{p.parseObjectPropertyProbed()}

	for {
		if p.peek().Kind == token.COMMA {
			p.take()
			if p.peekNewline() {
				snap := p.snapshot()
				landed := p.tryMoveToNextLine()
				if bracketed && p.peek().Kind == token.RBRACE {
					return props
				}
				if landed < minIndent {
					if bracketed {
						p.indentMissing(p.peek())
					}
					p.restoreSnapshot(snap)
					return props
				}
				if landed < lastIndent {
					lastIndent = landed
				}
			}
			props = append(props, p.parseObjectPropertyProbed())
			continue
		}

		if !p.peekNewline() {
			return props
		}
		snap := p.snapshot()
		landed := p.tryMoveToNextLine()
		if bracketed && p.peek().Kind == token.RBRACE {
			return props
		}
		switch {
		case landed == lastIndent && inline:
			p.restoreSnapshot(snap)
			return props
		case landed == lastIndent:
			props = append(props, p.parseObjectPropertyProbed())
		case landed > lastIndent:
			p.indentUnexpected(p.peek())
		case landed < minIndent:
			if bracketed {
				p.indentMissing(p.peek())
			}
			p.restoreSnapshot(snap)
			return props
		default:
			p.restoreSnapshot(snap)
			return props
		}
	}
}

// parseObjectPropertyProbed re-checks the key-colon shape before
// committing, so a malformed line past the first property still fails
// with a precise "expected key" rather than an obscure indent error.
func (p *Parser) parseObjectPropertyProbed() ast.ObjectProperty {
	if !p.probeUnbracketedObject() {
		p.expected("object key", p.peek())
	}
	return p.parseObjectProperty()
}

func (p *Parser) parseBracketedObjectLiteral(st exprState) ast.Expr {
	open := p.expect(token.LBRACE, "'{'")
	lastIndent := p.topIndent()
	if st.exprIndent != nil {
		lastIndent = *st.exprIndent
	}
	if p.peekNewline() {
		landed := p.tryMoveToNextLine()
		if landed < lastIndent {
			p.indentMissing(p.peek())
		}
	}
	if p.peek().Kind == token.RBRACE {
		p.unexpectedMsg(p.peek(), "empty object literal")
	}
	props := p.parseObjectProperties(lastIndent, true, false)
	if p.peekNewline() {
		p.tryMoveToNextLine()
	}
	closeTok := p.expect(token.RBRACE, "'}'")
	return &ast.ObjectLiteral{Properties: props, Base: ast.Base{Sp: open.Span.Cover(closeTok.Span)}}
}

func (p *Parser) parseUnbracketedObjectLiteral(st exprState) ast.Expr {
	lastIndent := p.topIndent()
	if st.exprIndent != nil {
		lastIndent = *st.exprIndent
	}
	props := p.parseObjectProperties(lastIndent, false, st.exprIndent == nil)
	sp := props[0].Key.Span().Cover(props[len(props)-1].Value.Span())
	return &ast.ObjectLiteral{Properties: props, Base: ast.Base{Sp: sp}}
}
