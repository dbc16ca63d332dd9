package parser

import (
	"fmt"

	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

// ParseError is returned by Parse when a non-speculative rule hits a
// condition it cannot recover from. Speculative rules never produce one:
// they convert failure into a restored snapshot and a bool/nil result
// instead (§7).
type ParseError struct {
	Code    diag.Code
	Message string
	At      source.Span
}

func (e *ParseError) Error() string { return e.Message }

// bailout is the payload panic()'d by hard-failing rules and recovered at
// Parse's top level, mirroring the "abort parsing immediately" rule in §7.
// Every helper below is a "commit point": once called, the caller must not
// treat the failure as speculative.
type bailout struct{ err *ParseError }

func (p *Parser) fail(code diag.Code, sp source.Span, msg string) {
	e := &ParseError{Code: code, Message: msg, At: sp}
	p.opts.reporter().Report(code, diag.SevError, sp, msg, nil)
	panic(bailout{err: e})
}

func (p *Parser) unexpected(tok token.Token) {
	p.fail(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("unexpected token: %q", tok.Text))
}

func (p *Parser) unexpectedMsg(tok token.Token, msg string) {
	p.fail(diag.SynUnexpectedToken, tok.Span, msg)
}

func (p *Parser) expected(what string, got token.Token) {
	p.fail(diag.SynExpectedToken, got.Span, fmt.Sprintf("expected %s, found %q", what, got.Text))
}

func (p *Parser) emptyBlock(construct string, at token.Token) {
	p.fail(diag.SynEmptyBlock, at.Span, fmt.Sprintf("empty block in a %q", construct))
}

func (p *Parser) undefinedPriority(tok token.Token) {
	p.fail(diag.SynUndefinedPrec, tok.Span, fmt.Sprintf("operator %q has no defined priority", tok.Text))
}

func (p *Parser) indentMissing(at token.Token) {
	p.fail(diag.SynIndentMissing, at.Span, "missing indent")
}

func (p *Parser) indentUnexpected(at token.Token) {
	p.fail(diag.SynIndentUnexpect, at.Span, "unexpected indent")
}

func (p *Parser) indentMissingRootBlock(at token.Token) {
	p.fail(diag.SynIndentRootBlock, at.Span, "missing indentation in root block")
}

func (p *Parser) leftover(at token.Token) {
	p.fail(diag.SynLeftover, at.Span, fmt.Sprintf("unconsumed tokens after a successful parse: %q", at.Text))
}

// expect consumes the next significant token if it has kind k, or hard-fails.
func (p *Parser) expect(k token.Kind, what string) token.Token {
	tok := p.peek()
	if tok.Kind != k {
		p.expected(what, tok)
	}
	return p.take()
}
