package parser

import (
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

// Options configures a Parser.
type Options struct {
	Reporter  diag.Reporter
	MaxErrors uint
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}

// Parser holds all per-file parsing state: the token cursor plus the extra
// counters and stacks the grammar's speculative rules need to save and
// restore atomically. reset(tokens) fully reinitializes it — nothing
// survives across two parses of the same Parser value (§5).
type Parser struct {
	tokenView
	inFCall     int // >0 while parsing an implicit call's arguments; no rule reads it
	inParens    int // >0 inside "( ... )"; lets a block terminate at ")"
	elseStop    int // >0 while parsing an if's block-form then-part; lets a block terminate at ELSE
	indentStack []int
	eof         bool

	opts     Options
	fileID   source.FileID
	lastSpan source.Span
}

// parserSnapshot is a value copy of every field a speculative rule may
// mutate. Restoring it undoes exactly those mutations; indentStack is
// copied by value (not aliased) so a rule that pushes a block indent and
// then fails can never leave the stack corrupted for its caller.
type parserSnapshot struct {
	pos         int
	inFCall     int
	inParens    int
	elseStop    int
	indentStack []int
	eof         bool
}

func (p *Parser) snapshot() parserSnapshot {
	return parserSnapshot{
		pos:         p.pos,
		inFCall:     p.inFCall,
		inParens:    p.inParens,
		elseStop:    p.elseStop,
		indentStack: append([]int(nil), p.indentStack...),
		eof:         p.eof,
	}
}

func (p *Parser) restoreSnapshot(s parserSnapshot) {
	p.pos = s.pos
	p.inFCall = s.inFCall
	p.inParens = s.inParens
	p.elseStop = s.elseStop
	p.indentStack = s.indentStack
	p.eof = s.eof
}

// New creates a Parser over an already-scanned token vector.
func New(fileID source.FileID, toks []token.Token, opts Options) *Parser {
	p := &Parser{opts: opts, fileID: fileID}
	p.Reset(toks)
	return p
}

// Reset rebinds the parser to a new token vector, discarding all state.
func (p *Parser) Reset(toks []token.Token) {
	p.tokenView = newTokenView(toks)
	p.inFCall = 0
	p.inParens = 0
	p.elseStop = 0
	p.indentStack = nil
	p.eof = false
}

func (p *Parser) span(start, end token.Token) source.Span {
	return start.Span.Cover(end.Span)
}
