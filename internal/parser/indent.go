package parser

import "surge/internal/token"

func (p *Parser) topIndent() int {
	if len(p.indentStack) == 0 {
		return 0
	}
	return p.indentStack[len(p.indentStack)-1]
}

func (p *Parser) pushIndent(n int) { p.indentStack = append(p.indentStack, n) }

func (p *Parser) popIndent() {
	if len(p.indentStack) > 0 {
		p.indentStack = p.indentStack[:len(p.indentStack)-1]
	}
}

// moveToNextLine advances past the current NEWLINE and any further
// trivia/newlines, tracking the indent of the line it lands on (§4.3.1).
// It is an error to call this when the raw next token isn't a NEWLINE,
// unless inBlock is true and the parser sits at position 0 (an empty file
// with no leading newline at all).
func (p *Parser) moveToNextLine(inBlock bool) int {
	p.pos = p.skipTrivia(p.pos) // land on the NEWLINE itself, past any trailing WHITESPACE/COMMENT
	if p.at(p.pos).Kind != token.NEWLINE {
		if !(inBlock && p.pos == 0) {
			panic("moveToNextLine called without a NEWLINE at the cursor")
		}
	} else {
		p.pos++ // consume the NEWLINE directly; peek() would stop at it.
	}

	indent := 0
	for {
		tok := p.rawPeek()
		switch tok.Kind {
		case token.NEWLINE:
			indent = 0
			p.pos++
		case token.WHITESPACE:
			indent += len(tok.Text)
			p.pos++
		case token.COMMENT:
			p.pos++
		case token.EOF:
			if inBlock {
				p.eof = true
				return 0
			}
			return indent
		default:
			if !inBlock && indent < p.topIndent() {
				p.indentMissing(tok)
			}
			return indent
		}
	}
}

// tryMoveToNextLine is the speculative twin of moveToNextLine: it performs
// the same trivia walk but never raises indentMissing, leaving the floor
// check to the caller. Used by continuation rules that must rewind on a
// disappointing indent rather than abort the parse (§4.8's implicit
// argument-list continuation).
func (p *Parser) tryMoveToNextLine() int {
	p.pos = p.skipTrivia(p.pos)
	if p.at(p.pos).Kind != token.NEWLINE {
		return -1
	}
	p.pos++
	indent := 0
	for {
		tok := p.rawPeek()
		switch tok.Kind {
		case token.NEWLINE:
			indent = 0
			p.pos++
		case token.WHITESPACE:
			indent += len(tok.Text)
			p.pos++
		case token.COMMENT:
			p.pos++
		case token.EOF:
			p.eof = true
			return indent
		default:
			return indent
		}
	}
}
