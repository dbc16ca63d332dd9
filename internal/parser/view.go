package parser

import "surge/internal/token"

// tokenView is a non-destructive cursor over a flat token vector. peek/take
// skip WHITESPACE and COMMENT trivia but stop at NEWLINE — the parser only
// crosses a newline explicitly, via the indent tracker's moveToNextLine,
// because doing so has an indentation cost that plain lookahead must not
// pay silently.
type tokenView struct {
	toks []token.Token
	pos  int
}

func newTokenView(toks []token.Token) tokenView {
	return tokenView{toks: toks}
}

// cursor is a Checkpoint over the view alone, used by rules that only need
// to rewind token position (most of the grammar). Rules that also mutate
// indentStack/inFCall/inParens save a full parserSnapshot instead.
type cursor struct{ pos int }

func (v *tokenView) stash() cursor { return cursor{pos: v.pos} }

func (v *tokenView) restore(c cursor) { v.pos = c.pos }

func (v *tokenView) at(i int) token.Token {
	if i < 0 || i >= len(v.toks) {
		if len(v.toks) == 0 {
			return token.Token{Kind: token.EOF}
		}
		return v.toks[len(v.toks)-1]
	}
	return v.toks[i]
}

func (v *tokenView) rawPeek() token.Token { return v.at(v.pos) }

// peekSpace reports whether the very next raw token (no skipping) is
// WHITESPACE: used to tell "foo(2)" from "foo (2)" and to gate unary vs.
// binary reads in an implicit call's arguments.
func (v *tokenView) peekSpace() bool { return v.rawPeek().Kind == token.WHITESPACE }

// skipTrivia returns the index of the next non-WHITESPACE, non-COMMENT
// token at or after i, without skipping NEWLINE.
func (v *tokenView) skipTrivia(i int) int {
	for {
		k := v.at(i).Kind
		if k != token.WHITESPACE && k != token.COMMENT {
			return i
		}
		i++
	}
}

// skipTriviaAndNewlines returns the index of the next token at or after i
// that is none of WHITESPACE, COMMENT, or NEWLINE.
func (v *tokenView) skipTriviaAndNewlines(i int) int {
	for {
		k := v.at(i).Kind
		if k != token.WHITESPACE && k != token.COMMENT && k != token.NEWLINE {
			return i
		}
		i++
	}
}

// peek returns the next significant token, stopping at (not skipping) a
// NEWLINE.
func (v *tokenView) peek() token.Token { return v.at(v.skipTrivia(v.pos)) }

// peekThroughNewlines additionally skips NEWLINE tokens.
func (v *tokenView) peekThroughNewlines() token.Token {
	return v.at(v.skipTriviaAndNewlines(v.pos))
}

// peekNewline reports whether peek() would land on a NEWLINE.
func (v *tokenView) peekNewline() bool { return v.peek().Kind == token.NEWLINE }

// peekAfter looks one significant token past the current one, without
// consuming anything: used by lookahead probes like the unbracketed
// object-literal "key :" check.
func (v *tokenView) peekAfter() token.Token {
	i := v.skipTrivia(v.pos)
	i = v.skipTrivia(i + 1)
	return v.at(i)
}

// take advances past and returns the next significant token.
func (v *tokenView) take() token.Token {
	v.pos = v.skipTrivia(v.pos)
	tok := v.at(v.pos)
	if tok.Kind != token.EOF {
		v.pos++
	}
	return tok
}

// spaceAfterPeek reports whether the raw token immediately following the
// current significant token is WHITESPACE, without consuming anything.
// Used to tell a tightly-bound prefix operator ("-2") from one that merely
// starts a new binary operand ("- 2").
func (v *tokenView) spaceAfterPeek() bool {
	i := v.skipTrivia(v.pos)
	return v.at(i + 1).Kind == token.WHITESPACE
}

// skipAllTrivia advances the cursor past every WHITESPACE/COMMENT/NEWLINE
// run without recording anything: used in contexts where a newline carries
// no indent obligation of its own, like inside a parenthesized argument
// list (§4.8).
func (v *tokenView) skipAllTrivia() { v.pos = v.skipTriviaAndNewlines(v.pos) }

func (v *tokenView) at_(k token.Kind) bool { return v.peek().Kind == k }

func (v *tokenView) atAny(kinds ...token.Kind) bool {
	pk := v.peek().Kind
	for _, k := range kinds {
		if pk == k {
			return true
		}
	}
	return false
}
