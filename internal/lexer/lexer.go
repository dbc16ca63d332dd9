package lexer

import (
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

// Scanner turns a source file into a flat, ordered vector of tokens whose
// concatenated Text fields reproduce the input exactly (§4.1's totality
// invariant). It never inserts or removes NEWLINE/WHITESPACE: significant
// indentation is entirely the parser's concern.
type Scanner struct {
	file *source.File
	cur  cursor
	opts Options
}

// Checkpoint is an opaque scanner position captured by Stash and restored
// by Rewind. Kept for alternate drivers per the package's external
// interface; the main Parser never uses it — it works over the fully
// scanned token vector instead.
type Checkpoint struct{ pos int }

// New creates a Scanner over file's content.
func New(file *source.File, opts Options) *Scanner {
	s := &Scanner{}
	s.Reset(file, opts)
	return s
}

// Reset rebinds the scanner to a new file, discarding any progress.
func (s *Scanner) Reset(file *source.File, opts Options) {
	s.file = file
	s.opts = opts
	if file != nil {
		s.cur = newCursor(file.Content)
	} else {
		s.cur = cursor{}
	}
}

// Stash captures the current scan position.
func (s *Scanner) Stash() Checkpoint { return Checkpoint{pos: s.cur.pos} }

// Rewind restores a position captured by Stash.
func (s *Scanner) Rewind(cp Checkpoint) { s.cur.pos = cp.pos }

// Scan consumes the entire remaining input and returns every token,
// trivia included, terminated by a single EOF token. It stops at the
// first byte no rule can classify and reports a ScanError.
func (s *Scanner) Scan() ([]token.Token, error) {
	var out []token.Token
	for !s.cur.eof() {
		tok, err := s.next()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
	out = append(out, token.Token{Kind: token.EOF, Span: s.emptySpanAt(s.cur.pos)})
	return out, nil
}

func (s *Scanner) next() (token.Token, error) {
	start := s.cur.pos

	if kind, n, err := s.scanOne(); err != nil {
		s.report(err, start, s.cur.pos+n)
		return token.Token{}, err
	} else if n > 0 {
		text := string(s.file.Content[start : start+n])
		s.cur.advance(n)
		return token.Token{Kind: kind, Text: text, Span: s.span(start, start+n)}, nil
	}

	err := &scanError{pos: start}
	s.report(err, start, start+1)
	return token.Token{}, err
}

// scanOne dispatches in a fixed order: newline first, then §4.1's order of
// common table (longest literal match, keyword-boundary checked),
// identifier, number, string, comment, whitespace.
func (s *Scanner) scanOne() (token.Kind, int, error) {
	c := s.cur

	if c.byteAt(0) == '\n' {
		return token.NEWLINE, 1, nil
	}

	if kind, n, ok := token.MatchCommon(c.rest()); ok {
		return kind, n, nil
	}

	if identStartAt(c) {
		return token.IDENTIFIER, scanIdentLen(c), nil
	}

	if token.IsDigit(rune(c.byteAt(0))) {
		return token.NUMBER, scanNumberLen(c), nil
	}

	if token.IsQuote(c.byteAt(0)) {
		n, err := scanStringLen(c)
		if err != nil {
			return token.Invalid, n, err
		}
		return token.STRING, n, nil
	}

	if c.byteAt(0) == '#' {
		n := 0
		for c.byteAt(n) != '\n' && !(c.pos+n >= len(c.src)) {
			n++
		}
		return token.COMMENT, n, nil
	}

	if token.IsHSpace(rune(c.byteAt(0))) {
		n := 0
		for token.IsHSpace(rune(c.byteAt(n))) {
			n++
		}
		return token.WHITESPACE, n, nil
	}

	return token.Invalid, 0, nil
}

func (s *Scanner) span(start, end int) source.Span {
	if s.file == nil {
		return source.Span{Start: uint32(start), End: uint32(end)}
	}
	return source.Span{File: s.file.ID, Start: uint32(start), End: uint32(end)}
}

func (s *Scanner) emptySpanAt(pos int) source.Span { return s.span(pos, pos) }

func (s *Scanner) report(err error, start, end int) {
	msg := err.Error()
	code := diag.LexUnknownChar
	if err == errUnterminatedString {
		code = diag.LexUnterminatedString
	}
	s.opts.reporter().Report(code, diag.SevError, s.span(start, end), msg, nil)
}

type scanError struct{ pos int }

func (e *scanError) Error() string { return "no scanning rule matched at this position" }
