package lexer

import (
	"testing"

	"surge/internal/source"
	"surge/internal/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.coffee", []byte(src))
	toks, err := New(fs.Get(id), Options{}).Scan()
	if err != nil {
		t.Fatalf("Scan(%q) error: %v", src, err)
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

// TestScannerTotality is §8.1's universal property: for every input that
// scans successfully, concatenating every token's Text reproduces it.
func TestScannerTotality(t *testing.T) {
	inputs := []string{
		"",
		"foo = 1 + 2",
		"if x then y else z",
		"# a comment\nfoo()",
		`"hello \"world\""`,
		"a.b.c\n  d\n",
		"foo -2, b +3 | 0",
		"x++ + ++y",
	}
	for _, in := range inputs {
		toks := scanAll(t, in)
		var got string
		for _, tk := range toks {
			got += tk.Text
		}
		if got != in {
			t.Errorf("totality broken for %q: got %q", in, got)
		}
	}
}

func TestScannerKeywordBoundary(t *testing.T) {
	toks := scanAll(t, "returning")
	if len(toks) != 2 || toks[0].Kind != token.IDENTIFIER || toks[0].Text != "returning" {
		t.Fatalf("expected a single IDENTIFIER 'returning', got %v", kinds(toks))
	}
}

// TestScannerReturn1FixedBoundary checks that a keyword prefix inside a
// longer identifier never gets scanned as a keyword: since MatchCommon
// requires a non-identifier boundary after a word keyword, "return1" scans
// whole as one identifier rather than RETURN followed by NUMBER "1".
func TestScannerReturn1FixedBoundary(t *testing.T) {
	toks := scanAll(t, "return1")
	if len(toks) != 2 || toks[0].Kind != token.IDENTIFIER || toks[0].Text != "return1" {
		t.Fatalf("expected IDENTIFIER 'return1', got %v", kinds(toks))
	}
}

func TestScannerMultiCharBeforePrefix(t *testing.T) {
	toks := scanAll(t, "++x >>> y")
	want := []token.Kind{token.UNARY_MATH, token.IDENTIFIER, token.WHITESPACE, token.OPERATOR, token.WHITESPACE, token.IDENTIFIER, token.EOF}
	if got := kinds(toks); !kindsEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if toks[3].Text != ">>>" {
		t.Fatalf("expected '>>>' matched whole, got %q", toks[3].Text)
	}
}

func TestScannerStringEscape(t *testing.T) {
	toks := scanAll(t, `"a\"b"`)
	if toks[0].Kind != token.STRING || toks[0].Text != `"a\"b"` {
		t.Fatalf("expected whole escaped string token, got %+v", toks[0])
	}
}

func TestScannerUnterminatedString(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.coffee", []byte(`"unterminated`))
	_, err := New(fs.Get(id), Options{}).Scan()
	if err == nil {
		t.Fatalf("expected unterminated string to error")
	}
}

func TestScannerStringNewlineIsUnterminated(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.coffee", []byte("\"a\nb\""))
	_, err := New(fs.Get(id), Options{}).Scan()
	if err == nil {
		t.Fatalf("expected embedded newline to error")
	}
}

func TestScannerCommentStopsBeforeNewline(t *testing.T) {
	toks := scanAll(t, "# hi\nfoo")
	if toks[0].Kind != token.COMMENT || toks[0].Text != "# hi" {
		t.Fatalf("expected COMMENT '# hi', got %+v", toks[0])
	}
	if toks[1].Kind != token.NEWLINE {
		t.Fatalf("expected NEWLINE after comment, got %v", toks[1].Kind)
	}
}

func TestScannerWhitespaceNeverCrossesNewline(t *testing.T) {
	toks := scanAll(t, "a  \n  b")
	// a, WS, NEWLINE, WS, b, EOF
	want := []token.Kind{token.IDENTIFIER, token.WHITESPACE, token.NEWLINE, token.WHITESPACE, token.IDENTIFIER, token.EOF}
	if got := kinds(toks); !kindsEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func kindsEqual(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStashRewind(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.coffee", []byte("abc def"))
	s := New(fs.Get(id), Options{})
	cp := s.Stash()
	first, err := s.next()
	if err != nil {
		t.Fatalf("next() error: %v", err)
	}
	s.Rewind(cp)
	second, err := s.next()
	if err != nil {
		t.Fatalf("next() error: %v", err)
	}
	if first != second {
		t.Fatalf("expected rewind to reproduce the same token, got %+v vs %+v", first, second)
	}
}
