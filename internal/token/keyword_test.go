package token

import "testing"

func TestLookupKeywordPositive(t *testing.T) {
	cases := map[string]Kind{
		"return":    RETURN,
		"unless":    UNLESS,
		"then":      THEN,
		"else":      ELSE,
		"for":       FOR,
		"until":     UNTIL,
		"loop":      LOOP,
		"in":        IN,
		"of":        OF,
		"break":     BREAK,
		"continue":  CONTINUE,
		"true":      BUILTIN_PRIMARY,
		"false":     BUILTIN_PRIMARY,
		"undefined": BUILTIN_PRIMARY,
		"null":      BUILTIN_PRIMARY,
		"this":      LONG_THIS,
		"is":        OPERATOR,
		"isnt":      OPERATOR,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeywordNegative(t *testing.T) {
	notKw := []string{"Return", "IF", "identifier", "returning", "index", "island", "toString"}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestMatchCommonRejectsKeywordPrefix(t *testing.T) {
	if _, _, ok := MatchCommon("return1"); ok {
		t.Fatalf("MatchCommon(%q) should not match return as a whole word", "return1")
	}
	if k, n, ok := MatchCommon("return "); !ok || k != RETURN || n != len("return") {
		t.Fatalf("MatchCommon(%q) = (%v, %d, %v), want (RETURN, %d, true)", "return ", k, n, ok, len("return"))
	}
}

func TestMatchCommonMaximalMunch(t *testing.T) {
	if k, n, ok := MatchCommon("...x"); !ok || k != ELLIPSIS || n != 3 {
		t.Fatalf("MatchCommon(%q) = (%v, %d, %v), want (ELLIPSIS, 3, true)", "...x", k, n, ok)
	}
	if k, n, ok := MatchCommon(">>>x"); !ok || k != OPERATOR || n != 3 {
		t.Fatalf("MatchCommon(%q) = (%v, %d, %v), want (OPERATOR, 3, true)", ">>>x", k, n, ok)
	}
	if k, n, ok := MatchCommon("->x"); !ok || k != FUNC || n != 2 {
		t.Fatalf("MatchCommon(%q) = (%v, %d, %v), want (FUNC, 2, true)", "->x", k, n, ok)
	}
}
