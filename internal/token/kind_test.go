package token_test

import (
	"testing"

	"surge/internal/token"
)

func TestIsTrivia(t *testing.T) {
	trivia := []token.Kind{token.WHITESPACE, token.COMMENT}
	for _, k := range trivia {
		if !k.IsTrivia() {
			t.Fatalf("%v should be trivia", k)
		}
	}
	non := []token.Kind{token.NEWLINE, token.IDENTIFIER, token.NUMBER, token.IF, token.LPAREN}
	for _, k := range non {
		if k.IsTrivia() {
			t.Fatalf("%v must NOT be trivia", k)
		}
	}
}

func TestKindStringIsStable(t *testing.T) {
	cases := map[token.Kind]string{
		token.Invalid:    "Invalid",
		token.EOF:        "EOF",
		token.IDENTIFIER: "IDENTIFIER",
		token.NUMBER:     "NUMBER",
		token.STRING:     "STRING",
		token.IF:         "IF",
		token.UNLESS:     "UNLESS",
		token.RETURN:     "RETURN",
		token.ELLIPSIS:   "ELLIPSIS",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	var bogus token.Kind = 200
	if got := bogus.String(); got != "UNKNOWN" {
		t.Fatalf("String() of an unrecognized Kind = %q, want %q", got, "UNKNOWN")
	}
}
