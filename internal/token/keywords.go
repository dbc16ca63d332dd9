package token

import "unicode/utf8"

// commonEntry is one row of the literal table the scanner probes before
// falling back to identifier/number/string scanning. word marks entries
// that must not match inside a longer identifier (e.g. "in" must not fire
// on "index"): the scanner requires the byte following the match to not
// continue an identifier.
type commonEntry struct {
	text string
	kind Kind
	word bool
}

// commonTable is checked in order; put longer operators before their
// prefixes ("." before "..." would be wrong, so ELLIPSIS is listed first)
// so maximal munch falls out of a simple linear scan.
var commonTable = []commonEntry{
	// Word-shaped keywords. Longest-first within this group is not required
	// since the trailing boundary check (word: true) disambiguates "is" from
	// "island" and "in" from "index" without needing ordering tricks.
	{"return", RETURN, true},
	{"unless", UNLESS, true},
	{"continue", CONTINUE, true},
	{"break", BREAK, true},
	{"loop", LOOP, true},
	{"until", UNTIL, true},
	{"then", THEN, true},
	{"else", ELSE, true},
	{"for", FOR, true},
	{"if", IF, true},
	{"in", IN, true},
	{"of", OF, true},
	{"isnt", OPERATOR, true},
	{"is", OPERATOR, true},
	{"true", BUILTIN_PRIMARY, true},
	{"false", BUILTIN_PRIMARY, true},
	{"undefined", BUILTIN_PRIMARY, true},
	{"null", BUILTIN_PRIMARY, true},
	{"this", LONG_THIS, true},

	// Multi-character operators/punctuation, longest first so a shorter
	// prefix never shadows a longer match (e.g. "..." before ".").
	{"...", ELLIPSIS, false},
	{"->", FUNC, false},
	{"=>", FUNC, false},
	{"++", UNARY_MATH, false},
	{"--", UNARY_MATH, false},
	{"==", OPERATOR, false},
	{"!=", OPERATOR, false},
	{">=", OPERATOR, false},
	{"<=", OPERATOR, false},
	{"<<", OPERATOR, false},
	{">>>", OPERATOR, false},
	{">>", OPERATOR, false},
	{"+=", ASSIGN_OPERATOR, false},
	{"-=", ASSIGN_OPERATOR, false},
	{"*=", ASSIGN_OPERATOR, false},
	{"/=", ASSIGN_OPERATOR, false},
	{"^=", ASSIGN_OPERATOR, false},
	{"|=", ASSIGN_OPERATOR, false},

	// Single-character punctuation and operators.
	{"(", LPAREN, false},
	{")", RPAREN, false},
	{"{", LBRACE, false},
	{"}", RBRACE, false},
	{"[", LBRACKET, false},
	{"]", RBRACKET, false},
	{",", COMMA, false},
	{";", SEMI, false},
	{":", COLON, false},
	{".", DOT, false},
	{"@", SHORT_THIS, false},
	{"=", ASSIGN_OPERATOR, false},
	{"!", UNARY, false},
	{"+", OPERATOR, false},
	{"-", OPERATOR, false},
	{"*", OPERATOR, false},
	{"/", OPERATOR, false},
	{"^", OPERATOR, false},
	{"|", OPERATOR, false},
	{"&", OPERATOR, false},
	{"<", OPERATOR, false},
	{">", OPERATOR, false},
}

// MatchCommon tries to match the start of rest against the common table,
// rejecting a word entry when it is immediately followed by another
// identifier character (so "return1" does not lex as RETURN followed by a
// stray "1": the whole "return1" falls through to identifier scanning
// instead). It returns the matched kind and its byte length.
func MatchCommon(rest string) (Kind, int, bool) {
	for _, e := range commonTable {
		if !hasPrefix(rest, e.text) {
			continue
		}
		if e.word {
			after := rest[len(e.text):]
			if after != "" {
				r, _ := utf8.DecodeRuneInString(after)
				if IsIdentContinue(r) {
					continue
				}
			}
		}
		return e.kind, len(e.text), true
	}
	return Invalid, 0, false
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// LookupKeyword reports the Kind an identifier-shaped lexeme should have
// been scanned as, had the common table matched it as a word. Exposed so
// callers that already isolated an identifier (e.g. re-lexing, tooling)
// can classify it without re-running table lookup at the byte level.
func LookupKeyword(ident string) (Kind, bool) {
	for _, e := range commonTable {
		if e.word && e.text == ident {
			return e.kind, true
		}
	}
	return Invalid, false
}
