package lexer

import "errors"

// errUnterminatedString is returned by scanStringLen when the closing quote
// is never found on the same line.
var errUnterminatedString = errors.New("unterminated string literal")

// scanStringLen returns the byte length of a string literal starting at
// c.pos (which must hold the opening quote): consume until the matching
// un-escaped quote on the same line. '\' escapes the next character
// unconditionally, including another backslash or the quote itself. An
// embedded newline or end-of-input before the closing quote is an error.
func scanStringLen(c cursor) (int, error) {
	quote := c.byteAt(0)
	n := 1
	for {
		b := c.byteAt(n)
		switch {
		case b == 0 && c.pos+n >= len(c.src):
			return n, errUnterminatedString
		case b == '\n':
			return n, errUnterminatedString
		case b == '\\':
			// Escapes the next byte verbatim, even a newline: the reference
			// grammar treats a backslash-newline as consuming both bytes
			// rather than terminating the literal early. A trailing lone
			// backslash at EOF still reports unterminated.
			if c.pos+n+1 >= len(c.src) {
				return n + 1, errUnterminatedString
			}
			n += 2
		case b == quote:
			return n + 1, nil
		default:
			n++
		}
	}
}
