package lexer

import "surge/internal/token"

// scanNumberLen returns the byte length of the digit run starting at
// c.pos: `^[0-9]+`. No floats, no signs — a leading '-' or '+' is always a
// separate unary-operator token, handled by the parser, not the scanner.
func scanNumberLen(c cursor) int {
	n := 0
	for token.IsDigit(rune(c.byteAt(n))) {
		n++
	}
	return n
}
