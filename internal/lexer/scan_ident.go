package lexer

import "surge/internal/token"

// scanIdentLen returns the byte length of the identifier starting at
// c.pos, assuming the caller already confirmed an identifier-start rune
// sits there: `^(?!\d)[$\w\x7f-￿]+`.
func scanIdentLen(c cursor) int {
	n := 0
	for {
		r, w := c.runeAt(n)
		if w == 0 || !token.IsIdentContinue(r) {
			break
		}
		n += w
	}
	return n
}

func identStartAt(c cursor) bool {
	r, w := c.runeAt(0)
	return w > 0 && token.IsIdentStart(r)
}
