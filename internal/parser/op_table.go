package parser

import "surge/internal/token"

// priority returns the binding power of a binary operator token, and
// whether one is defined at all. The table names in §4.5 are given
// explicit priorities; the ones the reference left undefined (|, ^, &,
// <<, >>, >>>) are filled in here with the customary C-like order the
// spec suggests: bitwise looser than comparisons, shift between add and
// multiply.
func priority(tok token.Token) (int, bool) {
	switch tok.Kind {
	case token.IF, token.UNLESS:
		return 1, true
	case token.OPERATOR:
		switch tok.Text {
		case "|":
			return 2, true
		case "^":
			return 3, true
		case "&":
			return 4, true
		case "is", "isnt", "==", "!=", ">=", "<=", ">", "<":
			return 10, true
		case "+", "-":
			return 50, true
		case "<<", ">>", ">>>":
			return 75, true
		case "*", "/":
			return 100, true
		}
	}
	return 0, false
}

// isBinaryOperator reports whether tok can start a binary operator
// continuation of an already-parsed left operand: an OPERATOR token, or a
// postfix IF/UNLESS.
func isBinaryOperator(tok token.Token) bool {
	if tok.Kind == token.IF || tok.Kind == token.UNLESS {
		return true
	}
	return tok.Kind == token.OPERATOR
}
