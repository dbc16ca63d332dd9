package token

// Character classifier: single-rune predicates shared by the scanner's
// dispatch switch and its individual scan_*.go rules.

// IsIdentStart reports whether r can begin an identifier: a letter,
// underscore, dollar sign, or any code point in the \x7f-￿ band the
// source language treats as an extended identifier character. Digits may
// not start an identifier.
func IsIdentStart(r rune) bool {
	switch {
	case r == '_' || r == '$':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0x7f:
		return true
	default:
		return false
	}
}

// IsIdentContinue reports whether r can continue an identifier once started;
// unlike IsIdentStart it also accepts digits.
func IsIdentContinue(r rune) bool {
	return IsIdentStart(r) || IsDigit(r)
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHSpace reports whether r is horizontal whitespace (space or tab). The
// scanner never treats '\n' as IsHSpace: newlines are their own token kind.
func IsHSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsQuote reports whether b opens a string literal.
func IsQuote(b byte) bool {
	return b == '"' || b == '\''
}
