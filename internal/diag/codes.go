package diag

import "fmt"

// Code identifies the kind of a diagnostic independently of its message text.
type Code uint16

const (
	UnknownCode Code = 0

	// Scanner errors: no rule matched, or a literal was left unterminated.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Parser errors, grouped by the taxonomy in the design: a rule consumed
	// a token it didn't expect, a rule's required follow-token was absent,
	// indentation rules were violated, a block body was empty, an operator
	// had no assigned priority, or trailing tokens remained after a
	// otherwise-successful parse.
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynExpectedToken   Code = 2002
	SynIndentMissing   Code = 2003
	SynIndentUnexpect  Code = 2004
	SynIndentRootBlock Code = 2005
	SynEmptyBlock      Code = 2006
	SynUndefinedPrec   Code = 2007
	SynLeftover        Code = 2008
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown error",
	LexInfo:               "lexical diagnostic",
	LexUnknownChar:        "no scanning rule matched at this position",
	LexUnterminatedString: "unterminated string literal",
	LexBadNumber:          "malformed numeric literal",
	SynInfo:               "syntax diagnostic",
	SynUnexpectedToken:    "unexpected token",
	SynExpectedToken:      "expected token not found",
	SynIndentMissing:      "missing indent",
	SynIndentUnexpect:     "unexpected indent",
	SynIndentRootBlock:    "missing indentation in root block",
	SynEmptyBlock:         "empty block",
	SynUndefinedPrec:      "operator has no defined priority",
	SynLeftover:           "unconsumed tokens after a successful parse",
}

// ID returns a stable, human-facing identifier such as "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

// Title returns the one-line description registered for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
