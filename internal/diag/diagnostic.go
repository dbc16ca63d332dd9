package diag

import "surge/internal/source"

// Note attaches secondary context to a Diagnostic, e.g. pointing back at the
// opening delimiter of an unmatched closer.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one scanner or parser error/warning, tied to the token span
// that triggered it.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
