// Package fuzztests houses Go fuzz harnesses for the scanner and parser:
// arbitrary byte strings in, checking that the scanner never loses bytes
// and the parser never panics or hangs on malformed input.
//
// Dependencies: internal/source, internal/lexer, internal/parser,
// internal/diag, internal/ast, internal/testkit.
package fuzztests
