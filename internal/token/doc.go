// Package token defines the lexical token kinds the scanner produces.
// Invariants:
//   - Token.Text is the exact matched slice of the source; concatenating
//     every token's Text in scan order reproduces the input byte-for-byte.
//   - WHITESPACE, COMMENT and NEWLINE are ordinary tokens in the stream, not
//     trivia attached to neighboring tokens; Kind.IsTrivia marks the first
//     two as skippable by parser rules that don't care about layout.
package token
