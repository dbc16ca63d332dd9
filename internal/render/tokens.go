package render

import (
	"encoding/json"
	"fmt"
	"io"

	"surge/internal/source"
	"surge/internal/token"
)

// TokenOutput is the JSON projection of a single token.
type TokenOutput struct {
	Index int         `json:"index"`
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Span  source.Span `json:"span"`
	Line  uint32      `json:"line"`
	Col   uint32      `json:"col"`
}

// TokensPretty writes one line per token: index, kind, quoted text (if
// any), and a resolved line:col position.
func TokensPretty(w io.Writer, toks []token.Token, fs *source.FileSet) error {
	for i, tok := range toks {
		start, _ := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%4d: %-16s", i, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " @ %d:%d\n", start.Line, start.Col); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// TokensJSON writes the whole token vector as a JSON array.
func TokensJSON(w io.Writer, toks []token.Token, fs *source.FileSet) error {
	out := make([]TokenOutput, 0, len(toks))
	for i, tok := range toks {
		start, _ := fs.Resolve(tok.Span)
		out = append(out, TokenOutput{
			Index: i,
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Span:  tok.Span,
			Line:  start.Line,
			Col:   start.Col,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
