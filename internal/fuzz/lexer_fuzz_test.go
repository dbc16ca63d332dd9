package fuzztests

import (
	"bytes"
	"testing"

	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/source"
	"surge/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// FuzzLexerTokens checks the scanner's totality invariant (§4.1): for any
// input that scans without error, concatenating every token's Text
// reproduces the input exactly, and the trailing EOF token is empty.
func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fset := source.NewFileSet()
		fileID := fset.AddVirtual("fuzz.sg", input)
		file := fset.Get(fileID)

		bag := diag.NewBag(64)
		reporter := diag.BagReporter{Bag: bag}
		toks, err := lexer.New(file, lexer.Options{Reporter: reporter}).Scan()
		if err != nil {
			return
		}

		var buf bytes.Buffer
		for _, tok := range toks {
			buf.WriteString(tok.Text)
		}
		if !bytes.Equal(buf.Bytes(), file.Content) {
			t.Fatalf("scanner lost bytes: got %q, want %q", buf.Bytes(), file.Content)
		}
		if n := len(toks); n == 0 || toks[n-1].Kind != token.EOF {
			t.Fatalf("token vector does not end in a single EOF token: %v", toks)
		}
	})
}
