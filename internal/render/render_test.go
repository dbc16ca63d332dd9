package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/source"
	"surge/internal/token"
)

func scanAndParse(t *testing.T, src string) (*source.FileSet, source.FileID, []token.Token, *ast.Block) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sg", []byte(src))
	toks, err := lexer.New(fs.Get(id), lexer.Options{}).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	root, err := parser.New(id, toks, parser.Options{}).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return fs, id, toks, root
}

func TestTokensPrettyContainsEveryToken(t *testing.T) {
	fs, _, toks, _ := scanAndParse(t, "x = 1\n")
	var buf bytes.Buffer
	if err := TokensPretty(&buf, toks, fs); err != nil {
		t.Fatalf("TokensPretty error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "IDENTIFIER") {
		t.Errorf("expected an IDENTIFIER line, got:\n%s", out)
	}
	if !strings.Contains(out, `"x"`) {
		t.Errorf("expected the identifier text quoted, got:\n%s", out)
	}
}

func TestTokensJSONIsValidAndOrdered(t *testing.T) {
	fs, _, toks, _ := scanAndParse(t, "x = 1\n")
	var buf bytes.Buffer
	if err := TokensJSON(&buf, toks, fs); err != nil {
		t.Fatalf("TokensJSON error: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != len(toks) {
		t.Fatalf("expected %d entries, got %d", len(toks), len(out))
	}
	for i, o := range out {
		if o.Index != i {
			t.Errorf("entry %d has Index %d", i, o.Index)
		}
	}
}

func TestASTJSONRoundTripsStructure(t *testing.T) {
	_, _, _, root := scanAndParse(t, "x = 1 + 2\n")
	var buf bytes.Buffer
	if err := ASTJSON(&buf, root); err != nil {
		t.Fatalf("ASTJSON error: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["kind"] != "Block" {
		t.Errorf("expected root kind Block, got %v", out["kind"])
	}
}

func TestASTTreeProducesNonEmptyOutput(t *testing.T) {
	_, _, _, root := scanAndParse(t, "x = 1 + 2\n")
	var buf bytes.Buffer
	if err := ASTTree(&buf, root); err != nil {
		t.Fatalf("ASTTree error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty tree output")
	}
	if !strings.Contains(buf.String(), "BinaryExpression") {
		t.Errorf("expected a BinaryExpression node, got:\n%s", buf.String())
	}
}

func TestDiagnosticsWritesHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sg", []byte("x = @@\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 4, End: 5}, "unexpected token"))

	var buf bytes.Buffer
	if err := Diagnostics(&buf, bag, fs, DiagOpts{Color: false, Context: 2}); err != nil {
		t.Fatalf("Diagnostics error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "ERROR") {
		t.Errorf("expected ERROR severity in output, got:\n%s", out)
	}
	if !strings.Contains(out, "unexpected token") {
		t.Errorf("expected the message in output, got:\n%s", out)
	}
	if !strings.Contains(out, "\n      ^\n") {
		t.Errorf("expected a caret under column 5, got:\n%s", out)
	}
}
