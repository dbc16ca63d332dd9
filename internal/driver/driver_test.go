package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.sg")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	return path
}

func TestTokenizeReadsAndScansFile(t *testing.T) {
	path := writeTemp(t, "x = 1 + 2\n")
	res, err := Tokenize(context.Background(), path, 50)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(res.Tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	if res.Bag.HasErrors() {
		t.Errorf("expected no diagnostics, got %d", res.Bag.Len())
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "missing.sg"), 50)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseSucceeds(t *testing.T) {
	path := writeTemp(t, "x = 1 + 2\n")
	res, err := Parse(context.Background(), path, 50)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if res.Root == nil {
		t.Fatal("expected a non-nil root block")
	}
	if len(res.Root.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(res.Root.Statements))
	}
}

func TestParseReturnsBagOnSyntaxError(t *testing.T) {
	path := writeTemp(t, "if x\ny\n")
	res, err := Parse(context.Background(), path, 50)
	if err == nil {
		t.Fatal("expected a parse error for a missing indent")
	}
	if res == nil || res.Bag == nil {
		t.Fatal("expected a result with a diagnostic bag even on failure")
	}
}
