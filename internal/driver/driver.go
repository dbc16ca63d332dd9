// Package driver wires the scanner and parser into single-file entry
// points for cmd/surge: load, scan, parse, collect
// diagnostics, and hand back a structured result rather than a raw AST.
package driver

import (
	"context"
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/source"
	"surge/internal/token"
	"surge/internal/trace"
)

// TokenizeResult holds a completed scan against a fresh single-file FileSet.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// ParseResult holds a completed parse against a fresh single-file FileSet.
type ParseResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Root    *ast.Block
	Bag     *diag.Bag
}

func loadFile(path string) (*source.FileSet, source.FileID, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return fs, fileID, nil
}

// Tokenize scans one file from disk and returns every token it produced,
// capping collected diagnostics at maxDiagnostics.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs, fileID, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "scan", trace.CurrentSpan(ctx).SpanID)
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	toks, scanErr := lexer.New(file, lexer.Options{Reporter: reporter}).Scan()
	sp.WithExtra("file", path).End("")
	if scanErr != nil && len(toks) == 0 {
		return nil, fmt.Errorf("scanning %s: %w", path, scanErr)
	}

	return &TokenizeResult{FileSet: fs, FileID: fileID, Tokens: toks, Bag: bag}, nil
}

// Parse scans and parses one file from disk.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs, fileID, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	parentID := trace.CurrentSpan(ctx).SpanID
	tracer := trace.FromContext(ctx)

	scanSpan := trace.Begin(tracer, trace.ScopePass, "scan", parentID)
	toks, scanErr := lexer.New(file, lexer.Options{Reporter: reporter}).Scan()
	scanSpan.WithExtra("file", path).End("")
	if scanErr != nil && len(toks) == 0 {
		return nil, fmt.Errorf("scanning %s: %w", path, scanErr)
	}

	parseSpan := trace.Begin(tracer, trace.ScopePass, "parse", parentID)
	root, parseErr := parser.New(fileID, toks, parser.Options{Reporter: reporter, MaxErrors: uint(maxDiagnostics)}).Parse()
	parseSpan.WithExtra("file", path).End("")
	if parseErr != nil {
		return &ParseResult{FileSet: fs, FileID: fileID, Root: nil, Bag: bag}, parseErr
	}

	return &ParseResult{FileSet: fs, FileID: fileID, Root: root, Bag: bag}, nil
}
