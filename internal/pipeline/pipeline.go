// Package pipeline scans and parses every *.sg file under a directory
// concurrently, bounded by a worker limit, reporting per-file results in
// deterministic path order regardless of completion order.
package pipeline

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"surge/internal/ast"
	"surge/internal/cache"
	"surge/internal/diag"
	"surge/internal/driver"
	"surge/internal/source"
	"surge/internal/token"
	"surge/internal/trace"
)

// Stage identifies which phase of a single file's pipeline an Event
// reports on.
type Stage uint8

const (
	StageQueued Stage = iota
	StageScanning
	StageParsing
	StageDone
	StageError
)

// Event is one progress notification for a single file, consumed by a
// terminal UI or discarded in headless mode.
type Event struct {
	Path  string
	Stage Stage
	Err   error
}

// FileResult is one file's completed scan+parse. FileSet is nil for a cache
// hit, since spans on a cached AST are relative to a file that was never
// reopened this run.
type FileResult struct {
	Path    string
	Tokens  []token.Token
	Root    *ast.Block
	Bag     *diag.Bag
	FileSet *source.FileSet
	Err     error
	Cached  bool
}

// Options configures a Run.
type Options struct {
	Jobs           int
	MaxDiagnostics int
	Cache          *cache.Cache // nil disables the parse cache
	Events         chan<- Event // nil disables progress events
}

// Discover walks root and returns every "*.sg" file under it, sorted by
// path.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && filepath.Ext(path) == ".sg" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Run scans and parses every entry in files concurrently, using at most
// opts.Jobs goroutines (a non-positive value means unbounded). Results are
// returned in the order of files (sorted by path when files comes from
// Discover), regardless of completion order.
func Run(ctx context.Context, files []string, opts Options) ([]FileResult, error) {
	results := make([]FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = runOne(ctx, path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if opts.Events != nil {
		close(opts.Events)
	}
	return results, nil
}

func emit(opts Options, path string, stage Stage, err error) {
	if opts.Events == nil {
		return
	}
	opts.Events <- Event{Path: path, Stage: stage, Err: err}
}

// runOne wraps one file's whole scan+parse pipeline in a ScopeModule span,
// so a directory-wide trace shows per-file boundaries one level above the
// scan/parse ScopePass spans driver.Parse opens underneath it.
func runOne(ctx context.Context, path string, opts Options) FileResult {
	tracer := trace.FromContext(ctx)
	moduleSpan := trace.Begin(tracer, trace.ScopeModule, "file", trace.CurrentSpan(ctx).SpanID)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: moduleSpan.ID()})
	defer moduleSpan.WithExtra("file", path).End("")

	emit(opts, path, StageScanning, nil)

	if opts.Cache != nil {
		if hash, ok := hashFile(path); ok {
			if toks, root, ok := opts.Cache.Lookup(hash); ok {
				emit(opts, path, StageDone, nil)
				return FileResult{Path: path, Tokens: toks, Root: root, Cached: true}
			}
		}
	}

	emit(opts, path, StageParsing, nil)
	res, err := driver.Parse(ctx, path, opts.MaxDiagnostics)
	if res == nil {
		emit(opts, path, StageError, err)
		return FileResult{Path: path, Err: err}
	}
	if err != nil {
		emit(opts, path, StageError, err)
		return FileResult{Path: path, Bag: res.Bag, FileSet: res.FileSet, Err: err}
	}

	if opts.Cache != nil {
		file := res.FileSet.Get(res.FileID)
		_ = opts.Cache.Store(file.Hash, nil, res.Root)
	}

	emit(opts, path, StageDone, nil)
	return FileResult{Path: path, Root: res.Root, Bag: res.Bag, FileSet: res.FileSet}
}

func hashFile(path string) ([32]byte, bool) {
	// #nosec G304 -- path comes from a caller-provided directory walk
	content, err := os.ReadFile(path)
	if err != nil {
		return [32]byte{}, false
	}
	return sha256.Sum256(content), true
}
