package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
}

func TestDiscoverFiltersByExtensionAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.sg"), "y = 2\n")
	writeFile(t, filepath.Join(dir, "a.sg"), "x = 1\n")
	writeFile(t, filepath.Join(dir, "readme.md"), "not surge source")
	writeFile(t, filepath.Join(dir, "nested", "c.sg"), "z = 3\n")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 .sg files, got %d: %v", len(files), files)
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] > files[i] {
			t.Fatalf("expected sorted paths, got %v", files)
		}
	}
}

func TestRunParsesEveryFileInOrder(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.sg")
	pathB := filepath.Join(dir, "b.sg")
	writeFile(t, pathA, "x = 1\n")
	writeFile(t, pathB, "y = 2 +\n")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	results, err := Run(context.Background(), files, Options{Jobs: 2, MaxDiagnostics: 50})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(results) != len(files) {
		t.Fatalf("expected %d results, got %d", len(files), len(results))
	}
	for i, r := range results {
		if r.Path != files[i] {
			t.Errorf("result %d: expected path %q, got %q", i, files[i], r.Path)
		}
	}

	var okResult, errResult *FileResult
	for i := range results {
		switch results[i].Path {
		case pathA:
			okResult = &results[i]
		case pathB:
			errResult = &results[i]
		}
	}
	if okResult == nil || okResult.Err != nil || okResult.Root == nil {
		t.Fatalf("expected a's parse to succeed, got %+v", okResult)
	}
	if errResult == nil || errResult.Err == nil {
		t.Fatalf("expected b's malformed source to produce a parse error, got %+v", errResult)
	}
}

func TestRunEmitsEventsForEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.sg"), "x = 1\n")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	events := make(chan Event, 16)
	_, err = Run(context.Background(), files, Options{Jobs: 1, MaxDiagnostics: 50, Events: events})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	sawDone := false
	for ev := range events {
		if ev.Stage == StageDone {
			sawDone = true
		}
	}
	if !sawDone {
		t.Error("expected at least one StageDone event")
	}
}
