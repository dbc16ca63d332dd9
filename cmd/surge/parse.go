package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"surge/internal/cache"
	"surge/internal/config"
	"surge/internal/driver"
	"surge/internal/pipeline"
	"surge/internal/render"
	"surge/internal/ui"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.sg|directory>",
	Short: "Parse a surge source file or directory and print its AST",
	Long:  `parse builds the AST for a surge source file, or every "*.sg" file in a directory, and renders it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory parsing (0=GOMAXPROCS)")
	parseCmd.Flags().Bool("no-progress", false, "disable the live progress UI for directory parsing")
	parseCmd.Flags().Bool("no-cache", false, "disable the on-disk parse cache for directory parsing")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cleanup, err := setupTracing(cmd, "parse", path)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer cleanup()

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		return runParseFile(ctx, cmd, path, format, cfg)
	}
	return runParseDir(ctx, cmd, path, format, cfg)
}

func runParseFile(ctx context.Context, cmd *cobra.Command, path, format string, cfg config.Config) error {
	result, err := driver.Parse(ctx, path, cfg.MaxDiagnostics)
	if err != nil && result == nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := render.DiagOpts{Color: useColor(cfg, os.Stderr), Context: 2}
		if rerr := render.Diagnostics(os.Stderr, result.Bag, result.FileSet, opts); rerr != nil {
			return rerr
		}
	}
	if result.Root == nil {
		return nil
	}

	switch format {
	case "pretty":
		return render.ASTOneLine(os.Stdout, path, result.Root)
	case "json":
		return render.ASTJSON(os.Stdout, result.Root)
	case "tree":
		return render.ASTTree(os.Stdout, result.Root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runParseDir(ctx context.Context, cmd *cobra.Command, root, format string, cfg config.Config) error {
	files, err := pipeline.Discover(root)
	if err != nil {
		return fmt.Errorf("failed to discover source files: %w", err)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	var pc *cache.Cache
	if !noCache {
		pc, err = cache.New(cfg.CacheDir)
		if err != nil {
			return fmt.Errorf("failed to open parse cache: %w", err)
		}
	}

	noProgress, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return err
	}

	opts := pipeline.Options{Jobs: jobs, MaxDiagnostics: cfg.MaxDiagnostics, Cache: pc}

	var results []pipeline.FileResult
	if !noProgress && !cfg.Quiet && isTerminal(os.Stdout) && len(files) > 0 {
		events := make(chan pipeline.Event, len(files))
		opts.Events = events

		resultsCh := make(chan []pipeline.FileResult, 1)
		errCh := make(chan error, 1)
		go func() {
			r, err := pipeline.Run(ctx, files, opts)
			resultsCh <- r
			errCh <- err
		}()

		model := ui.NewProgressModel("parsing "+root, files, events)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("progress UI failed: %w", err)
		}
		results, err = <-resultsCh, <-errCh
	} else {
		results, err = pipeline.Run(ctx, files, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	diagOpts := render.DiagOpts{Color: useColor(cfg, os.Stderr), Context: 2}
	for _, r := range results {
		if r.Bag != nil && r.FileSet != nil && (r.Bag.HasErrors() || r.Bag.HasWarnings()) {
			if err := render.Diagnostics(os.Stderr, r.Bag, r.FileSet, diagOpts); err != nil {
				return err
			}
		}
	}

	for idx, r := range results {
		if !cfg.Quiet {
			if _, err := fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path); err != nil {
				return err
			}
		}
		if r.Root != nil {
			if err := renderResultAST(r, format); err != nil {
				return err
			}
		}
		if !cfg.Quiet && idx < len(results)-1 {
			if _, err := fmt.Fprintln(os.Stdout); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderResultAST(r pipeline.FileResult, format string) error {
	switch format {
	case "pretty":
		return render.ASTOneLine(os.Stdout, r.Path, r.Root)
	case "json":
		return render.ASTJSON(os.Stdout, r.Root)
	case "tree":
		return render.ASTTree(os.Stdout, r.Root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
