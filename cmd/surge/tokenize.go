package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surge/internal/driver"
	"surge/internal/render"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.sg",
	Short: "Tokenize a surge source file",
	Long:  `tokenize breaks a surge source file down into its constituent tokens.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cleanup, err := setupTracing(cmd, "tokenize", filePath)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer cleanup()

	result, err := driver.Tokenize(ctx, filePath, cfg.MaxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := render.DiagOpts{Color: useColor(cfg, os.Stderr), Context: 2}
		if err := render.Diagnostics(os.Stderr, result.Bag, result.FileSet, opts); err != nil {
			return err
		}
	}

	switch format {
	case "pretty":
		return render.TokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return render.TokensJSON(os.Stdout, result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
