// Command surge is the command-line front end for the scanner and parser:
// tokenize or parse a single file or a whole directory, render diagnostics,
// and report build fingerprints.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"surge/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "surge",
	Short: "Surge language scanner and parser toolchain",
	Long:  `surge tokenizes and parses Surge source files and reports diagnostics.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "has no effect; no timing output is produced")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to collect (when given, replaces the config value)")
	rootCmd.PersistentFlags().String("config", "", "path to a .surgerc.toml config file")
	rootCmd.PersistentFlags().String("trace", "", `trace output path ("-" for stderr, "" disables tracing)`)
	rootCmd.PersistentFlags().String("trace-level", "phase", "trace verbosity: off|error|phase|detail|debug")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage: stream|ring|both")
	rootCmd.PersistentFlags().Int("trace-ring-size", 0, "ring buffer capacity for --trace-mode=ring|both (0=default)")
	rootCmd.PersistentFlags().Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval while tracing (0=disabled)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
