package main

import (
	"os"

	"github.com/spf13/cobra"

	"surge/internal/config"
)

// resolveConfig loads the config file named by --config (or the default
// ".surgerc.toml" if unset) and applies any explicitly-given persistent
// flags over it, so flags always win over the file and the file always
// wins over hardcoded defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("quiet") {
		cfg.Quiet, _ = flags.GetBool("quiet")
	}
	if flags.Changed("max-diagnostics") {
		cfg.MaxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	return cfg, nil
}

func useColor(cfg config.Config, out *os.File) bool {
	switch cfg.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}
