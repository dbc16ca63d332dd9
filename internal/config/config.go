// Package config loads optional CLI defaults for cmd/surge from a
// .surgerc.toml file, so a project can pin its preferred color/quiet/
// max-diagnostics/cache-dir settings without repeating flags on every
// invocation.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds every setting a .surgerc.toml file may override. Load
// fills it from Default() and then the file; callers apply a flag value
// over a field only when that flag was explicitly given.
type Config struct {
	Color          string `toml:"color"`
	Quiet          bool   `toml:"quiet"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	CacheDir       string `toml:"cache_dir"`
}

// Default returns the hardcoded fallback used when no config file exists
// and no flag was given.
func Default() Config {
	return Config{
		Color:          "auto",
		Quiet:          false,
		MaxDiagnostics: 100,
		CacheDir:       ".surgecache",
	}
}

// Load reads path if it exists, merging its values over Default(). A
// missing file is not an error — it just means every field stays at its
// default. path == "" searches the current directory for ".surgerc.toml".
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = ".surgerc.toml"
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if _, err := toml.DecodeFile(abs, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
