package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the optional per-directory defaults file qakc looks for
// in the working directory.
const FileName = ".qakcrc.toml"

// Config holds CLI defaults loaded from a .qakcrc.toml file. Flags
// given on the command line always win over these.
type Config struct {
	Output Output `toml:"output"`
}

// Output configures how diagnostics and dumps are rendered.
type Output struct {
	// Color is "auto", "on" or "off".
	Color string `toml:"color"`
	// MaxDiagnostics caps how many diagnostics one compilation retains;
	// 0 keeps the built-in default.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// Default returns the configuration used when no defaults file exists.
func Default() Config {
	return Config{Output: Output{Color: "auto"}}
}

// Load reads the defaults file from dir, returning Default() and
// ok=false when the file doesn't exist. A file that exists but fails to
// parse or validate is an error, so a typo'd config is reported to the
// caller instead of being silently ignored.
func Load(dir string) (Config, bool, error) {
	path := filepath.Join(dir, FileName)
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Default(), false, nil
		}
		return Default(), false, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	switch cfg.Output.Color {
	case "":
		cfg.Output.Color = "auto"
	case "auto", "on", "off":
	default:
		return Default(), true, fmt.Errorf("%s: color must be auto, on or off", path)
	}
	if cfg.Output.MaxDiagnostics < 0 {
		return Default(), true, fmt.Errorf("%s: max_diagnostics must not be negative", path)
	}
	return cfg, true, nil
}
