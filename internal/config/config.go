// Package config loads CLI configuration.
//
// Sources are applied in priority order:
//  1. Defaults
//  2. TOML file (--config, or tada.toml in the current directory)
//  3. Environment variables (TADA_*)
//  4. Root CLI flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// DefaultFileName is looked up in the working directory when --config is unset.
const DefaultFileName = "tada.toml"

// Config holds everything the CLI reads from outside the argument list.
type Config struct {
	Label     string `toml:"label"`
	Theme     string `toml:"theme"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Group     bool   `toml:"group"`

	// File is the config file that was loaded, empty if none.
	File string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Label:     "Todos",
		Theme:     "classic",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// AddFlags registers the root flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a TOML config file (default: ./"+DefaultFileName+" if present)")
	fs.String("theme", "", "color theme: classic, neon, mono")
	fs.String("label", "", "list label used when none is given")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.String("log-format", "", "log format: text, logfmt, json")
	fs.Bool("group", false, "group output by pending/done")
}

// Load builds a Config from defaults, file, env and the already parsed fs.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := Default()

	path, explicit := "", false
	if fs != nil {
		if v, _ := fs.GetString("config"); v != "" {
			path, explicit = v, true
		}
	}
	if path == "" {
		if _, err := os.Stat(DefaultFileName); err == nil {
			path = DefaultFileName
		}
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			if !explicit && errors.Is(err, os.ErrNotExist) {
				path = ""
			} else {
				return nil, fmt.Errorf("config file %s: %w", path, err)
			}
		}
		cfg.File = path
	}

	loadEnv(cfg)

	if fs != nil {
		applyFlags(cfg, fs)
	}
	cfg.Theme = NormalizeTheme(cfg.Theme)
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("TADA_LABEL"); v != "" {
		cfg.Label = v
	}
	if v := os.Getenv("TADA_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TADA_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// applyFlags copies only flags the user actually set.
func applyFlags(cfg *Config, fs *pflag.FlagSet) {
	setString := func(name string, dst *string) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	setString("label", &cfg.Label)
	setString("theme", &cfg.Theme)
	setString("log-level", &cfg.LogLevel)
	setString("log-format", &cfg.LogFormat)
	if f := fs.Lookup("group"); f != nil && f.Changed {
		cfg.Group, _ = fs.GetBool("group")
	}
}

// NormalizeTheme lowercases name and falls back to classic for unknown themes.
func NormalizeTheme(name string) string {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "neon", "mono":
		return n
	default:
		return "classic"
	}
}
