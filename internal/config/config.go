// Package config layers gralg settings: defaults < TOML file < GRALG_* env < flags.
package config

import (
	"os"
	"strings"

	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	// DefaultFile is read when present and no other file is named.
	DefaultFile = "gralg.toml"

	envPrefix = "GRALG_"
)

// Config holds all CLI settings.
type Config struct {
	Workspace   string   `koanf:"workspace"`
	Eval        []string `koanf:"eval"`
	Watch       bool     `koanf:"watch"`
	Serve       bool     `koanf:"serve"`
	Addr        string   `koanf:"addr"`
	Placeholder string   `koanf:"placeholder"`
	Verbose     int      `koanf:"verbose"`
}

// Defaults returns the lowest configuration layer.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"workspace":   "",
		"eval":        []string{},
		"watch":       false,
		"serve":       false,
		"addr":        ":8080",
		"placeholder": algebra.DefaultPlaceholder,
		"verbose":     0,
	}
}

// RegisterFlags adds the flags Load understands to f.
func RegisterFlags(f *pflag.FlagSet) {
	f.String("config", "", "TOML config file (default "+DefaultFile+" when present)")
	f.StringP("workspace", "w", "", "YAML workspace of named graphs")
	f.StringSliceP("eval", "e", nil, "statement to evaluate (repeatable)")
	f.Bool("watch", false, "reload the workspace when its file changes")
	f.Bool("serve", false, "serve the HTTP API")
	f.String("addr", ":8080", "HTTP listen address")
	f.String("placeholder", algebra.DefaultPlaceholder, "token rendered for absent edges")
	f.CountP("verbose", "v", "increase log verbosity")
}

// Load resolves the configuration. path names the TOML file; when empty the
// value of the "config" flag is used, then DefaultFile if it exists.
// Priority: Flags > Env > Config File > Defaults.
func Load(f *pflag.FlagSet, path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(Defaults()), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	if path == "" && f != nil {
		path, _ = f.GetString("config")
	}
	switch {
	case path != "":
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load config file %s", path)
		}
	default:
		if _, err := os.Stat(DefaultFile); err == nil {
			if err := k.Load(file.Provider(DefaultFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "load config file %s", DefaultFile)
			}
		}
	}

	// GRALG_ADDR=:9090 → addr
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env vars")
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, errors.Wrap(err, "load flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	return &cfg, nil
}

// mapProvider serves a static map as a koanf layer.
type mapProvider map[string]interface{}

func (p mapProvider) Read() (map[string]interface{}, error) { return p, nil }

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider has no byte form")
}
