// SPDX-License-Identifier: MIT

// Package config resolves lvhom command-line settings.
//
// Settings are layered, later layers winning:
//
//  1. Default()
//  2. an optional TOML file (lvhom.toml)
//  3. LVHOM_* environment variables
//
// Command-line flags are applied on top by package cli.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EnvConfigPath names the config file when --config is not given.
const EnvConfigPath = "LVHOM_CONFIG"

var (
	// ErrUnknownKey is returned when the TOML file sets a key Config does not have.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrFormat is returned for an output format other than text, json or yaml.
	ErrFormat = errors.New("config: unknown output format")
)

// Config holds the settings shared by every lvhom subcommand.
type Config struct {
	Format  string `toml:"format"  env:"LVHOM_FORMAT"`
	Cycles  bool   `toml:"cycles"  env:"LVHOM_CYCLES"`
	NoElim  bool   `toml:"no_elim" env:"LVHOM_NO_ELIM"`
	Verify  bool   `toml:"verify"  env:"LVHOM_VERIFY"`
	Verbose bool   `toml:"verbose" env:"LVHOM_VERBOSE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Format: FormatText}
}

// Load layers the TOML file at path (skipped when path is empty) and the
// environment over Default, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseEnv overlays LVHOM_* variables on target. Unset variables leave the
// corresponding fields untouched.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)

		return fmt.Errorf("read config %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	return nil
}

// Validate reports settings that no subcommand can act on.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrFormat, c.Format)
}
