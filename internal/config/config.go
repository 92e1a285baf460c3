// Package config loads settings for the fractions command from defaults, a
// YAML file, FRACTIONS_ environment variables, and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Default configuration values.
const (
	DefaultOutput  = OutputText
	DefaultWorkers = 4
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "FRACTIONS_"

// Config holds all configuration options.
type Config struct {
	// Output is the result format, OutputText or OutputJSON.
	Output string `koanf:"output"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// Workers limits how many batch expressions are evaluated at once.
	Workers int `koanf:"workers"`
	// History is the REPL history file. Empty disables history.
	History string `koanf:"history"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// keys is the set of configuration keys. Flags with other names are not
// configuration.
var keys = map[string]bool{
	"output":  true,
	"verbose": true,
	"workers": true,
	"history": true,
}

// findConfigFile finds the config file to use.
// Priority: explicit path > fractions.yaml > fractions.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"fractions.yaml", "fractions.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set override other sources.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":  DefaultOutput,
		"verbose": false,
		"workers": DefaultWorkers,
		"history": "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: FRACTIONS_WORKERS -> workers
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || !keys[f.Name] {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every option has a usable value.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q (want %s or %s)", c.Output, OutputText, OutputJSON)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
