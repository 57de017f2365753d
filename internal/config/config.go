// Package config loads go-htoprc's own preferences from a TOML file.
//
// The file is optional. A missing file yields Default(); keys missing from
// an existing file keep their default value.
//
//	log_level = "info"
//	log_format = "text"
//
//	[format]
//	only_non_defaults = false
//	include_unknown = true
//	include_version = true
//
//	[output]
//	format = "table"
//
// GO_HTOPRC_LOG_LEVEL, GO_HTOPRC_LOG_FORMAT and GO_HTOPRC_OUTPUT_FORMAT
// override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/penwyp/go-htoprc/htoprc"
	"github.com/penwyp/go-htoprc/internal/util"
)

// DefaultPath is where preferences are read from when no path is given.
const DefaultPath = "~/.go-htoprc/config.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GO_HTOPRC_"

// Output formats accepted by the parse command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputCSV   = "csv"
	OutputYAML  = "yaml"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds user preferences.
type Config struct {
	LogLevel  string       `toml:"log_level" env:"LOG_LEVEL"`
	LogFormat string       `toml:"log_format" env:"LOG_FORMAT"`
	Format    FormatConfig `toml:"format"`
	Output    OutputConfig `toml:"output" envPrefix:"OUTPUT_"`
}

// FormatConfig is the [format] table: defaults for how htoprc files are
// written back.
type FormatConfig struct {
	OnlyNonDefaults bool `toml:"only_non_defaults"`
	IncludeUnknown  bool `toml:"include_unknown"`
	IncludeVersion  bool `toml:"include_version"`
}

// SerializeOptions converts the preferences into codec options.
func (f FormatConfig) SerializeOptions() htoprc.SerializeOptions {
	return htoprc.SerializeOptions{
		IncludeUnknown:  f.IncludeUnknown,
		OnlyNonDefaults: f.OnlyNonDefaults,
		IncludeVersion:  f.IncludeVersion,
	}
}

func formatConfigFrom(opts htoprc.SerializeOptions) FormatConfig {
	return FormatConfig{
		OnlyNonDefaults: opts.OnlyNonDefaults,
		IncludeUnknown:  opts.IncludeUnknown,
		IncludeVersion:  opts.IncludeVersion,
	}
}

// OutputConfig selects how parsed files are printed.
type OutputConfig struct {
	Format string `toml:"format" env:"FORMAT"`
}

// Default returns the preferences used when no file exists.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: LogFormatText,
		Format:    formatConfigFrom(htoprc.DefaultSerializeOptions()),
		Output:    OutputConfig{Format: OutputTable},
	}
}

// Load reads preferences from path, or DefaultPath when path is blank, then
// applies environment overrides.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	resolved, err := util.ExpandPath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateOutputFormat checks an output format name.
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputTable, OutputJSON, OutputCSV, OutputYAML:
		return nil
	}
	return fmt.Errorf("invalid output format %q: must be one of table, json, csv, yaml", format)
}

func (c *Config) validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = OutputTable
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = "info"
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "":
		c.LogFormat = LogFormatText
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	return ValidateOutputFormat(c.Output.Format)
}
