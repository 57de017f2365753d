package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/penwyp/go-htoprc/htoprc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Format.IncludeUnknown)
	assert.True(t, cfg.Format.IncludeVersion)
	assert.False(t, cfg.Format.OnlyNonDefaults)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[format]
only_non_defaults = true

[output]
format = "JSON"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Format.OnlyNonDefaults)
	assert.True(t, cfg.Format.IncludeUnknown)
	assert.True(t, cfg.Format.IncludeVersion)
	assert.Equal(t, OutputJSON, cfg.Output.Format)
}

func TestLoadRejectsBadOutputFormat(t *testing.T) {
	path := writeConfig(t, "[output]\nformat = \"xml\"\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestLoadInvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, "log_level = [")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadDefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".go-htoprc")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("log_level = \"warn\"\n"), 0600))

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestFormatConfigSerializeOptions(t *testing.T) {
	assert.Equal(t, htoprc.DefaultSerializeOptions(), Default().Format.SerializeOptions())

	f := FormatConfig{OnlyNonDefaults: true, IncludeUnknown: false, IncludeVersion: true}
	assert.Equal(t, htoprc.SerializeOptions{OnlyNonDefaults: true, IncludeVersion: true}, f.SerializeOptions())
}

func TestLoadLogFormat(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log_format = \"JSON\"\n"))
	require.NoError(t, err)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)

	t.Setenv("GO_HTOPRC_LOG_FORMAT", "text")
	cfg, err = Load(writeConfig(t, "log_format = \"json\"\n"))
	require.NoError(t, err)
	assert.Equal(t, LogFormatText, cfg.LogFormat)

	t.Setenv("GO_HTOPRC_LOG_FORMAT", "xml")
	_, err = Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, "invalid log format")
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "log_level = \"debug\"\n[output]\nformat = \"csv\"\n")
	t.Setenv("GO_HTOPRC_LOG_LEVEL", "error")
	t.Setenv("GO_HTOPRC_OUTPUT_FORMAT", "YAML")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, OutputYAML, cfg.Output.Format)
}

func TestLoadEnvironmentWithoutFile(t *testing.T) {
	t.Setenv("GO_HTOPRC_OUTPUT_FORMAT", "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output.Format)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvironmentRejectsBadFormat(t *testing.T) {
	t.Setenv("GO_HTOPRC_OUTPUT_FORMAT", "xml")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
}
