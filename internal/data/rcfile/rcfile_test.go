package rcfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/penwyp/go-htoprc/htoprc"
	"github.com/penwyp/go-htoprc/internal/testing/fixtures"
	"github.com/penwyp/go-htoprc/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htoprc")
	data := []byte("color_scheme=6\nfuture_option=1\ndelay=oops\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	file, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, path, file.Path)
	assert.Equal(t, util.FingerprintBytes(data), file.Fingerprint)
	assert.Equal(t, 6, file.Config.ColorScheme)
	assert.Equal(t, 15, file.Config.Delay)
	assert.Len(t, file.Diagnostics, 1)
	assert.Equal(t, htoprc.Options{{Key: "future_option", Value: "1"}}, file.Config.UnknownOptions)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(dir)
	assert.ErrorIs(t, err, ErrNotRegularFile)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htop", "htoprc")
	cfg := htoprc.DefaultConfig()
	cfg.ColorScheme = 3
	cfg.SetUnknown("future_option", "x")

	require.NoError(t, Save(path, cfg, htoprc.SerializeOptions{OnlyNonDefaults: true, IncludeUnknown: true}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "color_scheme=3\nfuture_option=x\n", string(data))

	file, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Equal(file.Config))
}

func TestSaveKeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htoprc")
	require.NoError(t, os.WriteFile(path, []byte("delay=10\n"), 0600))

	require.NoError(t, Save(path, htoprc.DefaultConfig(), htoprc.DefaultSerializeOptions()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadHtop3Defaults(t *testing.T) {
	gen := fixtures.NewRCGenerator(t.TempDir())
	path, err := gen.GenerateHtop3Defaults("htoprc")
	require.NoError(t, err)

	file, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, file.Diagnostics)
	assert.Empty(t, htoprc.Diff(file.Config))
	assert.Empty(t, file.Config.UnknownOptions)
	assert.Equal(t, htoprc.Some("3.3.0"), file.Config.HtopVersion)
	assert.Equal(t, htoprc.Some(3), file.Config.ConfigReaderMinVersion)

	require.Len(t, file.Config.Screens, 2)
	main := file.Config.Screens[0]
	assert.Equal(t, "Main", main.Name)
	assert.Len(t, main.Columns, 12)
	assert.Equal(t, htoprc.Some("PERCENT_CPU"), main.SortKey)
	assert.Equal(t, htoprc.Some(htoprc.Descending), main.SortDirection)
	assert.Equal(t, htoprc.Some(false), main.TreeView)
	assert.Equal(t, []string{"tree_sort_key", "tree_view_always_by_pid", "tree_sort_direction", "all_branches_collapsed"},
		main.UnknownOptions.Keys())
	assert.Equal(t, "I/O", file.Config.Screens[1].Name)

	reparsed := htoprc.ParseConfig(htoprc.Marshal(file.Config))
	assert.True(t, file.Config.Equal(reparsed))
}

func TestLoadLegacy(t *testing.T) {
	gen := fixtures.NewRCGenerator(t.TempDir())
	path, err := gen.GenerateLegacy("htoprc")
	require.NoError(t, err)

	file, err := Load(path)
	require.NoError(t, err)

	cfg := file.Config
	assert.False(t, cfg.HtopVersion.IsSet())
	assert.Empty(t, cfg.Screens)
	assert.Equal(t, htoprc.Ascending, cfg.SortDirection)
	assert.Equal(t, []string{
		"hide_threads", "cpu_count_from_zero",
		"left_meters", "left_meter_modes", "right_meters", "right_meter_modes",
	}, cfg.UnknownOptions.Keys())
	assert.Equal(t, []htoprc.Change{{Key: "sort_direction", Value: "1", Default: "-1"}}, htoprc.Diff(cfg))
}
