package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a/b"), got)

	got, err = ExpandPath("/etc/htoprc")
	require.NoError(t, err)
	assert.Equal(t, "/etc/htoprc", got)

	_, err = ExpandPath("   ")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestDefaultHtoprcPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Setenv("XDG_CONFIG_HOME", "")
	got, err := DefaultHtoprcPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "htop", "htoprc"), got)

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	got, err = DefaultHtoprcPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "htop", "htoprc"), got)
}
