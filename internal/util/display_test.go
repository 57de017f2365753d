package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadString(t *testing.T) {
	assert.Equal(t, "ab  ", PadString("ab", 4, true))
	assert.Equal(t, "  ab", PadString("ab", 4, false))
	assert.Equal(t, "abcdef", PadString("abcdef", 4, true))
	assert.Equal(t, "日本 ", PadString("日本", 5, true))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "PID US…", Truncate("PID USER PRIORITY", 7))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "x", Colorize("x", ColorGreen, false))
	assert.Equal(t, ColorGreen+"x"+ColorReset, Colorize("x", ColorGreen, true))
}

func TestFingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htoprc")
	data := []byte("color_scheme=6\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	got, err := CalculateFileFingerprint(path)
	require.NoError(t, err)
	assert.Equal(t, FingerprintBytes(data), got)
	assert.Len(t, got, 8)

	_, err = CalculateFileFingerprint(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
