package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// waitFor drains events until match accepts one. A single write can surface
// as several events, the first of which may see a truncated file.
func waitFor(t *testing.T, fw *FileWatcher, match func(Event) bool) Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-fw.Events():
			require.True(t, ok, "events channel closed")
			if ev.Err == nil && match(ev) {
				return ev
			}
		case <-timeout:
			t.Fatal("timed out waiting for watch event")
			return Event{}
		}
	}
}

func TestFileWatcherReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htoprc")
	require.NoError(t, os.WriteFile(path, []byte("color_scheme=1\n"), 0644))

	fw, err := NewFileWatcher(path)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, os.WriteFile(path, []byte("color_scheme=4\n"), 0644))

	ev := waitFor(t, fw, func(ev Event) bool { return ev.File.Config.ColorScheme == 4 })
	assert.Equal(t, 4, ev.File.Config.ColorScheme)
	assert.NotEmpty(t, ev.File.Fingerprint)
}

func TestFileWatcherPicksUpReplacedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "htoprc")
	require.NoError(t, os.WriteFile(path, []byte("delay=15\n"), 0644))

	fw, err := NewFileWatcher(path)
	require.NoError(t, err)
	defer fw.Close()

	tmp := filepath.Join(dir, "htoprc.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("delay=30\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	ev := waitFor(t, fw, func(ev Event) bool { return ev.File.Config.Delay == 30 })
	assert.Equal(t, path, ev.File.Path)
}

func TestFileWatcherCloseClosesEvents(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "htoprc")

	fw, err := NewFileWatcher(path)
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	select {
	case _, ok := <-fw.Events():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events channel not closed")
	}
}
