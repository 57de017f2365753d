// Package rcfile reads and writes htoprc files on disk.
package rcfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/penwyp/go-htoprc/htoprc"
	"github.com/penwyp/go-htoprc/internal/util"
)

// maxFileSize bounds what Load will read. Real htoprc files are a few KB.
const maxFileSize = 1 << 20

var (
	ErrNotRegularFile = errors.New("not a regular file")
	ErrTooLarge       = errors.New("file too large for an htoprc")
)

// File is a parsed htoprc file.
type File struct {
	Path        string
	Fingerprint string
	htoprc.ParseResult
}

// Load reads and parses the htoprc at path. Parse diagnostics are logged at
// debug level and returned in File.Diagnostics.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat htoprc: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("%s: %w (%d bytes)", path, ErrTooLarge, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read htoprc: %w", err)
	}

	result := htoprc.Parse(string(data))
	util.LogDebugf("Parsed %s: %d screens, %d unknown options, %d diagnostics",
		path, len(result.Config.Screens), len(result.Config.UnknownOptions), len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		util.LogDebug("htoprc diagnostic", util.Field{Key: "path", Value: path}, util.Field{Key: "detail", Value: d.String()})
	}

	return &File{
		Path:        path,
		Fingerprint: util.FingerprintBytes(data),
		ParseResult: result,
	}, nil
}

// Save serializes cfg and atomically replaces path with the result. A
// trailing newline is appended, as htop does. Existing permissions are kept.
func Save(path string, cfg htoprc.Config, opts htoprc.SerializeOptions) error {
	text := htoprc.Serialize(cfg, opts)
	if text != "" {
		text += "\n"
	}
	return WriteText(path, text)
}

// WriteText atomically replaces path with text.
func WriteText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create htoprc dir: %w", err)
	}
	if err := renameio.WriteFile(path, []byte(text), 0644, renameio.WithExistingPermissions()); err != nil {
		return fmt.Errorf("write htoprc: %w", err)
	}
	util.LogInfo("Wrote htoprc", util.Field{Key: "path", Value: path}, util.Field{Key: "bytes", Value: len(text)})
	return nil
}
