package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is returned when a path argument is blank
var ErrEmptyPath = errors.New("path is empty")

// ExpandPath expands a leading "~" and returns an absolute path
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", ErrEmptyPath
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// DefaultHtoprcPath returns where htop keeps its configuration:
// $XDG_CONFIG_HOME/htop/htoprc, or ~/.config/htop/htoprc.
func DefaultHtoprcPath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return ExpandPath(filepath.Join(xdg, "htop", "htoprc"))
	}
	return ExpandPath("~/.config/htop/htoprc")
}
