// Package watch reloads an htoprc file whenever it changes on disk.
package watch

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-htoprc/internal/data/rcfile"
	"github.com/penwyp/go-htoprc/internal/util"
)

// Event carries a freshly loaded file, or the error loading it.
type Event struct {
	File *rcfile.File
	Err  error
}

// FileWatcher watches a single htoprc. The parent directory is watched, not
// the file, because htop and editors replace the file by renaming over it.
type FileWatcher struct {
	watcher     *fsnotify.Watcher
	path        string
	events      chan Event
	done        chan struct{}
	fingerprint string
}

func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		path:    abs,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
	}
	if fp, err := util.CalculateFileFingerprint(abs); err == nil {
		fw.fingerprint = fp
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.reload()
			} else {
				util.LogDebugf("htoprc %s: %s", event.Op, fw.path)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogErrorf("File monitoring error: %v", err)
		}
	}
}

// reload parses the file unless its content is unchanged since the last load.
func (fw *FileWatcher) reload() {
	fp, err := util.CalculateFileFingerprint(fw.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fw.emit(Event{Err: err})
		}
		return
	}
	if fp == fw.fingerprint {
		return
	}

	file, err := rcfile.Load(fw.path)
	if err != nil {
		fw.emit(Event{Err: err})
		return
	}
	fw.fingerprint = file.Fingerprint
	fw.emit(Event{File: file})
}

func (fw *FileWatcher) emit(ev Event) {
	select {
	case fw.events <- ev:
	case <-fw.done:
	}
}

// Events delivers one Event per content change. It is closed after Close.
func (fw *FileWatcher) Events() <-chan Event {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	select {
	case <-fw.done:
		return nil
	default:
		close(fw.done)
	}
	return fw.watcher.Close()
}
