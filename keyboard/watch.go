package keyboard

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// LayoutWatcher reloads a layout file when it changes on disk and swaps it
// into a State. Editors typically rename over the watched file, so the
// parent directory is watched rather than the file itself.
type LayoutWatcher struct {
	path    string
	state   *State
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	done    chan struct{}
}

// WatchLayout loads the layout at path into state and starts watching for
// changes. Close releases the watcher.
func WatchLayout(path string, state *State, logger *slog.Logger) (*LayoutWatcher, error) {
	layout, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	state.SetLayout(layout)
	logger.Info("keyboard layout loaded", "path", path, "name", layout.Name)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &LayoutWatcher{
		path:    path,
		state:   state,
		watcher: watcher,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *LayoutWatcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			layout, err := LoadFile(w.path)
			if err != nil {
				w.logger.Warn("keyboard layout reload failed, keeping current", "path", w.path, "error", err)
				continue
			}
			w.state.SetLayout(layout)
			w.logger.Info("keyboard layout reloaded", "path", w.path, "name", layout.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("layout watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *LayoutWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
