// Package watch re-runs a sync whenever a snapshot file changes on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Logger receives watcher progress messages. A nil Logger is silent.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Watcher watches a single snapshot file and invokes a callback after
// changes settle. Rapid consecutive writes are debounced so one editor
// save triggers one sync, not several.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func(path string)
	logger   Logger

	timerMu sync.Mutex
	timer   *time.Timer

	mu       sync.Mutex
	stopChan chan struct{}
	stopped  bool
}

// New creates a watcher for the given file. The callback runs on the
// watcher's goroutine after each debounced change. A zero debounce
// defaults to 200ms.
func New(path string, debounce time.Duration, onChange func(path string), logger Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	return &Watcher{
		watcher:  fsw,
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		stopChan: make(chan struct{}),
	}, nil
}

// Start begins watching and returns immediately; events are handled on a
// background goroutine. The parent directory is watched rather than the
// file itself so atomic saves (write to temp, rename over) are seen too.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.logInfo("Watching %s for changes", w.path)
	go w.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logError("File watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	w.scheduleSync()
}

// scheduleSync (re)starts the debounce timer; only the last event inside
// the debounce window fires the callback.
func (w *Watcher) scheduleSync() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.logInfo("Snapshot changed, re-syncing...")
		w.onChange(w.path)
	})
}

func (w *Watcher) logInfo(f string, a ...any) {
	if w.logger != nil {
		w.logger.Infof(f, a...)
	}
}

func (w *Watcher) logError(f string, a ...any) {
	if w.logger != nil {
		w.logger.Errorf(f, a...)
	}
}
