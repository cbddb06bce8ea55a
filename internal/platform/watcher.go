package platform

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch behavior constants
const (
	// DefaultWatchDebounce coalesces bursts of write events into one reload
	DefaultWatchDebounce = 250 * time.Millisecond
)

// Watcher observes a single file for changes and fires a callback after the
// writes settle. The parent directory is watched so atomic replacement
// (write to temp, rename over target) is seen as well.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string // absolute path of the watched file
	debounce time.Duration
	onChange func(path string)

	mu        sync.Mutex
	timer     *time.Timer
	closeOnce sync.Once
	done      chan struct{}
}

// NewWatcher starts watching the file at path. The callback runs on the
// watcher goroutine; callers are responsible for hopping to the UI thread.
func NewWatcher(path string, onChange func(path string)) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     absPath,
		debounce: DefaultWatchDebounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	go w.loop()
	return w, nil
}

// SetDebounce overrides the settle window; useful in tests
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching and releases the underlying fsnotify watcher
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
	return err
}

// loop consumes fsnotify events until the watcher is closed
func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.matches(event) {
				continue
			}
			w.scheduleCallback()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error for %s: %v", w.path, err)
		}
	}
}

// matches reports whether an event concerns the watched file and represents
// a content change
func (w *Watcher) matches(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create)
}

// scheduleCallback (re)arms the debounce timer
func (w *Watcher) scheduleCallback() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		if w.onChange != nil {
			w.onChange(w.path)
		}
	})
}
