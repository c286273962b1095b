// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directory holding one file, filters events down to that file,
// and debounces bursts (editors often trigger several writes per save).
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before onChange fires.
const DefaultDebounce = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
	pending  *time.Timer
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a new file watcher that waits DefaultDebounce after the
// last event of a burst before firing.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:       fw,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. The parent directory is watched rather than
// the file itself so rename-over-original saves keep being seen.
// onChange is called with the absolute path of the file.
func (w *Watcher) Watch(path string, onChange func(filePath string)) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(target)); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					w.schedule(target, onChange)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed; fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// schedule (re)arms the debounce timer for target.
func (w *Watcher) schedule(target string, onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, func() {
		// mu is held across onChange so Stop waits for a callback in flight.
		w.mu.Lock()
		defer w.mu.Unlock()
		if !w.stopped {
			onChange(target)
		}
	})
}

// Stop ends monitoring and releases all resources. It waits for a running
// onChange to return, so onChange must not call Stop.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	if w.pending != nil {
		w.pending.Stop()
	}
	close(w.done)
	return w.fw.Close()
}
