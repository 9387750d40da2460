// Package watch surfaces external modifications to files the editor
// has open: the frontend subscribes buffers' file paths and receives a
// change event when another program writes them, so it can warn before
// an unwitting save clobbers the newer content.
package watch

import (
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Change reports one externally modified path.
type Change struct {
	Path    string
	Removed bool
}

// Watcher wraps fsnotify with path bookkeeping and a drained event
// channel. It runs one goroutine; the core editor never touches it,
// only the frontend's event loop does.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	paths   map[string]bool
	changes chan Change
	closed  bool
	done    chan struct{}
}

// New starts a watcher. Close must be called to release it.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:     fsw,
		paths:   make(map[string]bool),
		changes: make(chan Change, 64),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes returns the channel of external-change events.
func (w *Watcher) Changes() <-chan Change { return w.changes }

// Add subscribes path. Watching the same path twice is a no-op.
func (w *Watcher) Add(path string) error {
	if path == "" {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.paths[path] {
		return nil
	}
	if err := w.fsw.Add(path); err != nil {
		return err
	}
	w.paths[path] = true
	return nil
}

// Remove unsubscribes path.
func (w *Watcher) Remove(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || !w.paths[path] {
		return
	}
	delete(w.paths, path)
	_ = w.fsw.Remove(path)
}

// Close stops the watcher and closes the Changes channel.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.changes)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			var change Change
			switch {
			case ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create):
				change = Change{Path: ev.Name}
			case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
				change = Change{Path: ev.Name, Removed: true}
			default:
				continue
			}
			select {
			case w.changes <- change:
			default:
				// A stalled consumer drops events rather than blocking
				// the notify loop.
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
