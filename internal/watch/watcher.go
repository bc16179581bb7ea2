// Package watch reports edits to the site manifest so the running site can
// reload itself.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pders01/pagesnap/internal/debuglog"
)

const DefaultDebounce = 150 * time.Millisecond

// Watcher watches one file. It subscribes to the parent directory so that
// editors replacing the file atomically are still seen.
type Watcher struct {
	path     string
	debounce time.Duration

	fsw     *fsnotify.Watcher
	changed chan struct{}
	cancel  context.CancelFunc

	mu    sync.Mutex
	timer *time.Timer
}

func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		changed:  make(chan struct{}, 1),
	}, nil
}

func (w *Watcher) Path() string { return w.path }

// Changed receives once per debounced burst of writes.
func (w *Watcher) Changed() <-chan struct{} { return w.changed }

// Start begins watching until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw

	ctx, w.cancel = context.WithCancel(ctx)
	go w.loop(ctx)
	return nil
}

func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	if w.fsw == nil {
		return nil
	}
	return w.fsw.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	target := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.trigger()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			debuglog.Warnf("site watcher: %v", err)
		}
	}
}

func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.changed <- struct{}{}:
		default:
		}
	})
}
