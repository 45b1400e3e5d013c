package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/observability"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher serves a YAML catalog and swaps it in whenever the file changes.
// A file that fails to parse keeps the previous catalog in place.
type Watcher struct {
	path     string
	debounce time.Duration
	current  atomic.Pointer[Catalog]
	watcher  *fsnotify.Watcher
	reloaded chan struct{}

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets how long to wait for writes to settle before reloading.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watch loads path and starts reloading it on change until Close or ctx ends.
func Watch(ctx context.Context, path string, opts ...WatchOption) (*Watcher, error) {
	initial, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog watcher: %w", err)
	}

	// Editors replace files on save, so watch the directory rather than the file.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	w := &Watcher{
		path:     path,
		debounce: defaultDebounce,
		watcher:  fsw,
		reloaded: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.current.Store(initial)

	go w.loop(ctx)

	return w, nil
}

// List returns the models of the current catalog.
func (w *Watcher) List(ctx context.Context) []domain.Model {
	return w.current.Load().List(ctx)
}

// Catalog returns the catalog currently served.
func (w *Watcher) Catalog() *Catalog {
	return w.current.Load()
}

// Reloaded receives a value after each successful reload.
func (w *Watcher) Reloaded() <-chan struct{} {
	return w.reloaded
}

// Close stops watching. The last loaded catalog stays readable.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
	}
	return w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	logger := observability.FromContext(ctx)
	target := filepath.Clean(w.path)

	for {
		select {
		case <-ctx.Done():
			_ = w.Close()
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.scheduleReload(ctx)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("catalog watcher error", observability.Error(err))
		}
	}
}

func (w *Watcher) scheduleReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() { w.reload(ctx) })
}

func (w *Watcher) reload(ctx context.Context) {
	logger := observability.FromContext(ctx)

	next, err := Load(w.path)
	if err != nil {
		logger.Warn("catalog reload failed, keeping previous models",
			observability.String("path", w.path),
			observability.Error(err),
		)
		return
	}

	w.current.Store(next)
	logger.Info("catalog reloaded",
		observability.String("path", w.path),
		observability.Int("models", len(next.models)),
	)

	select {
	case w.reloaded <- struct{}{}:
	default:
	}
}
