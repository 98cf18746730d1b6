package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"paperview/internal/config"
)

// RebuildFunc runs one rebuild in response to a change burst.
type RebuildFunc func(ctx context.Context) error

// Watcher triggers rebuilds when watched paths change.
//
// Design decision: Events are debounced because editors save through
// write-rename sequences and emit several events per save. The rebuild
// runs once after a burst settles rather than once per event.
type Watcher struct {
	// watcher delivers filesystem events.
	watcher *fsnotify.Watcher

	// files are exact file targets. Their parent directories are
	// registered with the watcher so rename-and-replace saves still
	// deliver events, and so targets may come into existence later.
	files map[string]struct{}

	// dirs are directory targets; any change directly below them counts.
	dirs map[string]struct{}

	// debounce is how long a change burst must settle before rebuilding.
	debounce time.Duration

	// rebuild runs after the debounce window.
	rebuild RebuildFunc

	// logger for structured logging.
	logger *slog.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatchDebounce sets the settle window for change bursts.
// Default is config.DefaultWatchDebounce.
func WithWatchDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithWatchLogger sets a custom logger for the watcher.
func WithWatchLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher creates a watcher over the given paths. Paths that exist
// as directories are watched as directories; everything else is
// treated as a file target and watched through its parent directory.
//
// Paths are compared after filepath.Clean, so callers should pass
// either consistently relative or consistently absolute paths.
func NewWatcher(paths []string, rebuild RebuildFunc, opts ...WatcherOption) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ErrNoWatchTargets
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsw,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		debounce: config.DefaultWatchDebounce,
		rebuild:  rebuild,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	for _, p := range paths {
		p = filepath.Clean(p)

		if info, statErr := os.Stat(p); statErr == nil && info.IsDir() {
			if err := fsw.Add(p); err != nil {
				_ = fsw.Close() //nolint:errcheck
				return nil, fmt.Errorf("failed to watch %s: %w", p, err)
			}
			w.dirs[p] = struct{}{}
			continue
		}

		if err := fsw.Add(filepath.Dir(p)); err != nil {
			_ = fsw.Close() //nolint:errcheck
			return nil, fmt.Errorf("failed to watch %s: %w", p, err)
		}
		w.files[p] = struct{}{}
	}

	return w, nil
}

// Run processes events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	return w.loop(ctx, w.watcher.Events, w.watcher.Errors)
}

// loop is separated from Run so tests can drive it with synthetic
// channels instead of real filesystem timing.
func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("change detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)

		case <-timer.C:
			pending = false
			if err := w.rebuild(ctx); err != nil {
				// The last good build keeps serving; the next change
				// gets another chance.
				w.logger.Error("rebuild failed", "error", err)
				continue
			}
			w.logger.Info("rebuild complete")
		}
	}
}

// relevant reports whether an event concerns a watched target.
// Chmod-only events are ignored.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	name := filepath.Clean(event.Name)
	if _, ok := w.files[name]; ok {
		return true
	}
	for dir := range w.dirs {
		if name == dir || strings.HasPrefix(name, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
