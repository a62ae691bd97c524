package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/haste/pkg/core"
)

// DefaultDebounce is how long a file must stay quiet before a change is reported.
const DefaultDebounce = 100 * time.Millisecond

// WatchConfig configures Watch.
type WatchConfig struct {
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watch reports writes to path as core.EventModify events, one per burst of
// changes. The parent directory is watched so that editors replacing the file
// by rename are seen too. The channel is closed when ctx is done.
func Watch(ctx context.Context, path string, config WatchConfig) (<-chan core.Event, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	out := make(chan core.Event)
	w := &fileWatcher{
		path:    abs,
		watcher: watcher,
		out:     out,
		config:  config,
	}

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		if config.Logger != nil {
			config.Logger.Error("watcher panic", "path", abs, "error", err)
		}
	}))
	return out, nil
}

type fileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	out     chan core.Event
	config  WatchConfig

	mu       sync.Mutex
	timer    *time.Timer
	inflight sync.WaitGroup
}

func (w *fileWatcher) run(ctx context.Context) error {
	defer close(w.out)
	defer w.inflight.Wait()
	defer w.watcher.Close()
	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if w.config.Logger != nil {
				w.config.Logger.Debug("file changed", "path", w.path, "op", event.Op.String())
			}
			w.schedule(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.config.Logger != nil {
				w.config.Logger.Error("fsnotify error", "error", err)
			}
		}
	}
}

// schedule (re)starts the debounce timer for the next event.
func (w *fileWatcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil && w.timer.Stop() {
		w.inflight.Done()
	}
	w.inflight.Add(1)
	w.timer = time.AfterFunc(w.config.Debounce, func() {
		defer w.inflight.Done()
		select {
		case w.out <- core.Event{Type: core.EventModify, Key: w.path, Timestamp: time.Now().Unix()}:
		case <-ctx.Done():
		}
	})
}

// stopTimer cancels a pending timer. A callback already running is waited
// for through inflight before the channel closes.
func (w *fileWatcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil && w.timer.Stop() {
		w.inflight.Done()
	}
	w.timer = nil
}
