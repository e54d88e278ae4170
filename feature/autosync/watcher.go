package autosync

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"save-sync/core/reconcile"
	"save-sync/core/watch"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// PushFunc performs one push and returns its report.
type PushFunc func(ctx context.Context) (*reconcile.Report, error)

// Watcher triggers pushes on local changes and on an interval.
type Watcher struct {
	dir      string
	files    map[string]struct{}
	push     PushFunc
	interval time.Duration
	debounce time.Duration
	clock    clockwork.Clock
	logger   *zap.Logger
}

// NewWatcher creates a watcher for the tracked files inside dir.
func NewWatcher(cfg watch.Config, dir string, files []string, push PushFunc, clock clockwork.Clock, logger *zap.Logger) *Watcher {
	tracked := make(map[string]struct{}, len(files))
	for _, f := range files {
		tracked[f] = struct{}{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Watcher{
		dir:      dir,
		files:    tracked,
		push:     push,
		interval: cfg.Interval(),
		debounce: cfg.Debounce(),
		clock:    clock,
		logger:   logger,
	}
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if err := fsw.Close(); err != nil {
			w.logger.Warn("Failed to close file watcher", zap.Error(err))
		}
	}()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", w.dir, err)
	}

	w.logger.Info("Watching save directory",
		zap.String("dir", w.dir),
		zap.Duration("interval", w.interval),
		zap.Duration("debounce", w.debounce))

	changes := make(chan string)
	go w.forward(ctx, fsw, changes)

	return w.loop(ctx, changes)
}

// forward filters fsnotify events down to tracked file names.
func (w *Watcher) forward(ctx context.Context, fsw *fsnotify.Watcher, changes chan<- string) {
	defer close(changes)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			name := filepath.Base(event.Name)
			if !w.relevant(event, name) {
				continue
			}
			select {
			case changes <- name:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("File watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event, name string) bool {
	if _, ok := w.files[name]; !ok {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// loop debounces changes and runs pushes. It returns when ctx ends or
// changes is closed.
func (w *Watcher) loop(ctx context.Context, changes <-chan string) error {
	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := w.clock.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.Chan()
	}

	var pending clockwork.Timer
	var settled <-chan time.Time
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case name, ok := <-changes:
			if !ok {
				return nil
			}
			if pending != nil {
				pending.Stop()
			}
			pending = w.clock.NewTimer(w.debounce)
			settled = pending.Chan()
			w.logger.Debug("Push scheduled", zap.String("file", name), zap.Duration("after", w.debounce))

		case <-settled:
			settled = nil
			w.run(ctx, "change")

		case <-tick:
			w.run(ctx, "interval")
		}
	}
}

func (w *Watcher) run(ctx context.Context, trigger string) {
	report, err := w.push(ctx)
	if err != nil {
		w.logger.Error("Automatic push failed", zap.String("trigger", trigger), zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.String("trigger", trigger),
		zap.String("summary", report.Summary()),
	}
	if report.Failed() > 0 {
		w.logger.Warn("Automatic push finished with failures", fields...)
		return
	}
	w.logger.Info("Automatic push finished", fields...)
}
