package configfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/conneroisu/localvec/internal/errors"
	"github.com/conneroisu/localvec/internal/logging"
)

// DefaultDebounce groups the burst of events editors produce for one save.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc receives the freshly decoded configuration, or the error that
// prevented decoding it.
type ReloadFunc func(cfg *ServiceConfig, err error)

// Watcher re-reads a config file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   logging.Logger
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string, logger logging.Logger) *Watcher {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		logger:   logger.WithComponent("configfile"),
	}
}

// Run watches the file's directory, so the file may be replaced by rename as
// many editors do, and calls fn after each settled change. It blocks until
// ctx is done and returns nil in that case.
func (w *Watcher) Run(ctx context.Context, fn ReloadFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.logger.Debug(ctx, "Watching config file", "path", w.path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := Read(w.path)
			if err != nil {
				w.logger.Warn(ctx, err, "Config reload failed", "path", w.path, "code", errors.CodeOf(err))
			} else {
				w.logger.Info(ctx, "Config reloaded", "path", w.path)
			}
			fn(cfg, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(ctx, err, "Watcher error", "path", w.path)
		}
	}
}
