package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events editors emit for a
// single save into one regeneration.
const DefaultDebounce = 200 * time.Millisecond

// Watch blocks watching one file and invokes fn after each debounced
// write or create event, until ctx is cancelled. The parent directory
// is watched rather than the file itself so atomic rename-into-place
// saves keep working. Watcher errors are logged and ignored; fn errors
// are fn's problem.
func Watch(ctx context.Context, path string, debounce time.Duration, logger *zap.Logger, fn func()) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("watch")
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	logger.Debug("watching schema file", zap.String("path", abs))

	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-watcher.Errors:
			if err != nil {
				logger.Warn("watcher error", zap.Error(err))
			}

		case event := <-watcher.Events:
			if !matchesTarget(event, abs) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)

		case <-timerChan(timer):
			timer = nil
			logger.Debug("schema file changed, regenerating")
			fn()
		}
	}
}

func matchesTarget(event fsnotify.Event, target string) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == target
}

// timerChan returns a nil channel for a nil timer so the select case
// stays inert until the debounce window opens.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}
