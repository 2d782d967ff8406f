// Package watch reruns a build whenever one of its input files changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/burstmake/internal/ctxlog"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle.
const DefaultDebounce = 100 * time.Millisecond

// Watcher triggers rebuilds on filesystem changes.
type Watcher struct {
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration
}

// Run calls rebuild once, then again every time a file returned by paths is
// written, created, removed or renamed. paths is re-evaluated after each
// rebuild so that files added to the build description are picked up. Build
// errors are logged and do not stop the watcher. Run returns nil when ctx is
// cancelled.
func (w *Watcher) Run(ctx context.Context, paths func() []string, rebuild func(context.Context) error) error {
	logger := ctxlog.FromContext(ctx)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	interest := make(map[string]struct{})
	dirs := make(map[string]struct{})

	runOnce := func() {
		if err := rebuild(ctx); err != nil {
			logger.Error("Build failed, waiting for changes.", "error", err)
		}
		// Changes made by the build itself are not a reason to build again.
		// Their events can trail the build, so wait out one debounce window.
		settle(ctx, fw.Events, debounce)

		clear(interest)
		for _, p := range paths() {
			abs, err := filepath.Abs(p)
			if err != nil {
				logger.Warn("Cannot resolve path, not watching it.", "path", p, "error", err)
				continue
			}
			interest[abs] = struct{}{}
			dir := filepath.Dir(abs)
			if _, ok := dirs[dir]; ok {
				continue
			}
			if err := fw.Add(dir); err != nil {
				logger.Debug("Cannot watch directory.", "dir", dir, "error", err)
				continue
			}
			dirs[dir] = struct{}{}
		}
		logger.Info("👀 Watching for changes.", "files", len(interest), "dirs", len(dirs))
	}

	runOnce()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watcher stopped.")
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			if _, ok := interest[filepath.Clean(ev.Name)]; !ok {
				continue
			}
			logger.Debug("Change detected.", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error.", "error", err)
		case <-timer.C:
			runOnce()
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// settle discards events until window has passed since the call.
func settle(ctx context.Context, events <-chan fsnotify.Event, window time.Duration) {
	t := time.NewTimer(window)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			return
		case _, ok := <-events:
			if !ok {
				return
			}
		}
	}
}
