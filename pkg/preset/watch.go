package preset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	motionerrors "github.com/go-drift/motion/pkg/errors"
)

// Reloader watches a preset table file and reloads the registry when it
// changes. It is a development tool: production builds ship the
// embedded table and never construct a Reloader.
type Reloader struct {
	path string

	mu       sync.Mutex
	debounce *time.Timer
}

// NewReloader creates a reloader for the given preset table file.
func NewReloader(path string) *Reloader {
	return &Reloader{path: path}
}

// Run loads the file once, then watches it until the context is
// cancelled. Watch and parse failures are reported through the error
// handler; the previous registry stays in effect.
func (r *Reloader) Run(ctx context.Context) {
	r.reload()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		r.report(fmt.Errorf("failed to create watcher: %w", err))
		return
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on
	// save, which drops file-level watches.
	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		r.report(fmt.Errorf("failed to watch %s: %w", filepath.Dir(r.path), err))
		return
	}

	base := filepath.Base(r.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			r.debounceReload(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			r.report(err)
		}
	}
}

// debounceReload coalesces bursts of write events into one reload.
func (r *Reloader) debounceReload(delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.debounce != nil {
		r.debounce.Stop()
	}
	r.debounce = time.AfterFunc(delay, r.reload)
}

func (r *Reloader) reload() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.report(fmt.Errorf("failed to read %s: %w", r.path, err))
		return
	}
	if err := Load(data); err != nil {
		r.report(err)
	}
}

func (r *Reloader) report(err error) {
	motionerrors.Report(&motionerrors.Error{
		Op:   "preset.Reloader",
		Kind: motionerrors.KindWatch,
		Err:  err,
	})
}
