// Package watch re-runs work whenever a source file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("monicelli.watch")

// DefaultDelay coalesces the bursts of events editors emit for one save.
const DefaultDelay = 50 * time.Millisecond

// Watcher reports changes to a single file. The parent directory is watched
// so that editors which save by renaming a temporary file are still seen.
type Watcher struct {
	path  string
	delay time.Duration
	w     *fsnotify.Watcher
}

func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &Watcher{path: abs, delay: DefaultDelay, w: w}, nil
}

// Run calls onChange after every write to the file until ctx is done or the
// underlying watcher fails. Calls are never concurrent.
func (fw *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	defer fw.w.Close()

	timer := time.NewTimer(fw.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("%s: %s", ev.Op, ev.Name)
			timer.Reset(fw.delay)
		case <-timer.C:
			onChange(fw.path)
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", fw.path, err)
		}
	}
}

// Close stops a watcher that was never run.
func (fw *Watcher) Close() error {
	return fw.w.Close()
}
