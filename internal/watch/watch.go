// Package watch rebuilds a dictionary when its vocabulary files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay groups the burst of events an editor produces on save.
const DefaultDelay = 200 * time.Millisecond

// Watcher calls a function after files in watched directories change.
type Watcher struct {
	// Match selects the files whose changes count. nil matches every file.
	Match func(path string) bool
	// Ignore lists files whose events are dropped, such as the output file
	// written by the rebuild itself.
	Ignore []string
	Delay  time.Duration
	// Logger is used for watcher errors and change events. nil means no logging.
	Logger *slog.Logger
}

// Run watches dirs until ctx is done. onChange runs on its own goroutine,
// never concurrently with itself, once per burst of changes.
func (w *Watcher) Run(ctx context.Context, dirs []string, onChange func(ctx context.Context)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range uniqueDirs(dirs) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		if w.Logger != nil {
			w.Logger.Debug("watching", "dir", dir)
		}
	}

	delay := w.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	d := newDebouncer(delay)
	defer d.Stop()

	// A buffered slot coalesces triggers that arrive while onChange runs.
	trigger := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-trigger:
				onChange(ctx)
			}
		}
	}()

	ignore := make(map[string]bool, len(w.Ignore))
	for _, p := range w.Ignore {
		if abs, err := filepath.Abs(p); err == nil {
			ignore[abs] = true
		}
	}

	for {
		select {
		case <-ctx.Done():
			<-done
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				<-done
				return nil
			}
			if !w.relevant(event, ignore) {
				continue
			}
			if w.Logger != nil {
				w.Logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			}
			d.Debounce(func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				<-done
				return nil
			}
			if w.Logger != nil {
				w.Logger.Error("watch error", "error", err)
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event, ignore map[string]bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if abs, err := filepath.Abs(event.Name); err == nil && ignore[abs] {
		return false
	}
	return w.Match == nil || w.Match(event.Name)
}

// Dirs returns the directories holding files, the set to watch for them.
func Dirs(files []string) []string {
	dirs := make([]string, 0, len(files))
	for _, f := range files {
		dirs = append(dirs, filepath.Dir(f))
	}
	return uniqueDirs(dirs)
}

func uniqueDirs(dirs []string) []string {
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, filepath.Clean(d))
	}
	slices.Sort(out)
	return slices.Compact(out)
}
