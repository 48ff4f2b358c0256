package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reload is emitted after the watched file changed and was re-read. Err is
// set when the new contents could not be loaded; Config is then nil.
type Reload struct {
	Config *Config
	Err    error
	Time   time.Time
}

// Watcher monitors a config file and re-reads it on change.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher watches the directory holding path. Editors commonly replace
// files by rename, which a watch on the file itself would lose.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		watcher:  fsw,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Watch starts watching and returns a channel of reloads. Cancelling the
// context stops watching and closes the channel.
func (w *Watcher) Watch(ctx context.Context) <-chan Reload {
	out := make(chan Reload, 4)

	go func() {
		defer close(out)

		// Stopped timer; armed by the first relevant event.
		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if pending && !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
				pending = true

			case <-timer.C:
				pending = false
				cfg, err := Read(w.path)
				r := Reload{Config: cfg, Err: err, Time: time.Now()}
				select {
				case out <- r:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				select {
				case out <- Reload{Err: fmt.Errorf("watching %s: %w", w.path, err), Time: time.Now()}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
