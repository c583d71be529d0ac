package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/grouped-picker/internal/logging/events"
	"github.com/atomicstack/grouped-picker/internal/tree"
	"github.com/fsnotify/fsnotify"
)

// Event carries a freshly loaded forest or the error that prevented loading
// it.
type Event struct {
	Path  string
	Items []*tree.Item
	Err   error
}

// Loader reads a forest from path.
type Loader func(path string) ([]*tree.Item, error)

// Watcher reloads a tree file whenever it changes and publishes the result.
type Watcher struct {
	path     string
	load     Loader
	debounce time.Duration

	fs *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. The parent directory is watched so editors
// that replace the file on save are still picked up.
func NewWatcher(path string, debounce time.Duration, load Loader) (*Watcher, error) {
	if load == nil {
		load = tree.LoadFile
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("resolve tree path: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		load:     load,
		debounce: debounce,
		fs:       fsw,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	w.wg.Add(1)
	go w.loop()
	go func() {
		w.wg.Wait()
		fsw.Close()
		close(w.events)
	}()
	return w, nil
}

// Events returns the channel of reload events. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch loop has exited.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			if !w.emit() {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Source.Error(w.path, err)
		}
	}
}

func (w *Watcher) emit() bool {
	items, err := w.load(w.path)
	events.Source.Reload(w.path, len(items), err)
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- Event{Path: w.path, Items: items, Err: err}:
		return true
	}
}
