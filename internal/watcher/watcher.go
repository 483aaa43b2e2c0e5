// Package watcher reports debounced changes to the entries of one directory.
package watcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/EugeneDevastator/TraVis/internal/log"
	"github.com/EugeneDevastator/TraVis/internal/pubsub"
)

// Watcher monitors a single directory and publishes pubsub.TopicDirChanged
// with the directory path once its entries settle.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	pub       pubsub.Publisher[string]
	debounce  time.Duration

	mu   sync.Mutex
	dir  string
	done chan struct{}
	once sync.Once
}

// Config holds watcher configuration options.
type Config struct {
	Dir         string
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:         dir,
		DebounceDur: 300 * time.Millisecond,
	}
}

// New creates a directory watcher publishing to pub.
func New(cfg Config, pub pubsub.Publisher[string]) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		pub:       pub,
		debounce:  cfg.DebounceDur,
		dir:       cfg.Dir,
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the configured directory. An empty directory starts
// the event loop idle until the first Retarget.
func (w *Watcher) Start() error {
	w.mu.Lock()
	dir := w.dir
	w.mu.Unlock()

	if dir != "" {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("watching directory %s: %w", dir, err)
		}
		log.Debug(log.CatWatcher, "Watching directory", "dir", dir)
	}

	go w.loop()
	return nil
}

// Dir returns the directory currently watched.
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Retarget moves the watch to dir. Watching the same directory again is a
// no-op and an empty dir pauses watching. On failure the previous directory is
// no longer watched.
func (w *Watcher) Retarget(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		_ = w.fsWatcher.Remove(w.dir)
	}
	w.dir = ""
	if dir == "" {
		log.Debug(log.CatWatcher, "Watch paused")
		return nil
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}
	w.dir = dir
	log.Debug(log.CatWatcher, "Watch retargeted", "dir", dir)
	return nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
	})
	return err
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if !isRelevantEvent(event) {
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
			pending = true

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				dir := w.Dir()
				n := w.pub.Publish(pubsub.TopicDirChanged, dir)
				log.Debug(log.CatWatcher, "Directory changed", "dir", dir, "subscribers", n)
				pending = false
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "Watch error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent reports events that change the directory listing.
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
