package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads settings.json when it changes on disk
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	onChange   func(*Settings, []ValidationError)
	debounceMs int
	stop       chan struct{}
	stopped    bool
	mu         sync.Mutex
}

// NewWatcher creates a watcher for the settings file at path. onChange runs on
// the watcher's goroutine; UI code must hand the result to its own loop.
func NewWatcher(path string, onChange func(*Settings, []ValidationError)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:    w,
		path:       filepath.Clean(path),
		onChange:   onChange,
		debounceMs: 100,
		stop:       make(chan struct{}),
	}, nil
}

// Start begins watching. The directory is watched rather than the file so
// editors that save by rename are still noticed.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	log.Printf("TABDOCK Watcher: Started watching %s", w.path)

	go w.eventLoop()
	return nil
}

// Stop stops watching and cleans up resources
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	w.mu.Unlock()

	close(w.stop)
	w.watcher.Close()
	log.Printf("TABDOCK Watcher: Stopped watching %s", w.path)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if stopped || w.onChange == nil {
		return
	}

	log.Println("TABDOCK Watcher: Reloading settings")
	w.onChange(LoadSettings())
}

// eventLoop handles fsnotify events with debouncing
func (w *Watcher) eventLoop() {
	var timer *time.Timer
	var timerMu sync.Mutex

	resetTimer := func() {
		timerMu.Lock()
		defer timerMu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(time.Duration(w.debounceMs)*time.Millisecond, w.reload)
	}

	for {
		select {
		case <-w.stop:
			timerMu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timerMu.Unlock()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			log.Printf("TABDOCK Watcher: Event %s on %s", event.Op, event.Name)
			resetTimer()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("TABDOCK Watcher: Error: %v", err)
		}
	}
}
