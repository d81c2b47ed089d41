package config

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/hubastard/sprig/engine/gui"
)

// Watcher reloads a theme file whenever it changes on disk. Reloads happen
// on the watcher goroutine; Poll hands the latest theme to the UI thread.
type Watcher struct {
	path   string
	log    *slog.Logger
	fs     *fsnotify.Watcher
	themes chan gui.Theme
	done   chan struct{}
	wg     sync.WaitGroup
}

// WatchTheme watches the directory holding path, since editors often
// replace a file instead of writing it in place.
func WatchTheme(path string, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		path:   abs,
		log:    log,
		fs:     fw,
		themes: make(chan gui.Theme, 1),
		done:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&fsnotify.Write == fsnotify.Write || ev.Op&fsnotify.Create == fsnotify.Create {
				w.reload()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("theme watcher", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	t, err := LoadTheme(w.path)
	if err != nil {
		w.log.Warn("theme reload failed, keeping current theme", "path", w.path, "err", err)
		return
	}
	// keep only the newest theme
	select {
	case <-w.themes:
	default:
	}
	w.themes <- t
	w.log.Info("theme reloaded", "path", w.path)
}

// Poll returns the newest reloaded theme, if any, without blocking.
func (w *Watcher) Poll() (gui.Theme, bool) {
	select {
	case t := <-w.themes:
		return t, true
	default:
		return gui.Theme{}, false
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
