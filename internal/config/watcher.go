package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the event bursts editors produce when they
// rewrite a file.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads a config file when it changes on disk.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	onChange func(Config)
	onError  func(error)

	done      chan struct{}
	closeOnce sync.Once
}

// Watch monitors path and calls onChange with the freshly loaded
// configuration after each change. onError (optional, may be nil)
// receives watch and reload failures. The directory is watched rather
// than the file itself, so editors that replace the file atomically
// are still seen.
func Watch(path string, onChange func(Config), onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fw:       fw,
		onChange: onChange,
		onError:  onError,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops watching. Safe to call multiple times.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.fw.Close()
	})
	return nil
}

func (w *Watcher) loop() {
	var pending <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case evt, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != w.path {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(debounceDelay)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.reportError(err)

		case <-pending:
			pending = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.reportError(err)
				continue
			}
			w.onChange(cfg)
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
