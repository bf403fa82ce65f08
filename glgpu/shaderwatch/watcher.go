// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaderwatch watches shader source files for changes so that
// programs can be rebuilt while running. Change notifications arrive
// on a background goroutine, but rebuilding must happen on the thread
// that owns the OpenGL context, so changes are only collected here and
// handed out by [Watcher.Pending] from the render loop.
package shaderwatch

import (
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of files. Editors often save by writing a new
// file and renaming it over the old one, so the directories containing
// the files are watched and events are filtered by file name.
type Watcher struct {

	// C receives a value when there are pending changes.
	// It is buffered and never blocks the watcher; call Pending
	// to get the changed files.
	C <-chan struct{}

	signal  chan struct{}
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	files   map[string]bool
	dirs    map[string]bool
	pending map[string]bool
	closed  bool

	wg sync.WaitGroup
}

// New returns a new watcher for the given files.
func New(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	sig := make(chan struct{}, 1)
	w := &Watcher{
		C:       sig,
		signal:  sig,
		watcher: fw,
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		pending: make(map[string]bool),
	}
	w.wg.Add(1)
	go w.run()
	for _, f := range files {
		if err := w.Add(f); err != nil {
			w.Close()
			return nil, err
		}
	}
	return w, nil
}

// Add starts watching the given file.
func (w *Watcher) Add(file string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New("shaderwatch: watcher is closed")
	}
	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	return nil
}

// Files returns the watched files as absolute paths, sorted.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	fs := make([]string, 0, len(w.files))
	for f := range w.files {
		fs = append(fs, f)
	}
	slices.Sort(fs)
	return fs
}

// Pending returns the files that changed since the last call, sorted,
// and clears them. Multiple changes to one file are reported once.
func (w *Watcher) Pending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	ps := make([]string, 0, len(w.pending))
	for f := range w.pending {
		ps = append(ps, f)
	}
	clear(w.pending)
	slices.Sort(ps)
	return ps
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.notify(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("shaderwatch.Watcher", "err", err)
		}
	}
}

// notify records a change to the given file if it is watched.
func (w *Watcher) notify(name string) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}
	w.mu.Lock()
	if !w.files[abs] {
		w.mu.Unlock()
		return
	}
	w.pending[abs] = true
	w.mu.Unlock()
	select {
	case w.signal <- struct{}{}:
	default:
	}
}
