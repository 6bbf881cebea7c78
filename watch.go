package gfx

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher flags a program for relinking when one of its source
// files changes. Events arrive on a background goroutine; the GL thread
// polls Changed once per frame and does the relink itself.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	dirty   atomic.Bool
	done    chan struct{}
}

// NewShaderWatcher watches the directories holding the given shader
// files. Directories are watched rather than files so editors that replace
// files on save are still seen.
func NewShaderWatcher(paths ...string) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	sw := &ShaderWatcher{
		watcher: w,
		files:   make(map[string]bool),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("shader watcher: %w", err)
		}
		sw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("shader watcher: watch %s: %w", dir, err)
		}
	}
	go sw.loop()
	return sw, nil
}

func (sw *ShaderWatcher) loop() {
	defer close(sw.done)
	for {
		select {
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !sw.files[abs] {
				continue
			}
			logger.Debug("shader source changed", "path", ev.Name, "op", ev.Op.String())
			sw.dirty.Store(true)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("shader watcher", "err", err)
		}
	}
}

// Changed reports whether a watched file changed since the last call.
// It never blocks.
func (sw *ShaderWatcher) Changed() bool {
	return sw.dirty.Swap(false)
}

// Close stops watching.
func (sw *ShaderWatcher) Close() error {
	err := sw.watcher.Close()
	<-sw.done
	return err
}

// Reload relinks the program from its sources after a change. On success
// the old program is deleted and the new one returned. On failure the
// error is logged and current is returned unchanged.
func Reload(gl GL, current Program, vertexPath, fragmentPath string) Program {
	next, err := LinkProgram(gl, vertexPath, fragmentPath)
	if err != nil {
		logger.Error("shader reload failed, keeping previous program", "err", err)
		return current
	}
	if current != 0 {
		gl.DeleteProgram(uint32(current))
	}
	logger.Info("shader program reloaded", "program", next)
	return next
}
