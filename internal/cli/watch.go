package cli

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/utils"
)

// RunCallback is called after every regeneration with its result
type RunCallback func(summary GenerationSummary, err error)

// Watcher regenerates bindings whenever Rust sources under the source root
// change. Bursts of events are debounced into one sequential run.
type Watcher struct {
	generator      *Generator
	opts           Config
	watcher        *fsnotify.Watcher
	debouncePeriod time.Duration
	dirFilter      utils.DirectoryFilter
	callbacks      []RunCallback
}

// NewWatcher creates a watcher driving gen with opts
func NewWatcher(gen *Generator, opts Config) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	return &Watcher{
		generator:      gen,
		opts:           opts,
		watcher:        watcher,
		debouncePeriod: DefaultDebounce,
		dirFilter:      utils.DefaultDirectoryFilter(),
	}, nil
}

// SetDebounce changes how long the watcher waits for changes to settle
func (w *Watcher) SetDebounce(period time.Duration) {
	w.debouncePeriod = period
}

// OnRun registers a callback to be called after every run
func (w *Watcher) OnRun(callback RunCallback) {
	w.callbacks = append(w.callbacks, callback)
}

// Run generates once, then regenerates on every change until ctx is done.
// Generation failures are reported and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	root := w.generator.cfg.SourceRoot()
	if err := w.addTree(root); err != nil {
		return err
	}
	w.generator.logger.Info("watching for changes", zap.String("root", root))

	w.regenerate()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.handleEvent(event) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debouncePeriod)
			fire = timer.C

		case <-fire:
			fire = nil
			w.regenerate()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.generator.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// handleEvent updates the watch set and the parse cache, and reports
// whether the event should trigger a run
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	if w.ignored(event.Name) {
		return false
	}

	if event.Has(fsnotify.Create) && w.generator.fileOps.IsDir(event.Name) {
		if err := w.addTree(event.Name); err != nil {
			w.generator.logger.Warn("failed to watch directory", zap.String("path", event.Name), zap.Error(err))
		}
		return true
	}

	if !strings.HasSuffix(event.Name, utils.RustSourceExtension) {
		return false
	}

	w.generator.Parser().Invalidate(event.Name)
	w.generator.logger.Debug("source changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
	return true
}

// ignored reports paths whose changes never trigger a run: generated
// output, which would loop, and directories discovery skips
func (w *Watcher) ignored(path string) bool {
	validator := w.generator.fileOps.PathValidator()
	if validator.Within(w.generator.cfg.NativeOutDir(), path) {
		return true
	}

	root := w.generator.cfg.SourceRoot()
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	for _, segment := range strings.Split(filepath.Dir(rel), string(filepath.Separator)) {
		if segment == "target" || (strings.HasPrefix(segment, ".") && segment != "." && segment != "..") {
			return true
		}
	}
	return false
}

// addTree watches dir and every directory below it that discovery walks
func (w *Watcher) addTree(dir string) error {
	nativeOut := w.generator.cfg.NativeOutDir()
	validator := w.generator.fileOps.PathValidator()

	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.WrapFileSystemError("watch", path, err)
		}
		if !entry.IsDir() {
			return nil
		}
		if path != dir && !w.dirFilter(path, entry) {
			return filepath.SkipDir
		}
		if validator.Within(nativeOut, path) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			return errors.WrapFileSystemError("watch", path, err)
		}
		return nil
	})
}

// regenerate runs one generation pass and notifies the callbacks
func (w *Watcher) regenerate() {
	err := w.generator.Run(w.opts)
	if err != nil {
		w.generator.diagnostics.Error("Generation failed: %v", err)
		for _, hint := range errors.Hints(err) {
			w.generator.diagnostics.Hint("%s", hint)
		}
		w.generator.logger.Warn("generation failed", zap.Error(err))
	}

	summary := w.generator.GetSummary()
	for _, callback := range w.callbacks {
		callback(summary, err)
	}
}
