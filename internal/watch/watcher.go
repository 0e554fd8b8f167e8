// Package watch re-runs generation whenever Go sources below a root change.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/common"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// ErrWatcherClosed is returned by Run when the underlying file watcher stops
// delivering events before ctx is done.
var ErrWatcherClosed = errors.New("file watcher closed")

// PassFunc runs one generation pass.
type PassFunc func(ctx context.Context) error

// Watcher watches a directory tree and runs a pass per batch of changes.
type Watcher struct {
	fs       *fsnotify.Watcher
	root     string
	debounce time.Duration
	logger   *slog.Logger

	closeOnce sync.Once
}

// New creates a watcher over root and every directory below it that the go
// tool would consider.
func New(root string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fs: fsw, root: root, debounce: debounce, logger: logger}

	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error

	w.closeOnce.Do(func() {
		err = w.fs.Close()
	})

	return err
}

// Run performs an initial pass, then one pass per debounced batch of
// changes until ctx is done. Passes never overlap: changes that arrive while
// a pass runs are folded into the next one. A failing pass is logged and
// watching continues. If the watcher is closed first, Run returns
// ErrWatcherClosed.
func (w *Watcher) Run(ctx context.Context, pass PassFunc) error {
	g, ctx := errgroup.WithContext(ctx)

	trigger := make(chan struct{}, 1)
	trigger <- struct{}{}

	g.Go(func() error {
		return w.loop(ctx, trigger)
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
				if err := pass(ctx); err != nil && ctx.Err() == nil {
					w.logger.Error("generation pass failed", "error", err)
				}
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// loop turns file events into debounced triggers.
func (w *Watcher) loop(ctx context.Context, trigger chan<- struct{}) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return ErrWatcherClosed
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !skipDir(info.Name()) {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "dir", event.Name, "error", err)
					}
				}
			}

			if !Relevant(event) {
				continue
			}

			w.logger.Debug("source changed", "file", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case <-timer.C:
			select {
			case trigger <- struct{}{}:
			default:
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return ErrWatcherClosed
			}

			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// Relevant reports whether event can change generation output: a change to
// a non-test Go source that is not itself a generated companion file.
func Relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)

	return strings.HasSuffix(name, ".go") &&
		!strings.HasSuffix(name, "_test.go") &&
		!common.IsGeneratedFile(name)
}

// addTree watches dir and its subdirectories.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}

			w.logger.Warn("error accessing path", "path", path, "error", err)

			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if path != dir && skipDir(d.Name()) {
			return filepath.SkipDir
		}

		if err := w.fs.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "dir", path, "error", err)
		}

		return nil
	})
}

// skipDir matches the directories the go tool ignores.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "testdata" || name == "vendor"
}
