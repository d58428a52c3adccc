package watch

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// treeWatcher watches directory trees recursively, skipping hidden
// directories and an explicit skip list (the output directory, excluded
// top-level directories).
type treeWatcher struct {
	fsw    *fsnotify.Watcher
	skip   []string
	logger *slog.Logger
}

func newTreeWatcher(roots, skip []string, logger *slog.Logger) (*treeWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	tw := &treeWatcher{fsw: fsw, skip: absAll(skip), logger: logger}
	for _, root := range roots {
		if err := tw.addRecursive(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return tw, nil
}

func (tw *treeWatcher) skipped(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return slices.ContainsFunc(tw.skip, func(dir string) bool { return isWithin(abs, dir) })
}

func (tw *treeWatcher) addRecursive(root string) error {
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			tw.logger.Warn("Cannot walk directory", logfields.Path(path), logfields.Error(err))
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (strings.HasPrefix(d.Name(), ".") || tw.skipped(path)) {
			return filepath.SkipDir
		}
		if err := tw.fsw.Add(path); err != nil {
			tw.logger.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// relevant filters an event and starts watching directories created under a
// watched tree.
func (tw *treeWatcher) relevant(ev fsnotify.Event) bool {
	if ShouldIgnore(ev.Name) || tw.skipped(ev.Name) {
		return false
	}
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = tw.addRecursive(ev.Name)
		}
	}
	return true
}

func (tw *treeWatcher) Close() error { return tw.fsw.Close() }

func absAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			out = append(out, abs)
		}
	}
	return out
}
