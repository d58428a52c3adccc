package nav

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"

	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/docnav/internal/config"
)

// listDir returns the entries of dir in the configured order. Listing order
// reads the directory handle directly because fs.ReadDir always sorts.
func listDir(fsys fs.FS, dir string, ordering config.Ordering) ([]fs.DirEntry, error) {
	var entries []fs.DirEntry
	if ordering == config.OrderingListing {
		f, err := fsys.Open(dir)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		rd, ok := f.(fs.ReadDirFile)
		if !ok {
			return nil, &fs.PathError{Op: "readdir", Path: dir, Err: errors.New("not a directory")}
		}
		entries, err = rd.ReadDir(-1)
		if err != nil {
			return nil, err
		}
		return entries, nil
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return norm.NFC.String(entries[i].Name()) < norm.NFC.String(entries[j].Name())
	})
	return entries, nil
}

// DiscoverGroups lists the group directories directly below the root of fsys.
// Names are returned as stored on disk; exclusions compare NFC forms.
func DiscoverGroups(fsys fs.FS, opts Options) ([]string, error) {
	entries, err := listDir(fsys, ".", opts.Ordering)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRootNotFound, err)
	}

	groups := make([]string, 0, len(entries))
	for _, e := range entries {
		if !isDir(fsys, ".", e) {
			continue
		}
		if slices.Contains(opts.Exclude, norm.NFC.String(e.Name())) {
			continue
		}
		groups = append(groups, e.Name())
	}
	return groups, nil
}

// groupFiles lists the document files of one group. Subdirectories are
// skipped.
func groupFiles(fsys fs.FS, group string, opts Options) ([]string, error) {
	entries, err := listDir(fsys, group, opts.Ordering)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrGroupRead, group, err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if isDir(fsys, group, e) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// isDir follows symlinks the way a stat would.
func isDir(fsys fs.FS, dir string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(fsys, path.Join(dir, e.Name()))
	return err == nil && info.IsDir()
}
