package git

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNoRepository is returned by OpenHistory when path is not inside a git
// working tree.
var ErrNoRepository = errors.New("no git repository found")

// History answers "when was this file last committed" for one repository.
type History struct {
	repo *git.Repository
	root string
}

// OpenHistory opens the repository containing path, searching parent
// directories for the .git entry.
func OpenHistory(path string) (*History, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNoRepository, path)
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	return &History{repo: repo, root: realPath(wt.Filesystem.Root())}, nil
}

// Root returns the working tree root.
func (h *History) Root() string { return h.root }

// Head returns the commit hash HEAD points at, or "" for an empty repository.
func (h *History) Head() (string, error) {
	ref, err := h.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return ref.Hash().String(), nil
}

// LastCommitTime returns the author time of the newest commit reachable from
// HEAD that touched file. ok is false when the file was never committed.
func (h *History) LastCommitTime(file string) (t time.Time, ok bool, err error) {
	rel, err := h.relative(file)
	if err != nil {
		return time.Time{}, false, err
	}

	iter, err := h.repo.Log(&git.LogOptions{FileName: &rel, Order: git.LogOrderCommitterTime})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("log %s: %w", rel, err)
	}
	defer iter.Close()

	c, err := iter.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("log %s: %w", rel, err)
	}
	return authorTime(c), true, nil
}

func (h *History) relative(file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(h.root, realPath(abs))
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside repository %s", file, h.root)
	}
	return filepath.ToSlash(rel), nil
}

func authorTime(c *object.Commit) time.Time {
	if c.Author.When.IsZero() {
		return c.Committer.When
	}
	return c.Author.When
}

// realPath resolves symlinks so temp directories such as /var -> /private/var
// compare equal. Paths that do not exist yet are returned cleaned.
func realPath(p string) string {
	if r, err := filepath.EvalSymlinks(p); err == nil {
		return r
	}
	return filepath.Clean(p)
}
