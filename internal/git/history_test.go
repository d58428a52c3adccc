package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func commitFile(t *testing.T, repo *git.Repository, root, name, content string, when time.Time) {
	t.Helper()
	wt, err := repo.Worktree()
	require.NoError(t, err)

	full := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	_, err = wt.Add(filepath.ToSlash(name))
	require.NoError(t, err)

	sig := &object.Signature{Name: "tester", Email: "t@example.com", When: when}
	_, err = wt.Commit("update "+name, &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)
}

func TestLastCommitTime(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	first := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)
	second := time.Date(2023, 6, 15, 10, 9, 59, 0, time.UTC)
	commitFile(t, repo, root, "docs/write/a.md", "one", first)
	commitFile(t, repo, root, "docs/write/b.md", "two", first.Add(time.Hour))
	commitFile(t, repo, root, "docs/write/a.md", "one again", second)

	h, err := OpenHistory(filepath.Join(root, "docs", "write"))
	require.NoError(t, err)

	got, ok, err := h.LastCommitTime(filepath.Join(root, "docs", "write", "a.md"))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, second.Equal(got), "got %s", got)

	got, ok, err = h.LastCommitTime(filepath.Join(root, "docs", "write", "b.md"))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, first.Add(time.Hour).Equal(got))

	head, err := h.Head()
	require.NoError(t, err)
	require.Len(t, head, 40)
}

func TestLastCommitTime_Uncommitted(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)
	commitFile(t, repo, root, "a.md", "x", time.Now())

	path := filepath.Join(root, "new.md")
	require.NoError(t, os.WriteFile(path, []byte("y"), 0o600))

	h, err := OpenHistory(root)
	require.NoError(t, err)
	_, ok, err := h.LastCommitTime(path)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLastCommitTime_EmptyRepository(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	h, err := OpenHistory(root)
	require.NoError(t, err)
	_, ok, err := h.LastCommitTime(filepath.Join(root, "a.md"))
	require.NoError(t, err)
	require.False(t, ok)

	head, err := h.Head()
	require.NoError(t, err)
	require.Empty(t, head)
}

func TestOpenHistory_NoRepository(t *testing.T) {
	_, err := OpenHistory(t.TempDir())
	require.ErrorIs(t, err, ErrNoRepository)
}

func TestLastCommitTime_OutsideRepository(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)
	h, err := OpenHistory(root)
	require.NoError(t, err)

	_, _, err = h.LastCommitTime(filepath.Join(t.TempDir(), "x.md"))
	require.Error(t, err)
}
