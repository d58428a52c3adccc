package watch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShouldIgnore(t *testing.T) {
	cases := map[string]bool{
		"docs/ahooks/1-useToggle.md":      false,
		"docs/ahooks/总结.md":               false,
		"docs/ahooks/.1-useToggle.md.swp": true,
		"docs/ahooks/1-useToggle.md~":     true,
		"docs/ahooks/#notes.md#":          true,
		"docs/ahooks/4913":                true,
		"docs/.DS_Store":                  true,
		"docs/ahooks/draft.tmp":           true,
	}
	for path, want := range cases {
		require.Equal(t, want, ShouldIgnore(filepath.FromSlash(path)), path)
	}
}

func TestIsWithin(t *testing.T) {
	root := filepath.FromSlash("/site/hooks")
	require.True(t, isWithin(root, root))
	require.True(t, isWithin(filepath.Join(root, "ahooks", "a.md"), root))
	require.False(t, isWithin(filepath.FromSlash("/site/hooks-old/a.md"), root))
	require.False(t, isWithin(filepath.FromSlash("/site"), root))
}
