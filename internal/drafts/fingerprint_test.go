package drafts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeFingerprint_IgnoresDerivedFields(t *testing.T) {
	body := []byte("# Title\n\ntext\n")
	base, err := ComputeFingerprint(map[string]any{"title": "x", "tags": []any{"a"}}, body)
	require.NoError(t, err)
	require.NotEmpty(t, base)

	withDerived, err := ComputeFingerprint(map[string]any{
		"title":       "x",
		"tags":        []any{"a"},
		"link":        "/littlear/write/x",
		"lastmod":     "2024-01-01",
		"fingerprint": "stale",
	}, body)
	require.NoError(t, err)
	require.Equal(t, base, withDerived)
}

func TestComputeFingerprint_ChangesWithContent(t *testing.T) {
	a, err := ComputeFingerprint(map[string]any{"title": "x"}, []byte("one"))
	require.NoError(t, err)
	b, err := ComputeFingerprint(map[string]any{"title": "x"}, []byte("two"))
	require.NoError(t, err)
	c, err := ComputeFingerprint(map[string]any{"title": "y"}, []byte("one"))
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NotEqual(t, a, c)
}

func TestComputeFingerprint_NoFields(t *testing.T) {
	fp, err := ComputeFingerprint(nil, []byte("body"))
	require.NoError(t, err)
	require.NotEmpty(t, fp)
}
