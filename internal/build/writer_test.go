package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/config"
)

func TestEncode_JSONKeepsLiterals(t *testing.T) {
	out, err := Encode(map[string]string{"text": "🚲 初入江湖 & <more>"}, config.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"text\": \"🚲 初入江湖 & <more>\"\n}\n", string(out))
}

func TestEncode_YAML(t *testing.T) {
	out, err := Encode(map[string][]string{"a": {"x", "y"}}, config.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "a:\n  - x\n  - y\n", string(out))
}

func TestWriter_ReplacesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := Writer{Dir: dir, Format: config.FormatJSON}

	path, err := w.Write("navbar", []string{"a"})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "navbar.json"), path)

	_, err = w.Write("navbar", []string{"b"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[\n  \"b\"\n]\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
