package drafts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/config"
)

func mapFile(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

func defaultOpts() Options {
	return Options{Dir: "docs/write", RelDir: "write", LinkPrefix: "littlear", Extensions: []string{".md"}}
}

func TestScan_CollectsRecordsInLexicalOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"b.md":        mapFile("---\ntitle: B\ntags: [react]\n---\nbody\n"),
		"a.md":        mapFile("---\ntitle: A\n---\n# A\n"),
		"plain.md":    mapFile("# no frontmatter\n"),
		"image.png":   mapFile("---\nnot: scanned\n---\n"),
		"react/c.md":  mapFile("---\ntitle: C\nlink: /stale\n---\n"),
		"react/d.MD":  mapFile("---\ntitle: D\n---\n"),
		"empty/.keep": mapFile(""),
		"react/e.md":  mapFile("---\n---\n"),
	}

	records, err := NewScanner(fsys, defaultOpts()).Scan(context.Background())
	require.NoError(t, err)

	var paths, links []string
	for _, r := range records {
		paths = append(paths, r.Path)
		links = append(links, r.Link())
	}
	require.Equal(t, []string{"a.md", "b.md", "react/c.md", "react/d.MD", "react/e.md"}, paths)
	require.Equal(t, []string{
		"/littlear/write/a",
		"/littlear/write/b",
		"/littlear/write/react/c",
		"/littlear/write/react/d",
		"/littlear/write/react/e",
	}, links)
	require.Equal(t, "B", records[1].Fields["title"])
	require.Equal(t, []any{"react"}, records[1].Fields["tags"])
	require.Len(t, records[4].Fields, 1)
}

func TestScan_MalformedBlockAborts(t *testing.T) {
	cases := map[string]string{
		"unclosed":     "---\ntitle: x\n# body\n",
		"invalid yaml": "---\ntitle: [x\n---\n",
		"not mapping":  "---\n- a\n---\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{"a.md": mapFile("---\ntitle: ok\n---\n"), "b.md": mapFile(content)}
			records, err := NewScanner(fsys, defaultOpts()).Scan(context.Background())
			require.Error(t, err)
			require.True(t, IsMalformed(err))
			require.Contains(t, err.Error(), "b.md")
			require.Nil(t, records)
		})
	}
}

func TestScan_EmptyTree(t *testing.T) {
	records, err := NewScanner(fstest.MapFS{}, defaultOpts()).Scan(context.Background())
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := NewScanner(os.DirFS(filepath.Join(t.TempDir(), "absent")), defaultOpts()).Scan(context.Background())
	require.ErrorIs(t, err, ErrDraftsDirNotFound)
}

func TestScan_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewScanner(fstest.MapFS{"a.md": mapFile("---\na: 1\n---\n")}, defaultOpts()).Scan(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScan_Enrichment(t *testing.T) {
	fsys := fstest.MapFS{
		"heading.md":  mapFile("---\ntags: go\n---\n# Reading goldmark\n\ntext\n"),
		"nameonly.md": mapFile("---\ndate: 2023-01-02\n---\ntext\n"),
		"titled.md":   mapFile("---\ntitle: Kept\n---\n# Ignored\n"),
	}
	opts := defaultOpts()
	opts.Fingerprint = true
	opts.TitleFromHeading = true

	dates := &fakeDates{t: time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)}
	records, err := NewScanner(fsys, opts).WithDates(dates).Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, "Reading goldmark", records[0].Fields["title"])
	require.Equal(t, "2023-06-15", records[0].Fields["date"])
	require.Equal(t, "nameonly", records[1].Fields["title"])
	require.Equal(t, "2023-01-02", records[1].Fields["date"])
	require.Equal(t, "Kept", records[2].Fields["title"])

	for _, r := range records {
		fp, ok := r.Fields["fingerprint"].(string)
		require.True(t, ok)
		require.NotEmpty(t, fp)
	}
	require.Equal(t, []string{filepath.Join("docs/write", "heading.md"), filepath.Join("docs/write", "titled.md")}, dates.asked)
}

func TestScan_DateLookupErrorIsNotFatal(t *testing.T) {
	fsys := fstest.MapFS{"a.md": mapFile("---\ntitle: A\n---\n")}
	records, err := NewScanner(fsys, defaultOpts()).WithDates(&fakeDates{err: errors.New("boom")}).Scan(context.Background())
	require.NoError(t, err)
	require.NotContains(t, records[0].Fields, "date")
}

func TestOptionsFromConfig(t *testing.T) {
	cfg, err := config.Parse([]byte("frontmatter:\n  enabled: true\n  dir: site/docs/write/posts\n  link_root: site/docs\n  link_prefix: blog\n"))
	require.NoError(t, err)

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, "write/posts", opts.RelDir)
	require.Equal(t, "/blog/write/posts/x", BuildLink(opts.LinkPrefix, opts.RelDir, "x.md"))
}

type fakeDates struct {
	t     time.Time
	err   error
	asked []string
}

func (f *fakeDates) LastCommitTime(file string) (time.Time, bool, error) {
	f.asked = append(f.asked, file)
	if f.err != nil {
		return time.Time{}, false, f.err
	}
	return f.t, true, nil
}
