package watch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/config"
)

func watchConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	docs := filepath.Join(root, "hooks")
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "ahooks"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "ahooks", "index.md"), []byte("# ahooks\n"), 0o600))

	cfg := config.Default()
	cfg.Docs.Root = docs
	cfg.Output.Directory = filepath.Join(docs, ".vitepress", "generated")
	cfg.Frontmatter.Enabled = false
	cfg.Watch.Debounce = 20 * time.Millisecond
	cfg.Watch.Interval = 0
	return cfg
}

func runService(t *testing.T, s *Service) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-errc
	})
	return cancel, errc
}

func TestService_InitialBuildAndRebuildOnChange(t *testing.T) {
	cfg := watchConfig(t)
	var builds atomic.Int32
	s := New(cfg, func(context.Context) error {
		builds.Add(1)
		return nil
	})
	runService(t, s)

	require.Eventually(t, func() bool { return builds.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	// give the watcher time to register before writing
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(cfg.Docs.Root, "ahooks", "1-useToggle.md"), []byte("x"), 0o600))
	require.Eventually(t, func() bool { return builds.Load() >= 2 }, 3*time.Second, 10*time.Millisecond)
}

func TestService_OutputDirectoryDoesNotTriggerRebuild(t *testing.T) {
	cfg := watchConfig(t)
	require.NoError(t, os.MkdirAll(cfg.Output.Directory, 0o750))
	var builds atomic.Int32
	s := New(cfg, func(context.Context) error {
		builds.Add(1)
		return os.WriteFile(filepath.Join(cfg.Output.Directory, "sidebar.json"), []byte("{}"), 0o600)
	})
	runService(t, s)

	require.Eventually(t, func() bool { return builds.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	require.Equal(t, int32(1), builds.Load())
}

func TestService_NewDirectoryIsWatched(t *testing.T) {
	cfg := watchConfig(t)
	var builds atomic.Int32
	s := New(cfg, func(context.Context) error {
		builds.Add(1)
		return nil
	})
	runService(t, s)
	require.Eventually(t, func() bool { return builds.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	group := filepath.Join(cfg.Docs.Root, "vueuse")
	require.NoError(t, os.Mkdir(group, 0o750))
	require.Eventually(t, func() bool { return builds.Load() >= 2 }, 3*time.Second, 10*time.Millisecond)
	seen := builds.Load()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(group, "1-useMouse.md"), []byte("x"), 0o600))
	require.Eventually(t, func() bool { return builds.Load() > seen }, 3*time.Second, 10*time.Millisecond)
}

func TestService_PeriodicRebuild(t *testing.T) {
	cfg := watchConfig(t)
	cfg.Watch.Interval = 50 * time.Millisecond
	var builds atomic.Int32
	s := New(cfg, func(context.Context) error {
		builds.Add(1)
		return nil
	})
	runService(t, s)
	require.Eventually(t, func() bool { return builds.Load() >= 3 }, 3*time.Second, 10*time.Millisecond)
}

func TestMetricsServer_ServesHandler(t *testing.T) {
	cfg := watchConfig(t)
	cfg.Monitoring.Metrics.Listen = "127.0.0.1:0"
	cfg.Monitoring.Metrics.Path = "/metrics"

	srv, err := StartMetricsServer(cfg.Monitoring.Metrics.Listen, cfg.Monitoring.Metrics.Path,
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "docnav_up 1\n") }))
	require.NoError(t, err)
	defer func() { _ = srv.Stop(context.Background()) }()

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "docnav_up"))
}

func TestService_MissingRootFails(t *testing.T) {
	cfg := watchConfig(t)
	cfg.Docs.Root = filepath.Join(t.TempDir(), "absent")
	s := New(cfg, func(context.Context) error { return nil })
	require.Error(t, s.Run(context.Background()))
}

func TestService_RootsIncludeDraftsOutsideDocs(t *testing.T) {
	cfg := watchConfig(t)
	cfg.Frontmatter.Enabled = true
	cfg.Frontmatter.Dir = filepath.Join(t.TempDir(), "write")
	require.Equal(t, []string{cfg.Docs.Root, cfg.Frontmatter.Dir}, New(cfg, nil).Roots())

	cfg.Frontmatter.Dir = filepath.Join(cfg.Docs.Root, "ahooks")
	require.Equal(t, []string{cfg.Docs.Root}, New(cfg, nil).Roots())
}
