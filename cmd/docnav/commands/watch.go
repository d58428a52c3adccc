package commands

import (
	"context"
	"net/http"

	"git.home.luguber.info/inful/docnav/internal/build"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output  string `short:"o" help:"Output directory (overrides output.directory)"`
	Format  string `help:"Output format: json or yaml (overrides output.format)"`
	DocsDir string `name:"docs-dir" help:"Documentation root (overrides docs.root)"`
	Metrics bool   `help:"Serve Prometheus metrics (overrides monitoring.metrics.enabled)"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signalContext()
	defer stop()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	if err := (overrides{Output: w.Output, Format: w.Format, DocsDir: w.DocsDir}).apply(cfg); err != nil {
		return err
	}
	if w.Metrics {
		cfg.Monitoring.Metrics.Enabled = true
	}

	var (
		recorder metrics.Recorder = metrics.NoopRecorder{}
		handler  http.Handler
	)
	if cfg.Monitoring.Metrics.Enabled {
		reg := metrics.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		handler = metrics.HTTPHandler(reg)
	}

	runner := build.NewRunner(cfg, build.WithLogger(g.Logger), build.WithRecorder(recorder))
	rebuild := func(ctx context.Context) error {
		report, err := runner.Run(ctx)
		if err == nil {
			g.Logger.Info("Navigation updated", logfields.Count(len(report.Outputs)))
		}
		return err
	}

	opts := []watch.Option{watch.WithLogger(g.Logger), watch.WithRecorder(recorder)}
	if handler != nil {
		opts = append(opts, watch.WithMetricsHandler(handler))
	}
	if err := watch.New(cfg, rebuild, opts...).Run(ctx); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "watch failed").
			Fatal().
			WithContext("root", cfg.Docs.Root).
			Build()
	}
	return nil
}
