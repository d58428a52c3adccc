package watch

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// Service runs the watch loop for one configuration.
type Service struct {
	cfg      *config.Config
	build    BuildFunc
	recorder metrics.Recorder
	metrics  http.Handler
	logger   *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithRecorder reports rebuild triggers to rec.
func WithRecorder(rec metrics.Recorder) Option {
	return func(s *Service) { s.recorder = rec }
}

// WithMetricsHandler serves h at monitoring.metrics.listen/path while watching.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Service) { s.metrics = h }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Service calling build on every rebuild.
func New(cfg *config.Config, build BuildFunc, opts ...Option) *Service {
	s := &Service{cfg: cfg, build: build, recorder: metrics.NoopRecorder{}, logger: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Roots returns the directories watched for changes.
func (s *Service) Roots() []string {
	roots := []string{s.cfg.Docs.Root}
	if s.cfg.Frontmatter.Enabled && !isWithin(abs(s.cfg.Frontmatter.Dir), abs(s.cfg.Docs.Root)) {
		roots = append(roots, s.cfg.Frontmatter.Dir)
	}
	return roots
}

func (s *Service) skipDirs() []string {
	skip := []string{s.cfg.Output.Directory}
	for _, ex := range s.cfg.Docs.Exclude {
		skip = append(skip, filepath.Join(s.cfg.Docs.Root, ex))
	}
	return skip
}

// Run builds once, then rebuilds on changes until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	tw, err := newTreeWatcher(s.Roots(), s.skipDirs(), s.logger)
	if err != nil {
		return err
	}
	defer func() { _ = tw.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	worker := NewWorker(s.build, s.recorder, s.logger)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Run(ctx)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	worker.Request(ReasonInitial)

	debouncer := NewDebouncer(s.cfg.Watch.Debounce, func() { worker.Request(ReasonChange) })
	defer debouncer.Stop()

	if s.cfg.Watch.Interval > 0 {
		sched, err := NewScheduler(s.cfg.Watch.Interval, func() { worker.Request(ReasonSchedule) })
		if err != nil {
			return err
		}
		sched.Start()
		defer func() { _ = sched.Stop() }()
	}

	if s.metrics != nil {
		srv, err := StartMetricsServer(s.cfg.Monitoring.Metrics.Listen, s.cfg.Monitoring.Metrics.Path, s.metrics)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			_ = srv.Stop(shutdownCtx)
		}()
	}

	s.logger.Info("Watching for changes", slog.Any("roots", s.Roots()))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping watch")
			return nil
		case ev, ok := <-tw.fsw.Events:
			if !ok {
				return nil
			}
			if tw.relevant(ev) {
				s.logger.Debug("File change detected", logfields.Path(ev.Name), logfields.Event(ev.Op.String()))
				debouncer.Trigger()
			}
		case err, ok := <-tw.fsw.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func abs(p string) string {
	if a, err := filepath.Abs(p); err == nil {
		return a
	}
	return p
}
