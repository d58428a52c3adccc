package build

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/drafts"
	"git.home.luguber.info/inful/docnav/internal/git"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// Runner executes the pipeline for one configuration. A Runner may be reused:
// each Run starts from a fresh State.
type Runner struct {
	cfg      *config.Config
	stages   []StageDef
	recorder metrics.Recorder
	logger   *slog.Logger
	docsFS   fs.FS
	draftsFS fs.FS
	dates    drafts.DateSource
}

// Option customizes a Runner.
type Option func(*Runner)

// WithRecorder reports stage and build observations to rec.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *Runner) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// WithLogger sets the base logger; each run adds its build id.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithDocsFS reads the documentation tree from fsys instead of docs.root.
func WithDocsFS(fsys fs.FS) Option { return func(r *Runner) { r.docsFS = fsys } }

// WithDraftsFS reads drafts from fsys instead of frontmatter.dir.
func WithDraftsFS(fsys fs.FS) Option { return func(r *Runner) { r.draftsFS = fsys } }

// WithDates overrides the commit date source used when frontmatter.git_dates is set.
func WithDates(d drafts.DateSource) Option { return func(r *Runner) { r.dates = d } }

// WithStages replaces the stage list.
func WithStages(stages []StageDef) Option { return func(r *Runner) { r.stages = stages } }

// NewRunner returns a Runner for a prepared configuration.
func NewRunner(cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:      cfg,
		stages:   DefaultStages(),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run executes every enabled stage in order and stops at the first failure.
// The report is returned on failure too.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	id := uuid.NewString()
	start := time.Now()
	logger := r.logger.With(logfields.BuildID(id))
	st := r.newState(logger, newReport(id, start))

	logger.Info("Build started", logfields.Path(r.cfg.Docs.Root))
	err := r.runStages(ctx, st)

	outcome := metrics.BuildOutcomeSuccess
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = metrics.BuildOutcomeCanceled
	case err != nil:
		outcome = metrics.BuildOutcomeFailed
	}
	st.Report.finish(outcome, err)
	r.recorder.ObserveBuildDuration(st.Report.Duration())
	r.recorder.IncBuildOutcome(outcome)

	if err != nil {
		logger.Error("Build failed", logfields.Error(err), logfields.DurationMS(ms(st.Report.Duration())))
		return st.Report, err
	}
	logger.Info("Build completed",
		logfields.Count(st.Report.Entries),
		logfields.DurationMS(ms(st.Report.Duration())))
	return st.Report, nil
}

func (r *Runner) newState(logger *slog.Logger, report *Report) *State {
	st := &State{
		Config:   r.cfg,
		DocsFS:   r.docsFS,
		DraftsFS: r.draftsFS,
		Dates:    r.dates,
		Builder:  nav.NewBuilder(nav.OptionsFromConfig(r.cfg)).WithLogger(logger),
		Logger:   logger,
		Recorder: r.recorder,
		Report:   report,
	}
	if st.DocsFS == nil {
		st.DocsFS = os.DirFS(r.cfg.Docs.Root)
	}
	if st.DraftsFS == nil {
		st.DraftsFS = os.DirFS(r.cfg.Frontmatter.Dir)
	}
	if st.Dates == nil && r.cfg.Frontmatter.Enabled && r.cfg.Frontmatter.GitDates {
		st.Dates = openDates(r.cfg.Frontmatter.Dir, logger)
	}
	return st
}

// openDates returns nil when the drafts directory is not inside a repository
// or the repository has no commits yet.
func openDates(dir string, logger *slog.Logger) drafts.DateSource {
	h, err := git.OpenHistory(dir)
	if err != nil {
		if errors.Is(err, git.ErrNoRepository) {
			logger.Debug("Drafts are not in a git repository; commit dates disabled", logfields.Path(dir))
		} else {
			logger.Warn("Cannot open git history; commit dates disabled", logfields.Path(dir), logfields.Error(err))
		}
		return nil
	}
	head, err := h.Head()
	switch {
	case err != nil:
		logger.Warn("Cannot resolve HEAD; commit dates disabled", logfields.Path(dir), logfields.Error(err))
		return nil
	case head == "":
		logger.Debug("Repository has no commits; commit dates disabled", logfields.Path(dir))
		return nil
	}
	logger.Debug("Commit dates enabled", logfields.Path(h.Root()), logfields.Commit(head))
	return h
}

func (r *Runner) runStages(ctx context.Context, st *State) error {
	for _, def := range r.stages {
		if def.Enabled != nil && !def.Enabled(st) {
			st.Report.SkippedStages = append(st.Report.SkippedStages, def.Name)
			r.recorder.IncStageResult(string(def.Name), metrics.ResultSkipped)
			continue
		}
		if err := ctx.Err(); err != nil {
			r.recorder.IncStageResult(string(def.Name), metrics.ResultCanceled)
			return ClassifyError(def.Name, err)
		}

		t0 := time.Now()
		err := def.Fn(ctx, st)
		d := time.Since(t0)
		st.Report.StageDurations[def.Name] = d
		r.recorder.ObserveStageDuration(string(def.Name), d)

		if err != nil {
			result := metrics.ResultFatal
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				result = metrics.ResultCanceled
			}
			r.recorder.IncStageResult(string(def.Name), result)
			st.Logger.Debug("Stage failed", logfields.Stage(string(def.Name)), logfields.Error(err))
			return ClassifyError(def.Name, err)
		}
		r.recorder.IncStageResult(string(def.Name), metrics.ResultSuccess)
		st.Logger.Debug("Stage completed", logfields.Stage(string(def.Name)), logfields.DurationMS(ms(d)))
	}
	return nil
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
