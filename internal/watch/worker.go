package watch

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// BuildFunc runs one complete build.
type BuildFunc func(ctx context.Context) error

// Trigger reasons reported to metrics and logs.
const (
	ReasonInitial  = "initial"
	ReasonChange   = "fsnotify"
	ReasonSchedule = "schedule"
)

// Worker serializes builds. Requests made while a build runs collapse into a
// single follow-up build.
type Worker struct {
	build    BuildFunc
	requests chan string
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewWorker returns a Worker running build.
func NewWorker(build BuildFunc, recorder metrics.Recorder, logger *slog.Logger) *Worker {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{build: build, requests: make(chan string, 1), recorder: recorder, logger: logger}
}

// Request asks for a build. It never blocks; a request is dropped when one
// is already queued.
func (w *Worker) Request(reason string) {
	w.recorder.IncRebuildTrigger(reason)
	select {
	case w.requests <- reason:
	default:
		w.logger.Debug("Rebuild already queued", logfields.Event(reason))
	}
}

// Run processes requests until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case reason := <-w.requests:
			w.logger.Info("Rebuilding", logfields.Event(reason))
			if err := w.build(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				w.logger.Warn("Rebuild failed", logfields.Event(reason), logfields.Error(err))
			}
		}
	}
}
