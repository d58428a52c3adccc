package build

import (
	"io/fs"
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/drafts"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// State is the data passed between stages of one run.
type State struct {
	Config   *config.Config
	DocsFS   fs.FS
	DraftsFS fs.FS
	Dates    drafts.DateSource
	Builder  *nav.Builder
	Logger   *slog.Logger
	Recorder metrics.Recorder
	Report   *Report

	Groups     []nav.Group
	Navigation *nav.Navigation
	Records    []drafts.Record
	Summary    drafts.Summary
}
