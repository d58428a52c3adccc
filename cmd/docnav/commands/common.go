package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Global carries state shared by every subcommand.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer // command results
	Stderr io.Writer // logs
}

// NewGlobal returns a Global writing to the process streams.
func NewGlobal() *Global {
	return &Global{Logger: slog.Default(), Stdout: os.Stdout, Stderr: os.Stderr}
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docnav.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build       BuildCmd       `cmd:"" help:"Generate sidebar, navbar, theme and frontmatter files"`
	Discover    DiscoverCmd    `cmd:"" help:"List groups and entries with their bucket"`
	Nav         NavCmd         `cmd:"" help:"Print the sidebar, navbar or theme fragment to stdout"`
	Frontmatter FrontmatterCmd `cmd:"" help:"Scan the drafts directory and write frontmatter records"`
	Watch       WatchCmd       `cmd:"" help:"Rebuild whenever the documentation tree changes"`
	Init        InitCmd        `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// newLogger builds the handler selected by monitoring.logging; -v forces debug.
func newLogger(w io.Writer, cfg config.LoggingConfig, verbose bool) *slog.Logger {
	level := cfg.Level.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadConfig reads the configuration file and reconfigures logging from it.
// A missing file falls back to the built-in defaults.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		g.Logger.Warn("Configuration file not found, using defaults", logfields.Path(root.Config))
		cfg = config.Default()
	case err != nil:
		if _, ok := ferrors.AsClassified(err); ok {
			return nil, err
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load configuration").
			Fatal().
			WithContext("path", root.Config).
			Build()
	}

	if g.Stderr != nil {
		g.Logger = newLogger(g.Stderr, cfg.Monitoring.Logging, root.Verbose)
		slog.SetDefault(g.Logger)
	}
	return cfg, nil
}

// overrides are command-line replacements for configuration values.
type overrides struct {
	Output  string
	Format  string
	DocsDir string
}

// apply writes non-empty overrides into cfg and revalidates it.
func (o overrides) apply(cfg *config.Config) error {
	if o.Output != "" {
		cfg.Output.Directory = o.Output
	}
	if o.DocsDir != "" {
		cfg.Docs.Root = o.DocsDir
	}
	if o.Format != "" {
		f, err := config.ParseOutputFormat(o.Format)
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid --format").Build()
		}
		cfg.Output.Format = f
	}
	return config.ValidateConfig(cfg)
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
