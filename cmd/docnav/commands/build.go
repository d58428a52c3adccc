package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/build"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output  string `short:"o" help:"Output directory (overrides output.directory)"`
	Format  string `help:"Output format: json or yaml (overrides output.format)"`
	DocsDir string `name:"docs-dir" help:"Documentation root (overrides docs.root)"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signalContext()
	defer stop()
	return b.run(ctx, g, root)
}

func (b *BuildCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	if err := (overrides{Output: b.Output, Format: b.Format, DocsDir: b.DocsDir}).apply(cfg); err != nil {
		return err
	}

	report, err := build.NewRunner(cfg, build.WithLogger(g.Logger)).Run(ctx)
	if report != nil && err == nil {
		_, _ = fmt.Fprintln(g.Stdout, report.Summary())
	}
	return err
}
