package commands

import (
	"context"
	"fmt"
	"os"

	"git.home.luguber.info/inful/docnav/internal/build"
	"git.home.luguber.info/inful/docnav/internal/drafts"
	"git.home.luguber.info/inful/docnav/internal/git"
)

// FrontmatterCmd implements the 'frontmatter' command.
type FrontmatterCmd struct {
	Dir     string `short:"d" help:"Drafts directory (overrides frontmatter.dir)"`
	Output  string `short:"o" help:"Output directory (overrides output.directory)"`
	Format  string `help:"Output format: json or yaml (overrides output.format)"`
	Print   bool   `short:"p" help:"Print records to stdout instead of writing files"`
	Summary bool   `help:"With --print, print the tag and timeline summary instead of the records"`
}

func (f *FrontmatterCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signalContext()
	defer stop()
	return f.run(ctx, g, root)
}

func (f *FrontmatterCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	cfg.Frontmatter.Enabled = true
	if f.Dir != "" {
		cfg.Frontmatter.Dir = f.Dir
	}
	if err := (overrides{Output: f.Output, Format: f.Format}).apply(cfg); err != nil {
		return err
	}

	if !f.Print {
		report, err := build.NewRunner(cfg,
			build.WithLogger(g.Logger),
			build.WithStages(build.FrontmatterStages()),
		).Run(ctx)
		if err == nil {
			_, _ = fmt.Fprintln(g.Stdout, report.Summary())
		}
		return err
	}

	opts, err := drafts.OptionsFromConfig(cfg)
	if err != nil {
		return build.ClassifyError(build.StageScanFrontmatter, err)
	}
	scanner := drafts.NewScanner(os.DirFS(cfg.Frontmatter.Dir), opts).WithLogger(g.Logger)
	if cfg.Frontmatter.GitDates {
		if h, err := git.OpenHistory(cfg.Frontmatter.Dir); err == nil {
			scanner = scanner.WithDates(h)
		}
	}
	records, err := scanner.Scan(ctx)
	if err != nil {
		return build.ClassifyError(build.StageScanFrontmatter, err)
	}

	var v any = records
	if f.Summary {
		v = drafts.Summarize(records)
	}
	data, err := build.Encode(v, cfg.Output.Format)
	if err != nil {
		return build.ClassifyError(build.StageWriteOutputs, err)
	}
	_, err = g.Stdout.Write(data)
	return err
}
