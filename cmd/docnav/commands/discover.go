package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"git.home.luguber.info/inful/docnav/internal/build"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	DocsDir string `name:"docs-dir" help:"Documentation root (overrides docs.root)"`
}

func (d *DiscoverCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signalContext()
	defer stop()
	return d.run(ctx, g, root)
}

func (d *DiscoverCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	if err := (overrides{DocsDir: d.DocsDir}).apply(cfg); err != nil {
		return err
	}

	builder := nav.NewBuilder(nav.OptionsFromConfig(cfg)).WithLogger(g.Logger)
	groups, err := builder.Groups(ctx, os.DirFS(cfg.Docs.Root))
	if err != nil {
		return build.ClassifyError(build.StageDiscoverGroups, err)
	}
	return printGroups(g.Stdout, groups)
}

func printGroups(out io.Writer, groups []nav.Group) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, grp := range groups {
		mode := "flat"
		if grp.Detailed {
			mode = "detailed"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d entries\n", grp.Name, mode, len(grp.Entries))
		for _, e := range grp.Entries {
			_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\n", e.Bucket, e.File, e.Link)
		}
	}
	return tw.Flush()
}
