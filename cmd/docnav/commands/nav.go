package commands

import (
	"context"
	"os"

	"git.home.luguber.info/inful/docnav/internal/build"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// NavCmd implements the 'nav' command.
type NavCmd struct {
	What    string `help:"Which structure to print" enum:"sidebar,navbar,theme" default:"sidebar"`
	Format  string `help:"Output format: json or yaml (overrides output.format)"`
	DocsDir string `name:"docs-dir" help:"Documentation root (overrides docs.root)"`
}

func (n *NavCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signalContext()
	defer stop()
	return n.run(ctx, g, root)
}

func (n *NavCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	if err := (overrides{Format: n.Format, DocsDir: n.DocsDir}).apply(cfg); err != nil {
		return err
	}

	navigation, err := nav.NewBuilder(nav.OptionsFromConfig(cfg)).WithLogger(g.Logger).Build(ctx, os.DirFS(cfg.Docs.Root))
	if err != nil {
		return build.ClassifyError(build.StageBuildNavigation, err)
	}

	var v any
	switch n.What {
	case "navbar":
		v = navigation.Navbar
	case "theme":
		v = build.NewTheme(navigation, cfg.Site)
	default:
		v = navigation.Sidebar
	}
	data, err := build.Encode(v, cfg.Output.Format)
	if err != nil {
		return build.ClassifyError(build.StageWriteOutputs, err)
	}
	_, err = g.Stdout.Write(data)
	return err
}
