package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/docnav/internal/config"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory for the generated docnav.yaml (default: --config path)"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if i.Output != "" {
		path = filepath.Join(i.Output, "docnav.yaml")
	}
	_, _ = fmt.Fprintf(g.Stdout, "Writing configuration to %s\n", path)
	if err := config.Init(path, i.Force); err != nil {
		category := ferrors.CategoryFileSystem
		if errors.Is(err, config.ErrConfigExists) {
			category = ferrors.CategoryConfig
		}
		return ferrors.WrapError(err, category, "initialization failed").WithContext("path", path).Build()
	}
	_, _ = fmt.Fprintln(g.Stdout, "initialized successfully")
	return nil
}
