package nav

import (
	"git.home.luguber.info/inful/docnav/internal/config"
)

// Options carries every table the builder consults. The zero value is not
// useful; start from DefaultOptions or OptionsFromConfig.
type Options struct {
	// Exclude lists top-level directory names that are never groups.
	Exclude []string
	// DetailGroups lists groups rendered with the five-section layout.
	DetailGroups []string
	// Extensions are stripped from file names to form the logical name.
	Extensions   []string
	SummaryNames []string
	// IndexTitle replaces the title of the index entry in detailed mode.
	IndexTitle  string
	GroupTitles map[string]string
	// Labels and Icons are keyed by Bucket.String().
	Labels    map[string]string
	Icons     map[string]string
	Ordering  config.Ordering
	Collapsed bool
	Navbar    NavbarOptions
}

// NavbarOptions controls BuildNavbar.
type NavbarOptions struct {
	Style       config.NavbarStyle
	MergedTitle string
	// Links are emitted ahead of the group links.
	Links []NavItem
}

// DefaultOptions returns the options of a default configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig maps a prepared configuration onto builder options.
func OptionsFromConfig(cfg *config.Config) Options {
	links := make([]NavItem, 0, len(cfg.Navbar.Links))
	for _, l := range cfg.Navbar.Links {
		links = append(links, NavItem{Text: l.Text, Link: l.Link})
	}
	return Options{
		Exclude:      cfg.Docs.Exclude,
		DetailGroups: cfg.Docs.DetailGroups,
		Extensions:   cfg.Docs.Extensions,
		SummaryNames: cfg.Docs.SummaryNames,
		IndexTitle:   cfg.Docs.IndexTitle,
		GroupTitles:  cfg.Docs.GroupTitles,
		Labels:       cfg.Labels,
		Icons:        cfg.Icons,
		Ordering:     cfg.Docs.Ordering,
		Collapsed:    cfg.Docs.Collapsed,
		Navbar: NavbarOptions{
			Style:       cfg.Navbar.Style,
			MergedTitle: cfg.Navbar.MergedTitle,
			Links:       links,
		},
	}
}

func (o Options) groupTitle(name string) string {
	if t, ok := o.GroupTitles[name]; ok && t != "" {
		return t
	}
	return name
}
