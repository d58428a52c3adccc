package nav

import "git.home.luguber.info/inful/docnav/internal/config"

// NavItem is a top navigation entry; dropdowns carry Items instead of Link.
type NavItem struct {
	Text  string    `json:"text" yaml:"text"`
	Link  string    `json:"link,omitempty" yaml:"link,omitempty"`
	Items []NavItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// BuildNavbar returns the static links followed by one link per group, or by
// a single dropdown holding the group links in merged style.
func BuildNavbar(groups []Group, opts NavbarOptions) []NavItem {
	groupItems := make([]NavItem, 0, len(groups))
	for _, g := range groups {
		groupItems = append(groupItems, NavItem{Text: g.Title, Link: GroupLink(g.Name)})
	}

	out := make([]NavItem, 0, len(opts.Links)+len(groupItems))
	out = append(out, opts.Links...)
	if opts.Style == config.NavbarMerged {
		return append(out, NavItem{Text: opts.MergedTitle, Items: groupItems})
	}
	return append(out, groupItems...)
}
