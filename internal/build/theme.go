package build

import (
	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// SocialLink is a themeConfig.socialLinks entry.
type SocialLink struct {
	Icon string `json:"icon" yaml:"icon"`
	Link string `json:"link" yaml:"link"`
}

// EditLink is the themeConfig.editLink block.
type EditLink struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Text    string `json:"text" yaml:"text"`
}

// Theme is the themeConfig fragment a site config can spread in directly.
type Theme struct {
	Nav         []nav.NavItem `json:"nav" yaml:"nav"`
	Sidebar     nav.Sidebar   `json:"sidebar" yaml:"sidebar"`
	SocialLinks []SocialLink  `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
	EditLink    *EditLink     `json:"editLink,omitempty" yaml:"editLink,omitempty"`
}

// NewTheme assembles the fragment from navigation and the site section.
func NewTheme(n *nav.Navigation, site config.SiteConfig) Theme {
	t := Theme{Nav: n.Navbar, Sidebar: n.Sidebar}
	if site.GitHub != "" {
		t.SocialLinks = []SocialLink{{Icon: "github", Link: site.GitHub}}
	}
	if site.EditLink != "" {
		t.EditLink = &EditLink{Pattern: site.EditLink, Text: site.EditText}
	}
	return t
}
