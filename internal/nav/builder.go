package nav

import (
	"context"
	"io/fs"
	"log/slog"
	"slices"

	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Navigation is the result of one build.
type Navigation struct {
	Groups  []Group   `json:"groups" yaml:"groups"`
	Sidebar Sidebar   `json:"sidebar" yaml:"sidebar"`
	Navbar  []NavItem `json:"navbar" yaml:"navbar"`
}

// BucketCounts returns the number of entries per bucket key across all groups.
func (n *Navigation) BucketCounts() map[string]int {
	counts := make(map[string]int, len(bucketKeys))
	for _, k := range bucketKeys {
		counts[k] = 0
	}
	for _, g := range n.Groups {
		for _, e := range g.Entries {
			counts[e.Bucket.String()]++
		}
	}
	return counts
}

// Builder turns a documentation tree into navigation data.
type Builder struct {
	opts   Options
	logger *slog.Logger
}

// NewBuilder returns a Builder using opts.
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts, logger: slog.Default()}
}

// WithLogger sets the logger used for per-group debug output.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// Options returns the builder options.
func (b *Builder) Options() Options { return b.opts }

// Groups discovers and classifies every group below the root of fsys.
func (b *Builder) Groups(ctx context.Context, fsys fs.FS) ([]Group, error) {
	names, err := DiscoverGroups(fsys, b.opts)
	if err != nil {
		return nil, err
	}

	groups := make([]Group, 0, len(names))
	for _, raw := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := b.classifyGroup(fsys, raw)
		if err != nil {
			return nil, err
		}
		b.logger.Debug("Classified group",
			logfields.Group(g.Name),
			logfields.Mode(modeName(g.Detailed)),
			logfields.Count(len(g.Entries)))
		groups = append(groups, g)
	}
	return groups, nil
}

func (b *Builder) classifyGroup(fsys fs.FS, raw string) (Group, error) {
	files, err := groupFiles(fsys, raw, b.opts)
	if err != nil {
		return Group{}, err
	}
	name := norm.NFC.String(raw)
	g := Group{
		Name:     name,
		Title:    b.opts.groupTitle(name),
		Detailed: slices.Contains(b.opts.DetailGroups, name),
		Entries:  make([]DocEntry, 0, len(files)),
	}
	for _, f := range files {
		g.Entries = append(g.Entries, Classify(name, f, b.opts))
	}
	return g, nil
}

// Build discovers groups and renders the sidebar and navbar.
func (b *Builder) Build(ctx context.Context, fsys fs.FS) (*Navigation, error) {
	groups, err := b.Groups(ctx, fsys)
	if err != nil {
		return nil, err
	}
	return b.Render(groups), nil
}

// Render assembles navigation from already classified groups.
func (b *Builder) Render(groups []Group) *Navigation {
	return &Navigation{
		Groups:  groups,
		Sidebar: BuildSidebar(groups, b.opts),
		Navbar:  BuildNavbar(groups, b.opts.Navbar),
	}
}

func modeName(detailed bool) string {
	if detailed {
		return "detailed"
	}
	return "flat"
}
