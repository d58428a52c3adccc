package config

import "time"

// DefaultApplier applies defaults for one configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// CompositeDefaultApplier runs every domain applier in order.
type CompositeDefaultApplier struct {
	appliers []DefaultApplier
}

// NewDefaultApplier returns the applier chain used by Load.
func NewDefaultApplier() *CompositeDefaultApplier {
	return &CompositeDefaultApplier{appliers: []DefaultApplier{
		&DocsDefaultApplier{},
		&LabelsDefaultApplier{},
		&NavbarDefaultApplier{},
		&FrontmatterDefaultApplier{},
		&SiteDefaultApplier{},
		&OutputDefaultApplier{},
		&WatchDefaultApplier{},
		&MonitoringDefaultApplier{},
	}}
}

// ApplyDefaults implements DefaultApplier.
func (c *CompositeDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	for _, a := range c.appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}

// Domain implements DefaultApplier.
func (c *CompositeDefaultApplier) Domain() string { return "all" }

// DocsDefaultApplier fills in the documentation tree defaults.
type DocsDefaultApplier struct{}

func (d *DocsDefaultApplier) Domain() string { return "docs" }

func (d *DocsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Docs.Root == "" {
		cfg.Docs.Root = "hooks"
	}
	if cfg.Docs.Exclude == nil {
		cfg.Docs.Exclude = []string{".vitepress", "public"}
	}
	if cfg.Docs.DetailGroups == nil {
		cfg.Docs.DetailGroups = []string{"ahooks", "react-use", "vueuse"}
	}
	if len(cfg.Docs.Extensions) == 0 {
		cfg.Docs.Extensions = []string{".md"}
	}
	if len(cfg.Docs.SummaryNames) == 0 {
		cfg.Docs.SummaryNames = []string{"总结", "summary"}
	}
	if cfg.Docs.IndexTitle == "" {
		cfg.Docs.IndexTitle = "目录"
	}
	if cfg.Docs.Ordering == "" {
		cfg.Docs.Ordering = OrderingLexical
	}
	return nil
}

// DefaultLabels is the bucket label table used when the config omits labels.
var DefaultLabels = map[string]string{
	"index":   "新手村",
	"easy":    "初入江湖",
	"medium":  "掉入悬崖",
	"hard":    "大难不死",
	"utility": "副本刷怪",
	"summary": "习得神功",
}

// DefaultIcons prefixes each detailed-mode section label.
var DefaultIcons = map[string]string{
	"easy":    "🚲",
	"medium":  "🚅",
	"hard":    "🚀",
	"utility": "☂",
	"summary": "🎓",
}

// LabelsDefaultApplier fills missing bucket labels and icons key by key.
type LabelsDefaultApplier struct{}

func (l *LabelsDefaultApplier) Domain() string { return "labels" }

func (l *LabelsDefaultApplier) ApplyDefaults(cfg *Config) error {
	cfg.Labels = fillMissing(cfg.Labels, DefaultLabels)
	cfg.Icons = fillMissing(cfg.Icons, DefaultIcons)
	return nil
}

func fillMissing(dst, defaults map[string]string) map[string]string {
	if dst == nil {
		dst = make(map[string]string, len(defaults))
	}
	for k, v := range defaults {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
	return dst
}

// NavbarDefaultApplier fills in navbar defaults.
type NavbarDefaultApplier struct{}

func (n *NavbarDefaultApplier) Domain() string { return "navbar" }

func (n *NavbarDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Navbar.Style == "" {
		cfg.Navbar.Style = NavbarSeparate
	}
	if cfg.Navbar.MergedTitle == "" {
		cfg.Navbar.MergedTitle = "hooks 学习笔记"
	}
	return nil
}

// FrontmatterDefaultApplier fills in drafts scanner defaults.
type FrontmatterDefaultApplier struct{}

func (f *FrontmatterDefaultApplier) Domain() string { return "frontmatter" }

func (f *FrontmatterDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Frontmatter.Dir == "" {
		cfg.Frontmatter.Dir = "docs/write"
	}
	if cfg.Frontmatter.LinkRoot == "" {
		cfg.Frontmatter.LinkRoot = "docs"
	}
	if cfg.Frontmatter.LinkPrefix == "" {
		cfg.Frontmatter.LinkPrefix = "littlear"
	}
	if len(cfg.Frontmatter.Extensions) == 0 {
		cfg.Frontmatter.Extensions = []string{".md"}
	}
	return nil
}

// SiteDefaultApplier fills in theme fragment defaults.
type SiteDefaultApplier struct{}

func (s *SiteDefaultApplier) Domain() string { return "site" }

func (s *SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Site.EditText == "" {
		cfg.Site.EditText = "编辑当前页面"
	}
	return nil
}

// OutputDefaultApplier fills in output defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "hooks/.vitepress/generated"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatJSON
	}
	return nil
}

// WatchDefaultApplier fills in watch defaults.
type WatchDefaultApplier struct{}

func (w *WatchDefaultApplier) Domain() string { return "watch" }

func (w *WatchDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = 300 * time.Millisecond
	}
	if cfg.Watch.Interval < 0 {
		cfg.Watch.Interval = 0
	}
	return nil
}

// MonitoringDefaultApplier fills in logging and metrics defaults.
type MonitoringDefaultApplier struct{}

func (m *MonitoringDefaultApplier) Domain() string { return "monitoring" }

func (m *MonitoringDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Monitoring.Logging.Level == "" {
		cfg.Monitoring.Logging.Level = LogLevelInfo
	}
	if cfg.Monitoring.Logging.Format == "" {
		cfg.Monitoring.Logging.Format = LogFormatText
	}
	if cfg.Monitoring.Metrics.Listen == "" {
		cfg.Monitoring.Metrics.Listen = ":9464"
	}
	if cfg.Monitoring.Metrics.Path == "" {
		cfg.Monitoring.Metrics.Path = "/metrics"
	}
	return nil
}
