// Package config loads and validates the docnav configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the configuration schema version written by Init.
const CurrentVersion = "1.0"

// Config is the root of the docnav configuration file.
type Config struct {
	Version     string            `yaml:"version"`
	Docs        DocsConfig        `yaml:"docs"`
	Labels      map[string]string `yaml:"labels,omitempty"` // bucket key -> localized label
	Icons       map[string]string `yaml:"icons,omitempty"`  // bucket key -> section icon
	Navbar      NavbarConfig      `yaml:"navbar"`
	Frontmatter FrontmatterConfig `yaml:"frontmatter"`
	Site        SiteConfig        `yaml:"site"`
	Output      OutputConfig      `yaml:"output"`
	Watch       WatchConfig       `yaml:"watch"`
	Monitoring  MonitoringConfig  `yaml:"monitoring"`
}

// DocsConfig describes the documentation tree and how groups are rendered.
type DocsConfig struct {
	Root         string            `yaml:"root"`
	Exclude      []string          `yaml:"exclude,omitempty"`       // top-level directories that are not groups
	DetailGroups []string          `yaml:"detail_groups,omitempty"` // groups rendered with the five-section layout
	Extensions   []string          `yaml:"extensions,omitempty"`    // document extensions stripped from names
	SummaryNames []string          `yaml:"summary_names,omitempty"`
	IndexTitle   string            `yaml:"index_title,omitempty"`
	GroupTitles  map[string]string `yaml:"group_titles,omitempty"`
	Ordering     Ordering          `yaml:"ordering,omitempty"`
	Collapsed    bool              `yaml:"collapsed"`
}

// NavbarConfig controls the top navigation.
type NavbarConfig struct {
	Style       NavbarStyle  `yaml:"style,omitempty"`
	MergedTitle string       `yaml:"merged_title,omitempty"`
	Links       []LinkConfig `yaml:"links,omitempty"` // static links placed ahead of the group links
}

// LinkConfig is a static navigation link.
type LinkConfig struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

// FrontmatterConfig controls the drafts frontmatter scanner.
type FrontmatterConfig struct {
	Enabled          bool     `yaml:"enabled"`
	Dir              string   `yaml:"dir"`
	LinkRoot         string   `yaml:"link_root"`
	LinkPrefix       string   `yaml:"link_prefix"`
	Extensions       []string `yaml:"extensions,omitempty"`
	Fingerprint      bool     `yaml:"fingerprint"`
	TitleFromHeading bool     `yaml:"title_from_heading"`
	GitDates         bool     `yaml:"git_dates"`
}

// SiteConfig carries the theme fragment values emitted next to the navigation.
type SiteConfig struct {
	GitHub   string `yaml:"github,omitempty"`
	EditLink string `yaml:"edit_link,omitempty"`
	EditText string `yaml:"edit_text,omitempty"`
}

// OutputConfig controls where generated files are written.
type OutputConfig struct {
	Directory string       `yaml:"directory"`
	Format    OutputFormat `yaml:"format,omitempty"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce,omitempty"`
	Interval time.Duration `yaml:"interval,omitempty"` // periodic full rebuild, 0 disables
}

// MonitoringConfig groups logging and metrics settings.
type MonitoringConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// MetricsConfig controls the Prometheus endpoint served in watch mode.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// Load reads, expands, normalizes, defaults and validates a configuration file.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML configuration data and prepares it for use.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Version != "" && cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %s (expected %s)", ErrUnsupportedVersion, cfg.Version, CurrentVersion)
	}
	if err := Prepare(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a fully defaulted configuration.
func Default() *Config {
	cfg := &Config{Version: CurrentVersion}
	// Defaults on an empty config cannot fail validation.
	_ = Prepare(cfg)
	return cfg
}

// Prepare runs normalization, default application and validation in place.
func Prepare(cfg *Config) error {
	res := NormalizeConfig(cfg)
	res.Log()
	if err := NewDefaultApplier().ApplyDefaults(cfg); err != nil {
		return err
	}
	return ValidateConfig(cfg)
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, configPath)
	}

	example := Default()
	example.Frontmatter.Enabled = true
	example.Frontmatter.Fingerprint = true
	example.Navbar.Links = []LinkConfig{{Text: "Home", Link: "https://example.com/"}}
	example.Site.GitHub = "https://github.com/example/hooks-notes"
	example.Site.EditLink = "https://github.com/example/hooks-notes/tree/master/hooks/:path"
	example.Watch.Interval = 10 * time.Minute

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	// #nosec G306 -- configuration file is not secret
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
