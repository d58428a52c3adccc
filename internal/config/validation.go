package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// ValidateConfig checks cross-field constraints after defaults are applied.
func ValidateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Docs.Root) == "" {
		return ferrors.ValidationError("docs.root must not be empty").Build()
	}
	if strings.TrimSpace(cfg.Output.Directory) == "" {
		return ferrors.ValidationError("output.directory must not be empty").Build()
	}
	if err := validateBucketKeys("labels", cfg.Labels); err != nil {
		return err
	}
	if err := validateBucketKeys("icons", cfg.Icons); err != nil {
		return err
	}
	for i, l := range cfg.Navbar.Links {
		if strings.TrimSpace(l.Text) == "" || strings.TrimSpace(l.Link) == "" {
			return ferrors.ValidationError(fmt.Sprintf("navbar.links[%d] requires text and link", i)).Build()
		}
	}
	if cfg.Frontmatter.Enabled {
		if _, err := DraftsRelPath(cfg.Frontmatter.LinkRoot, cfg.Frontmatter.Dir); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryValidation, "frontmatter.dir must be inside frontmatter.link_root").
				Fatal().
				WithContext("dir", cfg.Frontmatter.Dir).
				WithContext("link_root", cfg.Frontmatter.LinkRoot).
				Build()
		}
	}
	if !strings.HasPrefix(cfg.Monitoring.Metrics.Path, "/") {
		return ferrors.ValidationError("monitoring.metrics.path must start with '/'").Build()
	}
	return nil
}

func validateBucketKeys(field string, m map[string]string) error {
	for k := range m {
		if !slices.Contains(BucketKeys, k) {
			return ferrors.ValidationError(fmt.Sprintf("%s: unknown bucket key %q (valid: %s)", field, k, strings.Join(BucketKeys, ", "))).Build()
		}
	}
	return nil
}

// DraftsRelPath returns dir relative to linkRoot, failing when dir lies outside it.
func DraftsRelPath(linkRoot, dir string) (string, error) {
	rel, err := filepath.Rel(linkRoot, dir)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not below %s", dir, linkRoot)
	}
	return rel, nil
}
