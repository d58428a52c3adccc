package config

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// NormalizationResult collects the warnings produced while canonicalizing a config.
type NormalizationResult struct {
	Warnings []string
}

// Log emits every warning at warn level.
func (r *NormalizationResult) Log() {
	for _, w := range r.Warnings {
		slog.Warn("Configuration normalized", slog.String("detail", w))
	}
}

func (r *NormalizationResult) add(w string) {
	if w != "" {
		r.Warnings = append(r.Warnings, w)
	}
}

// NormalizeConfig canonicalizes enum fields and list values in place. It runs
// before defaults so that user-supplied values are cleaned first.
func NormalizeConfig(c *Config) *NormalizationResult {
	res := &NormalizationResult{}
	if c == nil {
		return res
	}

	o := orderingNormalizer.NormalizeField("docs.ordering", string(c.Docs.Ordering))
	c.Docs.Ordering = o.Value
	res.add(o.Warning)

	s := navbarStyleNormalizer.NormalizeField("navbar.style", string(c.Navbar.Style))
	c.Navbar.Style = s.Value
	res.add(s.Warning)

	f := outputFormatNormalizer.NormalizeField("output.format", string(c.Output.Format))
	c.Output.Format = f.Value
	res.add(f.Warning)

	l := logLevelNormalizer.NormalizeField("monitoring.logging.level", string(c.Monitoring.Logging.Level))
	c.Monitoring.Logging.Level = l.Value
	res.add(l.Warning)

	lf := logFormatNormalizer.NormalizeField("monitoring.logging.format", string(c.Monitoring.Logging.Format))
	c.Monitoring.Logging.Format = lf.Value
	res.add(lf.Warning)

	c.Labels = normalizeBucketKeys("labels", c.Labels, res)
	c.Icons = normalizeBucketKeys("icons", c.Icons, res)

	c.Docs.Exclude = trimStringSlice(c.Docs.Exclude)
	c.Docs.DetailGroups = trimStringSlice(c.Docs.DetailGroups)
	c.Docs.SummaryNames = trimStringSlice(c.Docs.SummaryNames)
	c.Docs.Extensions = normalizeExtensions("docs.extensions", c.Docs.Extensions, res)
	c.Frontmatter.Extensions = normalizeExtensions("frontmatter.extensions", c.Frontmatter.Extensions, res)

	if c.Docs.Root != "" {
		c.Docs.Root = filepath.Clean(c.Docs.Root)
	}
	if c.Frontmatter.Dir != "" {
		c.Frontmatter.Dir = filepath.Clean(c.Frontmatter.Dir)
	}
	if c.Frontmatter.LinkRoot != "" {
		c.Frontmatter.LinkRoot = filepath.Clean(c.Frontmatter.LinkRoot)
	}
	c.Frontmatter.LinkPrefix = strings.Trim(strings.TrimSpace(c.Frontmatter.LinkPrefix), "/")
	return res
}

// normalizeExtensions lower-cases extensions and adds the leading dot.
func normalizeExtensions(field string, in []string, res *NormalizationResult) []string {
	if len(in) == 0 {
		return in
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, raw := range in {
		ext := strings.ToLower(strings.TrimSpace(raw))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if ext != raw {
			res.add("normalized " + field + " entry '" + raw + "' to '" + ext + "'")
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}

// trimStringSlice trims entries and drops empty ones.
func trimStringSlice(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBucketKeys rewrites alias keys (middle, other, end) to their
// canonical bucket key. Unknown keys are kept so validation can report them.
func normalizeBucketKeys(field string, in map[string]string, res *NormalizationResult) map[string]string {
	if len(in) == 0 {
		return in
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		canonical := bucketKeyNormalizer.Normalize(k)
		if canonical == "" {
			out[k] = v
			continue
		}
		if canonical != k {
			res.add("normalized " + field + " key '" + k + "' to '" + canonical + "'")
		}
		out[canonical] = v
	}
	return out
}
