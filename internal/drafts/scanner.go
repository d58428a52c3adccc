package drafts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/frontmatter"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/markdown"
)

// DateSource supplies a fallback date for documents without one.
type DateSource interface {
	LastCommitTime(file string) (time.Time, bool, error)
}

// Options controls a Scanner.
type Options struct {
	// Dir is the drafts directory on disk; used to resolve paths for DateSource.
	Dir string
	// RelDir is Dir relative to the link root, slash separated.
	RelDir     string
	LinkPrefix string
	Extensions []string

	Fingerprint      bool
	TitleFromHeading bool
}

// OptionsFromConfig maps the frontmatter section of a prepared config.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	rel, err := config.DraftsRelPath(cfg.Frontmatter.LinkRoot, cfg.Frontmatter.Dir)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Dir:              cfg.Frontmatter.Dir,
		RelDir:           filepath.ToSlash(rel),
		LinkPrefix:       cfg.Frontmatter.LinkPrefix,
		Extensions:       cfg.Frontmatter.Extensions,
		Fingerprint:      cfg.Frontmatter.Fingerprint,
		TitleFromHeading: cfg.Frontmatter.TitleFromHeading,
	}, nil
}

// Scanner walks a drafts tree and extracts frontmatter records.
type Scanner struct {
	fsys   fs.FS
	opts   Options
	dates  DateSource
	logger *slog.Logger
}

// NewScanner returns a Scanner over fsys, which is rooted at the drafts directory.
func NewScanner(fsys fs.FS, opts Options) *Scanner {
	return &Scanner{fsys: fsys, opts: opts, logger: slog.Default()}
}

// WithDates enables the date fallback.
func (s *Scanner) WithDates(d DateSource) *Scanner {
	s.dates = d
	return s
}

// WithLogger sets the logger.
func (s *Scanner) WithLogger(l *slog.Logger) *Scanner {
	if l != nil {
		s.logger = l
	}
	return s
}

// Scan walks the tree in lexical order. Files without a leading block are
// skipped; the first malformed block aborts the scan.
func (s *Scanner) Scan(ctx context.Context) ([]Record, error) {
	var records []Record
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == "." {
				return fmt.Errorf("%w: %w", ErrDraftsDirNotFound, walkErr)
			}
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !s.isDocument(p) {
			return nil
		}

		rec, ok, err := s.scanFile(p)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Debug("No frontmatter, skipping", logfields.File(p))
			return nil
		}
		s.logger.Debug("Frontmatter record", logfields.File(p), logfields.Link(rec.Link()))
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func (s *Scanner) isDocument(p string) bool {
	if len(s.opts.Extensions) == 0 {
		return true
	}
	return slices.Contains(s.opts.Extensions, strings.ToLower(path.Ext(p)))
}

func (s *Scanner) scanFile(p string) (Record, bool, error) {
	content, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return Record{}, false, fmt.Errorf("read %s: %w", p, err)
	}
	doc, err := frontmatter.Split(content)
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: %s: %w", ErrMalformedFrontmatter, p, err)
	}
	if !doc.HasFrontmatter {
		return Record{}, false, nil
	}
	fields, err := doc.Fields()
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: %s: %w", ErrMalformedFrontmatter, p, err)
	}

	if s.opts.Fingerprint {
		fp, err := ComputeFingerprint(fields, doc.Body)
		if err != nil {
			return Record{}, false, fmt.Errorf("fingerprint %s: %w", p, err)
		}
		fields[FieldFingerprint] = fp
	}
	if s.opts.TitleFromHeading && isBlank(fields[FieldTitle]) {
		fields[FieldTitle] = titleFallback(p, doc.Body)
	}
	if s.dates != nil && isBlank(fields[FieldDate]) {
		s.fillDate(p, fields)
	}
	fields[FieldLink] = BuildLink(s.opts.LinkPrefix, s.opts.RelDir, p)

	return Record{Path: p, Fields: fields}, true, nil
}

// fillDate sets the date from commit history. Lookup failures only log: a
// missing date is not worth failing the build over.
func (s *Scanner) fillDate(p string, fields map[string]any) {
	full := filepath.Join(s.opts.Dir, filepath.FromSlash(p))
	t, ok, err := s.dates.LastCommitTime(full)
	if err != nil {
		s.logger.Warn("Commit date lookup failed", logfields.File(p), logfields.Error(err))
		return
	}
	if ok {
		fields[FieldDate] = t.UTC().Format(time.DateOnly)
	}
}

func titleFallback(p string, body []byte) string {
	if h := markdown.FirstHeading(body, 1); h != "" {
		return h
	}
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// IsMalformed reports whether err came from an unparsable frontmatter block.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedFrontmatter)
}
