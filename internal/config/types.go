package config

import (
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
)

// Ordering selects how directory entries are ordered.
type Ordering string

const (
	// OrderingLexical sorts names byte-wise so output is identical on every platform.
	OrderingLexical Ordering = "lexical"
	// OrderingListing keeps the raw order returned by the filesystem.
	OrderingListing Ordering = "listing"
)

var orderingNormalizer = normalization.NewNormalizer(map[string]Ordering{
	"lexical":    OrderingLexical,
	"sorted":     OrderingLexical,
	"listing":    OrderingListing,
	"filesystem": OrderingListing,
}, OrderingLexical)

// NavbarStyle selects the navbar layout.
type NavbarStyle string

const (
	NavbarSeparate NavbarStyle = "separate" // one top-level item per group
	NavbarMerged   NavbarStyle = "merged"   // a single dropdown holding every group
)

var navbarStyleNormalizer = normalization.NewNormalizer(map[string]NavbarStyle{
	"separate": NavbarSeparate,
	"merged":   NavbarMerged,
	"dropdown": NavbarMerged,
}, NavbarSeparate)

// OutputFormat selects the encoding of generated files.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

var outputFormatNormalizer = normalization.NewNormalizer(map[string]OutputFormat{
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
}, FormatJSON)

// NormalizeOutputFormat maps a raw flag or config value to an OutputFormat.
func NormalizeOutputFormat(raw string) OutputFormat {
	return outputFormatNormalizer.Normalize(raw)
}

// ParseOutputFormat is the strict variant of NormalizeOutputFormat used for
// command-line overrides.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.Lookup(raw)
}

// Extension returns the file extension (without dot) for the format.
func (f OutputFormat) Extension() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer(map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}, LogLevelInfo)

// SlogLevel converts the configured level for a slog handler.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

var logFormatNormalizer = normalization.NewNormalizer(map[string]LogFormat{
	"text": LogFormatText,
	"json": LogFormatJSON,
}, LogFormatText)

// BucketKeys lists the canonical bucket keys accepted in labels and icons.
var BucketKeys = []string{"index", "easy", "medium", "hard", "utility", "summary"}

// bucketKeyNormalizer also accepts the key names of the original label table.
var bucketKeyNormalizer = normalization.NewNormalizer(map[string]string{
	"index":   "index",
	"easy":    "easy",
	"medium":  "medium",
	"middle":  "medium",
	"hard":    "hard",
	"utility": "utility",
	"other":   "utility",
	"summary": "summary",
	"end":     "summary",
}, "")
