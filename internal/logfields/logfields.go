package logfields

import "log/slog"

// Canonical log attribute keys shared across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyGroup      = "group"
	KeyBucket     = "bucket"
	KeyMode       = "mode"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyLink       = "link"
	KeyCount      = "count"
	KeyFormat     = "format"
	KeyEvent      = "event"
	KeyCommit     = "commit"
	KeyError      = "error"
)

func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Group(name string) slog.Attr     { return slog.String(KeyGroup, name) }
func Bucket(b string) slog.Attr       { return slog.String(KeyBucket, b) }
func Mode(m string) slog.Attr         { return slog.String(KeyMode, m) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Link(l string) slog.Attr         { return slog.String(KeyLink, l) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Event(op string) slog.Attr       { return slog.String(KeyEvent, op) }
func Commit(hash string) slog.Attr    { return slog.String(KeyCommit, hash) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
