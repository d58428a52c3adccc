package build

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/config"
)

// Encode renders v in the given format. JSON is indented and keeps
// non-ASCII and HTML characters literal.
func Encode(v any, format config.OutputFormat) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			_ = enc.Close()
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Writer writes generated files into one directory.
type Writer struct {
	Dir    string
	Format config.OutputFormat
}

// Path returns the file path used for name.
func (w Writer) Path(name string) string {
	return filepath.Join(w.Dir, name+"."+w.Format.Extension())
}

// Write encodes v and replaces <Dir>/<name>.<ext> atomically.
func (w Writer) Write(name string, v any) (string, error) {
	data, err := Encode(v, w.Format)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	target := w.Path(name)
	if err := WriteFileAtomic(target, data); err != nil {
		return "", err
	}
	return target, nil
}

// WriteFileAtomic writes data to a temp file next to target and renames it
// into place, so readers never observe a half written file.
func WriteFileAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	// #nosec G302 -- generated site data is world readable
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return fmt.Errorf("atomic rename %s: %w", target, err)
	}
	return nil
}
