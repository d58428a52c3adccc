package drafts

import (
	"encoding/json"
)

// Field names written or read by the scanner.
const (
	FieldLink        = "link"
	FieldTitle       = "title"
	FieldDate        = "date"
	FieldTags        = "tags"
	FieldFingerprint = "fingerprint"
	FieldLastmod     = "lastmod"
)

// Record is the frontmatter of one document plus its computed link.
type Record struct {
	// Path is the file path relative to the drafts directory, slash separated.
	Path   string
	Fields map[string]any
}

// Link returns the computed link field.
func (r Record) Link() string {
	s, _ := r.Fields[FieldLink].(string)
	return s
}

// MarshalJSON encodes only the fields, matching the shape sites import.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields)
}

// MarshalYAML encodes only the fields.
func (r Record) MarshalYAML() (any, error) {
	return r.Fields, nil
}
