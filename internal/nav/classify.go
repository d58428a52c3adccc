package nav

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DocEntry is one navigable document of a group.
type DocEntry struct {
	File    string `json:"file" yaml:"file"`
	Logical string `json:"logical" yaml:"logical"`
	Title   string `json:"title" yaml:"title"`
	Link    string `json:"link" yaml:"link"`
	Bucket  Bucket `json:"bucket" yaml:"bucket"`
}

var numericMarker = regexp.MustCompile(`[0-9]+-`)

// CleanTitle removes every "<digits>-" marker from a logical name.
func CleanTitle(logical string) string {
	return numericMarker.ReplaceAllString(logical, "")
}

// LogicalName strips the first matching document extension from filename.
// Names are NFC-normalized so decomposed names compare equal to literals.
func LogicalName(filename string, extensions []string) string {
	name := norm.NFC.String(filename)
	for _, ext := range extensions {
		if len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// Classify derives the entry for filename inside group.
func Classify(group, filename string, opts Options) DocEntry {
	logical := LogicalName(filename, opts.Extensions)
	return DocEntry{
		File:    filename,
		Logical: logical,
		Title:   CleanTitle(logical),
		Link:    EntryLink(group, logical),
		Bucket:  parseBucket(logical, opts.SummaryNames),
	}
}

// EntryLink returns the route of a document.
func EntryLink(group, logical string) string {
	return "/" + group + "/" + logical
}

// GroupLink returns the route prefix of a group.
func GroupLink(group string) string {
	return "/" + group + "/"
}
