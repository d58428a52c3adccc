package drafts

import (
	"path"
	"strings"
)

// BuildLink derives the site link of a draft: the prefix, then the drafts
// directory relative to the link root, then the file path without extension.
//
//	BuildLink("littlear", "write", "react/a.md") == "/littlear/write/react/a"
func BuildLink(prefix, relDir, file string) string {
	p := strings.TrimSuffix(file, path.Ext(file))
	joined := path.Join(strings.Trim(prefix, "/"), relDir, p)
	return "/" + strings.TrimPrefix(joined, "/")
}
