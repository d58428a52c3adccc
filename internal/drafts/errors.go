package drafts

import "errors"

var (
	// ErrMalformedFrontmatter wraps a block that cannot be split or parsed.
	ErrMalformedFrontmatter = errors.New("malformed frontmatter")
	// ErrDraftsDirNotFound is returned when the drafts directory cannot be walked.
	ErrDraftsDirNotFound = errors.New("drafts directory not found")
)
