// Package git reads commit history for files in a local working tree.
//
// It is used to date documents that carry no explicit date in their
// frontmatter. Only local, read-only operations are performed.
package git
