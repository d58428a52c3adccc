// Package drafts collects the frontmatter of every document below a drafts
// directory into a list of records, each carrying a computed site link.
package drafts
