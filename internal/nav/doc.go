// Package nav builds sidebar and navbar data from a documentation tree.
//
// The tree has one directory per topic group directly below the root and one
// Markdown file per document inside each group. Every file is classified once
// into a Bucket from its name:
//
//	index.md    -> index
//	总结.md     -> summary
//	1-foo.md    -> easy
//	2-foo.md    -> medium
//	3-foo.md    -> hard
//	anything    -> utility
//
// Groups on the detail list get five labeled sections (easy, utility, medium,
// hard, summary); all other groups get a single flat list. A title from
// docs.group_titles replaces the directory name both as the sidebar wrapper
// text and as the navbar item text. Builder is pure:
// all tables come in through Options and the tree through an fs.FS.
package nav
