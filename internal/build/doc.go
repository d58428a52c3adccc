// Package build runs the docnav pipeline: discover groups, render
// navigation, scan drafts frontmatter and write the generated files.
//
// Every run starts from the current filesystem state and writes fresh
// output; nothing is carried between runs. The first failing stage aborts
// the run before any file is written.
package build
