// Package markdown inspects Markdown bodies through the goldmark AST.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parse parses a Markdown body (frontmatter already removed) into a goldmark AST.
func Parse(body []byte) gmast.Node {
	return goldmark.New().Parser().Parse(text.NewReader(body))
}

// FirstHeading returns the plain text of the first heading of the given
// level, or "" when the body has none.
func FirstHeading(body []byte, level int) string {
	root := Parse(body)

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok || h.Level != level {
			return gmast.WalkContinue, nil
		}
		title = headingText(h, body)
		return gmast.WalkStop, nil
	})
	return title
}

// headingText concatenates the text segments below a heading so inline
// markup such as `code` or *emphasis* is reduced to its literal characters.
func headingText(h *gmast.Heading, source []byte) string {
	var buf bytes.Buffer
	_ = gmast.Walk(h, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Text:
			buf.Write(node.Segment.Value(source))
			if node.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(node.Value)
		}
		return gmast.WalkContinue, nil
	})
	return string(bytes.TrimSpace(buf.Bytes()))
}
