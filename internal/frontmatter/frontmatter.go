// Package frontmatter splits and parses the YAML block at the head of a
// Markdown document.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// ErrNotMapping is returned when the frontmatter block decodes to something
// other than a key/value mapping.
var ErrNotMapping = errors.New("yaml frontmatter is not a mapping")

// Style captures the newline shape of a document.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// Document is a Markdown file cut at its frontmatter delimiters.
type Document struct {
	// Raw is the YAML between the delimiters, without them.
	Raw  []byte
	Body []byte
	// HasFrontmatter is false when the file does not open with "---".
	HasFrontmatter bool
	Style          Style
}

const delimiter = "---"

// Split separates a leading `---` delimited block from the Markdown body.
//
// A document that does not open with the delimiter yields HasFrontmatter=false
// and the full input as Body. An opening delimiter without a matching closing
// line is an error. The closing delimiter may be the last line of the file.
func Split(content []byte) (Document, error) {
	style := detectStyle(content)
	nl := style.Newline

	open := []byte(delimiter + nl)
	if !bytes.HasPrefix(content, open) {
		return Document{Body: content, Style: style}, nil
	}
	rest := content[len(open):]

	// Empty block: the closing delimiter immediately follows the opening one.
	if bytes.HasPrefix(rest, open) {
		return Document{Raw: []byte{}, Body: rest[len(open):], HasFrontmatter: true, Style: style}, nil
	}
	if bytes.Equal(rest, []byte(delimiter)) {
		return Document{Raw: []byte{}, Body: []byte{}, HasFrontmatter: true, Style: style}, nil
	}

	closeSeq := []byte(nl + delimiter + nl)
	if idx := bytes.Index(rest, closeSeq); idx >= 0 {
		return Document{
			Raw:            rest[:idx+len(nl)],
			Body:           rest[idx+len(closeSeq):],
			HasFrontmatter: true,
			Style:          style,
		}, nil
	}

	closeAtEOF := []byte(nl + delimiter)
	if bytes.HasSuffix(rest, closeAtEOF) {
		return Document{
			Raw:            rest[:len(rest)-len(delimiter)],
			Body:           []byte{},
			HasFrontmatter: true,
			Style:          style,
		}, nil
	}
	return Document{Style: style}, ErrMissingClosingDelimiter
}

// Bytes reassembles the document. A document without frontmatter returns
// its body unchanged.
func (d Document) Bytes() []byte {
	if !d.HasFrontmatter {
		return d.Body
	}
	nl := d.Style.Newline
	if nl == "" {
		nl = "\n"
	}
	line := []byte(delimiter + nl)
	out := make([]byte, 0, 2*len(line)+len(d.Raw)+len(d.Body))
	out = append(out, line...)
	out = append(out, d.Raw...)
	out = append(out, line...)
	out = append(out, d.Body...)
	return out
}

// Fields decodes the raw block into a map. An empty block gives an empty map.
func (d Document) Fields() (map[string]any, error) {
	return ParseYAML(d.Raw)
}

// ParseYAML parses raw YAML frontmatter (without --- delimiters) into a map.
func ParseYAML(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return map[string]any{}, nil
	}
	if node.Content[0].Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	fields := map[string]any{}
	if err := node.Content[0].Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func detectStyle(content []byte) Style {
	newline := "\n"
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		newline = "\r\n"
	}
	return Style{
		Newline:            newline,
		HasTrailingNewline: len(content) > 0 && content[len(content)-1] == '\n',
	}
}
