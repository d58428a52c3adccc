package nav

import (
	"encoding/json"
	"fmt"
)

// Sidebar maps a group route prefix ("/<group>/") to its item list.
type Sidebar map[string][]SidebarItem

// SidebarItem is a link (Items == nil) or a section holding other items.
// A section with a non-nil empty Items slice still encodes "items": [].
type SidebarItem struct {
	Text      string
	Link      string
	Collapsed *bool
	Items     []SidebarItem
}

type sidebarLeaf struct {
	Text      string `json:"text" yaml:"text"`
	Link      string `json:"link,omitempty" yaml:"link,omitempty"`
	Collapsed *bool  `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
}

type sidebarSection struct {
	Text      string        `json:"text" yaml:"text"`
	Link      string        `json:"link,omitempty" yaml:"link,omitempty"`
	Collapsed *bool         `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items     []SidebarItem `json:"items" yaml:"items"`
}

func (s SidebarItem) encodable() any {
	if s.Items == nil {
		return sidebarLeaf{Text: s.Text, Link: s.Link, Collapsed: s.Collapsed}
	}
	return sidebarSection{Text: s.Text, Link: s.Link, Collapsed: s.Collapsed, Items: s.Items}
}

// MarshalJSON implements json.Marshaler.
func (s SidebarItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.encodable())
}

// MarshalYAML implements yaml.Marshaler.
func (s SidebarItem) MarshalYAML() (any, error) {
	return s.encodable(), nil
}

// Group is one classified topic directory.
type Group struct {
	Name     string     `json:"name" yaml:"name"`
	Title    string     `json:"title" yaml:"title"`
	Detailed bool       `json:"detailed" yaml:"detailed"`
	Entries  []DocEntry `json:"entries" yaml:"entries"`
}

// SectionText formats a detailed-mode section label.
func SectionText(icon, label string, count int) string {
	if icon == "" {
		return fmt.Sprintf("%s * %d", label, count)
	}
	return fmt.Sprintf("%s %s * %d", icon, label, count)
}

// GroupItems renders the item list of one group: five sections in detailed
// mode, a flat list otherwise.
func GroupItems(g Group, opts Options) []SidebarItem {
	if g.Detailed {
		return detailedItems(g.Entries, opts)
	}
	return flatItems(g.Entries)
}

func detailedItems(entries []DocEntry, opts Options) []SidebarItem {
	sections := make(map[Bucket][]SidebarItem, len(DetailedOrder))
	for _, b := range DetailedOrder {
		sections[b] = []SidebarItem{}
	}

	var index []SidebarItem
	for _, e := range entries {
		if e.Bucket == BucketIndex {
			// Each index entry is unshifted, so a later one lands first.
			index = append([]SidebarItem{{Text: opts.IndexTitle, Link: e.Link}}, index...)
			continue
		}
		sections[e.Bucket] = append(sections[e.Bucket], SidebarItem{Text: e.Title, Link: e.Link})
	}
	if len(index) > 0 {
		sections[BucketEasy] = append(index, sections[BucketEasy]...)
	}

	out := make([]SidebarItem, 0, len(DetailedOrder))
	for _, b := range DetailedOrder {
		items := sections[b]
		collapsed := opts.Collapsed
		out = append(out, SidebarItem{
			Text:      SectionText(opts.Icons[b.String()], opts.Labels[b.String()], len(items)),
			Collapsed: &collapsed,
			Items:     items,
		})
	}
	return out
}

func flatItems(entries []DocEntry) []SidebarItem {
	out := make([]SidebarItem, 0, len(entries))
	for _, e := range entries {
		item := SidebarItem{Text: e.Title, Link: e.Link}
		if e.Bucket == BucketIndex {
			out = append([]SidebarItem{item}, out...)
			continue
		}
		out = append(out, item)
	}
	return out
}

// BuildSidebar renders the sidebar of every group. Each route holds a single
// wrapper item titled after the group.
func BuildSidebar(groups []Group, opts Options) Sidebar {
	sb := make(Sidebar, len(groups))
	for _, g := range groups {
		sb[GroupLink(g.Name)] = []SidebarItem{{Text: g.Title, Items: GroupItems(g, opts)}}
	}
	return sb
}
