package drafts

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"
)

// TagCount is the number of records carrying one tag.
type TagCount struct {
	TagText string `json:"tagText" yaml:"tagText"`
	TagNum  int    `json:"tagNum" yaml:"tagNum"`
}

// TimelineEntry places one record on the timeline.
type TimelineEntry struct {
	Date     string `json:"date" yaml:"date"`
	DocsName string `json:"docsName" yaml:"docsName"`
	Link     string `json:"link" yaml:"link"`
}

// Summary aggregates records for tag clouds and timelines.
type Summary struct {
	Tags     []TagCount      `json:"tags" yaml:"tags"`
	Timeline []TimelineEntry `json:"timeLineData" yaml:"timeLineData"`
}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
}

// ParseDate accepts the date spellings found in frontmatter.
func ParseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// Summarize counts tags (descending count, then text) and builds a timeline
// (newest first, then name). Records without a parsable date stay off the
// timeline.
func Summarize(records []Record) Summary {
	counts := map[string]int{}
	timeline := make([]TimelineEntry, 0, len(records))
	times := map[int]time.Time{}

	for _, r := range records {
		seen := map[string]bool{}
		for _, tag := range tagsOf(r.Fields[FieldTags]) {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
		}
		t, ok := ParseDate(r.Fields[FieldDate])
		if !ok {
			continue
		}
		times[len(timeline)] = t
		timeline = append(timeline, TimelineEntry{
			Date:     t.Format(time.DateOnly),
			DocsName: docsName(r),
			Link:     r.Link(),
		})
	}

	tags := make([]TagCount, 0, len(counts))
	for text, n := range counts {
		tags = append(tags, TagCount{TagText: text, TagNum: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].TagNum != tags[j].TagNum {
			return tags[i].TagNum > tags[j].TagNum
		}
		return tags[i].TagText < tags[j].TagText
	})

	idx := make([]int, len(timeline))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ta, tb := times[idx[a]], times[idx[b]]
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return timeline[idx[a]].DocsName < timeline[idx[b]].DocsName
	})
	sorted := make([]TimelineEntry, len(timeline))
	for i, j := range idx {
		sorted[i] = timeline[j]
	}

	return Summary{Tags: tags, Timeline: sorted}
}

func tagsOf(v any) []string {
	var out []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	switch t := v.(type) {
	case string:
		for _, part := range strings.Split(t, ",") {
			add(part)
		}
	case []any:
		for _, item := range t {
			add(fmt.Sprint(item))
		}
	case []string:
		for _, item := range t {
			add(item)
		}
	}
	return out
}

func docsName(r Record) string {
	if s, ok := r.Fields[FieldTitle].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	base := path.Base(r.Path)
	return strings.TrimSuffix(base, path.Ext(base))
}
