package build

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// Report summarizes one run.
type Report struct {
	BuildID        string                      `json:"build_id"`
	Start          time.Time                   `json:"start"`
	End            time.Time                   `json:"end"`
	Outcome        metrics.BuildOutcomeLabel   `json:"outcome"`
	Groups         int                         `json:"groups"`
	Entries        int                         `json:"entries"`
	Buckets        map[string]int              `json:"buckets"`
	Records        int                         `json:"records"`
	StageDurations map[StageName]time.Duration `json:"stage_durations"`
	SkippedStages  []StageName                 `json:"skipped_stages,omitempty"`
	Outputs        []string                    `json:"outputs"`
	Error          string                      `json:"error,omitempty"`
}

func newReport(id string, start time.Time) *Report {
	return &Report{
		BuildID:        id,
		Start:          start,
		Buckets:        map[string]int{},
		StageDurations: map[StageName]time.Duration{},
		Outputs:        []string{},
	}
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	if r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}

func (r *Report) finish(outcome metrics.BuildOutcomeLabel, err error) {
	r.End = time.Now()
	r.Outcome = outcome
	if err != nil {
		r.Error = err.Error()
	}
}

// Summary renders a short human readable description of the run.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "build %s: %s in %s\n", r.BuildID, r.Outcome, r.Duration().Round(time.Millisecond))
	fmt.Fprintf(&b, "groups=%d entries=%d records=%d\n", r.Groups, r.Entries, r.Records)

	keys := make([]string, 0, len(r.Buckets))
	for k := range r.Buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, r.Buckets[k]))
	}
	if len(parts) > 0 {
		fmt.Fprintf(&b, "buckets: %s\n", strings.Join(parts, " "))
	}
	for _, o := range r.Outputs {
		fmt.Fprintf(&b, "wrote %s\n", o)
	}
	if r.Error != "" {
		fmt.Fprintf(&b, "error: %s\n", r.Error)
	}
	return b.String()
}
