package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func family(t *testing.T, reg *prom.Registry, name string) *dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric family %s not found", name)
	return nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveStageDuration("build_navigation", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncStageResult("build_navigation", ResultSuccess)
	pr.IncBuildOutcome(BuildOutcomeSuccess)
	pr.IncBuildOutcome(BuildOutcomeSuccess)
	pr.SetGroups(3)
	pr.SetBucketEntries("easy", 4)
	pr.SetBucketEntries("hard", 1)
	pr.SetFrontmatterRecords(7)
	pr.IncRebuildTrigger("fsnotify")

	outcomes := family(t, reg, "docnav_build_outcomes_total")
	require.Len(t, outcomes.GetMetric(), 1)
	require.InDelta(t, 2, outcomes.GetMetric()[0].GetCounter().GetValue(), 0)

	require.InDelta(t, 3, family(t, reg, "docnav_groups").GetMetric()[0].GetGauge().GetValue(), 0)
	require.InDelta(t, 7, family(t, reg, "docnav_frontmatter_records").GetMetric()[0].GetGauge().GetValue(), 0)

	buckets := family(t, reg, "docnav_bucket_entries")
	got := map[string]float64{}
	for _, m := range buckets.GetMetric() {
		got[labelValue(m, "bucket")] = m.GetGauge().GetValue()
	}
	require.Equal(t, map[string]float64{"easy": 4, "hard": 1}, got)

	stages := family(t, reg, "docnav_stage_duration_seconds")
	require.Equal(t, uint64(1), stages.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	require.NotPanics(t, func() {
		pr.ObserveBuildDuration(time.Second)
		pr.SetGroups(1)
		pr.IncRebuildTrigger("schedule")
	})
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	require.NotPanics(t, func() {
		r.ObserveStageDuration("write_outputs", time.Millisecond)
		r.IncBuildOutcome(BuildOutcomeFailed)
		r.SetBucketEntries("utility", 2)
	})
}

func TestHTTPHandler_ServesRegistry(t *testing.T) {
	reg := NewRegistry()
	NewPrometheusRecorder(reg).SetGroups(2)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "docnav_groups 2")
	require.Contains(t, string(body), "go_goroutines")
}
