package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docnav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageDuration      *prom.HistogramVec
	buildDuration      prom.Histogram
	stageResults       *prom.CounterVec
	buildOutcome       *prom.CounterVec
	groups             prom.Gauge
	bucketEntries      *prom.GaugeVec
	frontmatterRecords prom.Gauge
	rebuildTriggers    *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		groups: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "groups",
			Help:      "Document groups discovered by the last build",
		}),
		bucketEntries: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "bucket_entries",
			Help:      "Entries per bucket in the last build",
		}, []string{"bucket"}),
		frontmatterRecords: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "frontmatter_records",
			Help:      "Frontmatter records produced by the last build",
		}),
		rebuildTriggers: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "rebuild_triggers_total",
			Help:      "Rebuilds requested in watch mode by trigger",
		}, []string{"reason"}),
	}
	reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.stageResults, pr.buildOutcome,
		pr.groups, pr.bucketEntries, pr.frontmatterRecords, pr.rebuildTriggers)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome BuildOutcomeLabel) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetGroups(n int) {
	if p == nil {
		return
	}
	p.groups.Set(float64(n))
}

func (p *PrometheusRecorder) SetBucketEntries(bucket string, n int) {
	if p == nil {
		return
	}
	p.bucketEntries.WithLabelValues(bucket).Set(float64(n))
}

func (p *PrometheusRecorder) SetFrontmatterRecords(n int) {
	if p == nil {
		return
	}
	p.frontmatterRecords.Set(float64(n))
}

func (p *PrometheusRecorder) IncRebuildTrigger(reason string) {
	if p == nil {
		return
	}
	p.rebuildTriggers.WithLabelValues(reason).Inc()
}
