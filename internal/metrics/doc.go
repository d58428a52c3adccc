// Package metrics records build observations for docnav.
//
// Components receive a Recorder and never check whether metrics are enabled:
// NoopRecorder is the default and PrometheusRecorder is swapped in when
// monitoring.metrics.enabled is set. The watch command serves the registry
// through HTTPHandler.
package metrics
