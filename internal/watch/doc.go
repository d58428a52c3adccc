// Package watch keeps generated navigation current while documents are
// edited. Filesystem events are debounced into rebuild requests; a single
// worker runs builds one at a time and folds requests that arrive during a
// build into one follow-up build. An optional periodic rebuild and a
// Prometheus endpoint run alongside.
package watch
