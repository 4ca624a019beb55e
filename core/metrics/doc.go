// Package metrics records the outcome of a provisioning run with Prometheus
// collectors. A run is a one-shot process, so metrics are written to a text
// file at the end instead of being served.
package metrics
