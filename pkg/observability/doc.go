// Package observability adapts engine lifecycle hooks to Prometheus
// collectors.
package observability
