// Package metrics exposes Prometheus collectors for the sync worker and the
// marketplace client. Collectors are registered lazily on first use and served
// by Handler at /metrics.
package metrics
