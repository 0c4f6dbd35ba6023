// Package metrics exposes Prometheus instrumentation for the relay solver.
//
// A Registry owns a private prometheus.Registry, so several solvers (or
// tests) can run side by side without colliding on the global default
// registerer. Registry implements relay.Observer and is installed with
// relay.WithObserver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every collector exported by keyrelay.
type Registry struct {
	// Cache metrics
	CacheLookupsTotal *prometheus.CounterVec
	CacheEntries      prometheus.Gauge

	// Sequence metrics
	SequencesTotal   *prometheus.CounterVec
	SequenceDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initCacheMetrics()
	r.initSequenceMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
