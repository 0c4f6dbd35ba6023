package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCacheMetrics() {
	r.CacheLookupsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyrelay_cache_lookups_total",
			Help: "Total number of level-cost cache lookups",
		},
		[]string{"result"},
	)

	r.CacheEntries = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "keyrelay_cache_entries",
			Help: "Number of memoized (from, to, level) costs",
		},
	)
}
