package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSequenceMetrics() {
	r.SequencesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyrelay_sequences_total",
			Help: "Total number of input sequences scored",
		},
		[]string{"levels", "status"},
	)

	r.SequenceDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "keyrelay_sequence_duration_seconds",
			Help:    "Time to score one sequence in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"levels"},
	)
}
