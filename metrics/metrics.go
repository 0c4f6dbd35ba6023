package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/keyrelay/relay"
)

// Label values for keyrelay_cache_lookups_total and keyrelay_sequences_total.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"

	StatusOK        = "ok"
	StatusMalformed = "malformed"
	StatusError     = "error"
)

var _ relay.Observer = (*Registry)(nil)

// CacheLookup counts a memo lookup as a hit or a miss
func (r *Registry) CacheLookup(hit bool) {
	if hit {
		r.CacheLookupsTotal.WithLabelValues(ResultHit).Inc()
		return
	}
	r.CacheLookupsTotal.WithLabelValues(ResultMiss).Inc()
}

// CacheSize records the current number of memo entries
func (r *Registry) CacheSize(entries int) {
	r.CacheEntries.Set(float64(entries))
}

// SequenceScored records one scored line and how long it took
func (r *Registry) SequenceScored(levels int, elapsed time.Duration, err error) {
	lv := strconv.Itoa(levels)
	r.SequencesTotal.WithLabelValues(lv, statusOf(err)).Inc()
	r.SequenceDuration.WithLabelValues(lv).Observe(elapsed.Seconds())
}

// WriteTextfile dumps the registry in the Prometheus text exposition format,
// suitable for the node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, relay.ErrMalformedSequence):
		return StatusMalformed
	default:
		return StatusError
	}
}
