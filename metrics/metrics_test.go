package metrics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keyrelay/relay"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.NotNil(t, r.CacheLookupsTotal)
	assert.NotNil(t, r.CacheEntries)
	assert.NotNil(t, r.SequencesTotal)
	assert.NotNil(t, r.SequenceDuration)
	assert.NotNil(t, r.GetPrometheusRegistry())

	// Two registries never share collectors.
	other := NewRegistry()
	r.CacheSize(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(r.CacheEntries))
	assert.Equal(t, float64(0), testutil.ToFloat64(other.CacheEntries))
}

func TestCacheLookup(t *testing.T) {
	r := NewRegistry()
	r.CacheLookup(true)
	r.CacheLookup(true)
	r.CacheLookup(false)

	hit, err := r.CacheLookupsTotal.GetMetricWithLabelValues(ResultHit)
	require.NoError(t, err)

	var metric dto.Metric
	require.NoError(t, hit.Write(&metric))
	assert.Equal(t, float64(2), metric.Counter.GetValue())
	assert.Equal(t, float64(1), testutil.ToFloat64(r.CacheLookupsTotal.WithLabelValues(ResultMiss)))
}

func TestSequenceScored(t *testing.T) {
	r := NewRegistry()
	r.SequenceScored(2, time.Millisecond, nil)
	r.SequenceScored(2, time.Millisecond, nil)
	r.SequenceScored(2, 0, fmt.Errorf("line 3: %w", relay.ErrMalformedSequence))
	r.SequenceScored(25, 0, errors.New("boom"))

	assert.Equal(t, float64(2), testutil.ToFloat64(r.SequencesTotal.WithLabelValues("2", StatusOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.SequencesTotal.WithLabelValues("2", StatusMalformed)))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.SequencesTotal.WithLabelValues("25", StatusError)))

	obs, err := r.SequenceDuration.GetMetricWithLabelValues("2")
	require.NoError(t, err)
	var metric dto.Metric
	require.NoError(t, obs.(prometheus.Metric).Write(&metric))
	assert.Equal(t, uint64(3), metric.Histogram.GetSampleCount())
}

// TestRegistryAsObserver drives a real scorer through the registry.
func TestRegistryAsObserver(t *testing.T) {
	r := NewRegistry()
	sc := relay.NewScorer(
		relay.NewSolver(relay.WithObserver(r)),
		relay.WithMalformedPolicy(relay.SkipMalformed),
	)

	lines := []string{"029A", "980A", "bad", "179A", "456A", "379A"}
	rep, err := sc.Score(context.Background(), lines, relay.BaselineLevels)
	require.NoError(t, err)
	assert.Equal(t, int64(126384), rep.Total)

	assert.Equal(t, float64(5), testutil.ToFloat64(r.SequencesTotal.WithLabelValues("2", StatusOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.SequencesTotal.WithLabelValues("2", StatusMalformed)))
	assert.Positive(t, testutil.ToFloat64(r.CacheLookupsTotal.WithLabelValues(ResultMiss)))
	assert.Positive(t, testutil.ToFloat64(r.CacheLookupsTotal.WithLabelValues(ResultHit)))
	assert.Equal(t, float64(sc.Solver().Cache().Len()), testutil.ToFloat64(r.CacheEntries))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.CacheLookup(false)
	r.SequenceScored(2, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "keyrelay.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `keyrelay_cache_lookups_total{result="miss"} 1`), out)
	assert.Contains(t, out, `keyrelay_sequences_total{levels="2",status="ok"} 1`)
	assert.Contains(t, out, "keyrelay_sequence_duration_seconds_bucket")

	err = r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "keyrelay.prom"))
	assert.Error(t, err)
}
