// SPDX-License-Identifier: MIT

package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magnitude/distance"
	"github.com/katalvlaran/magnitude/magnitude"
)

func newWired(t *testing.T, opts ...magnitude.Option) (*Collector, *magnitude.Engine, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	col, err := NewCollector(reg)
	require.NoError(t, err)
	edit, err := distance.NewEdit(distance.WithCacheObserver(col))
	require.NoError(t, err)
	opts = append([]magnitude.Option{magnitude.WithDistance(edit), magnitude.WithObserver(col)}, opts...)
	eng, err := magnitude.New(opts...)
	require.NoError(t, err)

	return col, eng, reg
}

func TestCollector_Compute(t *testing.T) {
	col, eng, _ := newWired(t)
	items := []string{"abc", "abd", "xyz"}

	_, err := eng.Compute(items, false)
	require.NoError(t, err)
	assert.Equal(t, 3.0, testutil.ToFloat64(col.cacheMisses))
	assert.Equal(t, 0.0, testutil.ToFloat64(col.cacheHits))

	_, err = eng.Compute(items, false)
	require.NoError(t, err)
	assert.Equal(t, 3.0, testutil.ToFloat64(col.cacheHits))

	assert.Equal(t, 2.0, testutil.ToFloat64(col.computations.WithLabelValues(magnitude.OpCompute, "false")))
	assert.Equal(t, 0.0, testutil.ToFloat64(col.fallbacks))
	assert.Equal(t, 1, testutil.CollectAndCount(col.computeDuration))
}

func TestCollector_Fallback(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := NewCollector(reg)
	require.NoError(t, err)
	eng, err := magnitude.New(
		magnitude.WithDistance(distance.Func(func(string, string) float64 { return 0 })),
		magnitude.WithRegularization(0),
		magnitude.WithObserver(col),
	)
	require.NoError(t, err)

	res, err := eng.Compute([]string{"a", "b"}, false)
	require.NoError(t, err)
	require.True(t, res.Fallback)
	assert.Equal(t, 1.0, testutil.ToFloat64(col.fallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.computations.WithLabelValues(magnitude.OpCompute, "true")))
}

func TestCollector_Selection(t *testing.T) {
	col, eng, reg := newWired(t)

	_, _, err := eng.SelectDiverseSubset([]string{"aaa", "aab", "bbb", "bbc"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(col.selections))
	assert.Greater(t, testutil.ToFloat64(col.computations.WithLabelValues(magnitude.OpIncremental, "false")), 0.0)

	expected := `
# HELP magnitude_selections_total Diverse subset selections.
# TYPE magnitude_selections_total counter
magnitude_selections_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "magnitude_selections_total"))
}

func TestCollector_DirectCalls(t *testing.T) {
	col, err := NewCollector(nil)
	require.NoError(t, err)

	col.ObserveCompute(magnitude.OpIncremental, 4, time.Millisecond, true)
	col.ObserveSelection(10, 3, time.Millisecond)
	col.CacheHit()
	col.CacheMiss()
	col.CacheMiss()

	assert.Equal(t, 1.0, testutil.ToFloat64(col.computations.WithLabelValues(magnitude.OpIncremental, "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.fallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.cacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(col.cacheMisses))
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics: register")
}
