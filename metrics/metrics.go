// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/magnitude/distance"
	"github.com/katalvlaran/magnitude/magnitude"
)

// Namespace prefixes every metric name.
const Namespace = "magnitude"

var (
	_ magnitude.Observer     = (*Collector)(nil)
	_ distance.CacheObserver = (*Collector)(nil)
)

// Collector holds the engine and cache instruments.
type Collector struct {
	computations    *prometheus.CounterVec
	computeDuration *prometheus.HistogramVec
	fallbacks       prometheus.Counter
	setSize         prometheus.Histogram

	selections        prometheus.Counter
	selectionDuration prometheus.Histogram
	selectedItems     prometheus.Histogram

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewCollector builds a Collector and registers it on reg. A nil reg gets a
// fresh private registry.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	sizeBuckets := prometheus.ExponentialBuckets(1, 2, 10)

	c := &Collector{
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "computations_total",
			Help:      "Magnitude computations by operation and fallback.",
		}, []string{"op", "fallback"}),
		computeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "compute_duration_seconds",
			Help:      "Time spent computing one magnitude.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"op"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "uniform_fallbacks_total",
			Help:      "Solves that fell back to uniform weights.",
		}),
		setSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "set_size",
			Help:      "Number of items per magnitude computation.",
			Buckets:   sizeBuckets,
		}),
		selections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "selections_total",
			Help:      "Diverse subset selections.",
		}),
		selectionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "selection_duration_seconds",
			Help:      "Time spent in one diverse subset selection.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		selectedItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "selected_items",
			Help:      "Items returned per selection.",
			Buckets:   sizeBuckets,
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "edit_cache",
			Name:      "hits_total",
			Help:      "Edit distance memo hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "edit_cache",
			Name:      "misses_total",
			Help:      "Edit distance memo misses.",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.computations, c.computeDuration, c.fallbacks, c.setSize,
		c.selections, c.selectionDuration, c.selectedItems,
		c.cacheHits, c.cacheMisses,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObserveCompute implements magnitude.Observer.
func (c *Collector) ObserveCompute(op string, items int, elapsed time.Duration, fallback bool) {
	c.computations.WithLabelValues(op, strconv.FormatBool(fallback)).Inc()
	c.computeDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	c.setSize.Observe(float64(items))
	if fallback {
		c.fallbacks.Inc()
	}
}

// ObserveSelection implements magnitude.Observer.
func (c *Collector) ObserveSelection(_, selected int, elapsed time.Duration) {
	c.selections.Inc()
	c.selectionDuration.Observe(elapsed.Seconds())
	c.selectedItems.Observe(float64(selected))
}

// CacheHit implements distance.CacheObserver.
func (c *Collector) CacheHit() { c.cacheHits.Inc() }

// CacheMiss implements distance.CacheObserver.
func (c *Collector) CacheMiss() { c.cacheMisses.Inc() }
