// SPDX-License-Identifier: MIT

// Package metrics exports Prometheus instruments for the magnitude engine
// and the edit-distance cache.
//
// A Collector registers its instruments on a caller-supplied registry; no
// global state is touched. It satisfies both magnitude.Observer and
// distance.CacheObserver, so one value can be handed to both:
//
//	reg := prometheus.NewRegistry()
//	col, _ := metrics.NewCollector(reg)
//	edit, _ := distance.NewEdit(distance.WithCacheObserver(col))
//	eng, _ := magnitude.New(magnitude.WithDistance(edit), magnitude.WithObserver(col))
package metrics
