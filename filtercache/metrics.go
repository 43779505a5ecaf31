package filtercache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the cache's Prometheus counters. They register on the
// default registry once per process, however many Cache instances
// exist.
type Metrics struct {
	// Queries counts lookups by outcome: maybe or absent.
	Queries *prometheus.CounterVec

	// Hits and Misses count reader cache lookups.
	Hits   prometheus.Counter
	Misses prometheus.Counter

	// Degraded counts lookups answered as potential matches because
	// the filter block could not be fetched, verified, or parsed.
	Degraded prometheus.Counter
}

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// GetMetrics returns the process-wide cache metrics, registering them
// on first use.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = newMetrics()
	})
	return globalMetrics
}

func newMetrics() *Metrics {
	return &Metrics{
		Queries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tablefilter_filtercache_queries_total",
				Help: "The total number of filter lookups by outcome",
			},
			[]string{"outcome"}, // maybe, absent
		),
		Hits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tablefilter_filtercache_hits_total",
				Help: "The total number of lookups served by a cached reader",
			},
		),
		Misses: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tablefilter_filtercache_misses_total",
				Help: "The total number of lookups that fetched a filter block",
			},
		),
		Degraded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tablefilter_filtercache_degraded_total",
				Help: "The total number of lookups degraded to a potential match",
			},
		),
	}
}
