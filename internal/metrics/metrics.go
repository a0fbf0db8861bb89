// Package metrics exposes search statistics in Prometheus format.
//
// Metrics:
//
//   - gridpath_searches_total{outcome}: searches by outcome.
//   - gridpath_search_expanded_cells: cells expanded per search.
//   - gridpath_search_duration_seconds: wall time per search.
//   - gridpath_path_length_cells: cells on each found route.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/astar"
)

// Collector records search statistics on its own registry, so several
// collectors can coexist in one process (tests, embedded servers).
type Collector struct {
	registry *prometheus.Registry

	searches   *prometheus.CounterVec
	expanded   prometheus.Histogram
	duration   prometheus.Histogram
	pathLength prometheus.Histogram
}

// NewCollector creates and registers all metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total number of searches by outcome",
		}, []string{"outcome"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_expanded_cells",
			Help:    "Cells expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		pathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_path_length_cells",
			Help:    "Number of cells on found routes",
			Buckets: prometheus.ExponentialBuckets(2, 2, 12),
		}),
	}

	c.registry.MustRegister(c.searches, c.expanded, c.duration, c.pathLength)

	return c
}

// Observe records one finished search. pathLen is ignored unless the
// outcome is FoundPath.
func (c *Collector) Observe(outcome astar.Outcome, expanded, pathLen int, elapsed time.Duration) {
	c.searches.WithLabelValues(outcome.String()).Inc()
	c.expanded.Observe(float64(expanded))
	c.duration.Observe(elapsed.Seconds())
	if outcome == astar.FoundPath {
		c.pathLength.Observe(float64(pathLen))
	}
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's metrics in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
