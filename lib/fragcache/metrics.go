package fragcache

import "github.com/prometheus/client_golang/prometheus"

// cacheMetrics holds the Prometheus instruments for cache operations.
// All Cache methods go through the nil-tolerant helpers below, so a
// cache built without WithMetrics pays nothing.
type cacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	sets      prometheus.Counter
	evictions prometheus.Counter
	size      prometheus.Gauge
}

// WithMetrics registers hit/miss/set/eviction counters and a size gauge
// with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Cache) { c.metrics = newCacheMetrics(reg) }
}

func newCacheMetrics(reg prometheus.Registerer) *cacheMetrics {
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "facet",
			Subsystem: "fragcache",
			Name:      "hits_total",
			Help:      "Total number of fragment cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "facet",
			Subsystem: "fragcache",
			Name:      "misses_total",
			Help:      "Total number of fragment cache misses",
		}),
		sets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "facet",
			Subsystem: "fragcache",
			Name:      "sets_total",
			Help:      "Total number of fragment cache set operations",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "facet",
			Subsystem: "fragcache",
			Name:      "evictions_total",
			Help:      "Total number of fragment cache evictions",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "facet",
			Subsystem: "fragcache",
			Name:      "size",
			Help:      "Current number of entries in the fragment cache",
		}),
	}
	reg.MustRegister(m.hits, m.misses, m.sets, m.evictions, m.size)
	return m
}

func (m *cacheMetrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *cacheMetrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *cacheMetrics) set(size int) {
	if m != nil {
		m.sets.Inc()
		m.size.Set(float64(size))
	}
}

func (m *cacheMetrics) evicted(n, size int) {
	if m != nil {
		m.evictions.Add(float64(n))
		m.size.Set(float64(size))
	}
}
