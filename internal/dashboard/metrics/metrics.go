package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CacheLookups *prometheus.CounterVec
	DBLatency    prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_dashboard_cache_lookups_total",
			Help: "Dashboard stats cache lookups, by result",
		}, []string{"result"}),
		DBLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "coreid_dashboard_db_ping_seconds",
			Help:    "Database round trip measured by the health check",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
	}
}

func (m *Metrics) IncrementCache(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveDBLatency(d time.Duration) {
	if m == nil {
		return
	}
	m.DBLatency.Observe(d.Seconds())
}
