package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CacheLookups *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Metrics{
		CacheLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_analytics_cache_lookups_total",
			Help: "Analytics overview cache lookups, by page and result",
		}, []string{"page", "result"}),
	}
}

func (m *Metrics) IncrementCache(page, result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(page, result).Inc()
}
