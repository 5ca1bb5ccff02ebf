package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HealthScore  prometheus.Gauge
	CacheLookups *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Metrics{
		HealthScore: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "coreid_revenue_health_score",
			Help: "Revenue health score computed by the last dashboard load",
		}),
		CacheLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_revenue_cache_lookups_total",
			Help: "Revenue dashboard cache lookups, by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) SetHealthScore(score int) {
	if m == nil {
		return
	}
	m.HealthScore.Set(float64(score))
}

func (m *Metrics) IncrementCache(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
