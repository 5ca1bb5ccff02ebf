package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Updates *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Metrics{
		Updates: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_settings_updates_total",
			Help: "System setting updates, by category and outcome",
		}, []string{"category", "outcome"}),
	}
}

func (m *Metrics) IncrementUpdate(category string, ok bool) {
	if m == nil {
		return
	}
	outcome := "applied"
	if !ok {
		outcome = "rejected"
	}
	m.Updates.WithLabelValues(category, outcome).Inc()
}
