package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Invitations *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Metrics{
		Invitations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_admin_invitations_total",
			Help: "Admin invitation events, by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncrementInvite(outcome string) {
	if m == nil {
		return
	}
	m.Invitations.WithLabelValues(outcome).Inc()
}
