package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Rejected   prometheus.Counter
	CheckFails prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Rejected: f.NewCounter(prometheus.CounterOpts{
			Name: "coreid_ratelimit_rejected_total",
			Help: "Public requests refused with 429",
		}),
		CheckFails: f.NewCounter(prometheus.CounterOpts{
			Name: "coreid_ratelimit_check_failures_total",
			Help: "Rate limit checks that failed and let the request through",
		}),
	}
}

func (m *Metrics) IncrementRejected() {
	if m != nil {
		m.Rejected.Inc()
	}
}

func (m *Metrics) IncrementCheckFailure() {
	if m != nil {
		m.CheckFails.Inc()
	}
}
