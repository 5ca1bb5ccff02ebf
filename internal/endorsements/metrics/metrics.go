package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Moderations *prometheus.CounterVec
	Listed      prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Moderations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_endorsement_moderations_total",
			Help: "Endorsement status changes made by admins",
		}, []string{"status"}),
		Listed: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "coreid_endorsement_list_rows",
			Help:    "Rows returned per endorsement list page",
			Buckets: []float64{0, 5, 10, 25, 50, 100, 250},
		}),
	}
}

func (m *Metrics) IncrementModeration(status string) {
	if m == nil {
		return
	}
	m.Moderations.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveListed(n int) {
	if m == nil {
		return
	}
	m.Listed.Observe(float64(n))
}
