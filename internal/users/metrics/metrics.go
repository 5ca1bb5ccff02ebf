package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Mutations    *prometheus.CounterVec
	BulkAffected *prometheus.CounterVec
	ExportedRows prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_user_mutations_total",
			Help: "Single-user admin changes by kind",
		}, []string{"kind"}),
		BulkAffected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_user_bulk_affected_total",
			Help: "Users touched by bulk operations",
		}, []string{"operation"}),
		ExportedRows: f.NewCounter(prometheus.CounterOpts{
			Name: "coreid_user_exported_rows_total",
			Help: "Users written to CSV exports",
		}),
	}
}

func (m *Metrics) IncrementMutation(kind string) {
	if m != nil {
		m.Mutations.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) AddBulk(operation string, n int) {
	if m != nil {
		m.BulkAffected.WithLabelValues(operation).Add(float64(n))
	}
}

func (m *Metrics) AddExported(n int) {
	if m != nil {
		m.ExportedRows.Add(float64(n))
	}
}
