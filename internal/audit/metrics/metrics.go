package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Logged       *prometheus.CounterVec
	Cleanups     *prometheus.CounterVec
	ExportedRows prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Logged: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_audit_events_logged_total",
			Help: "Audit events written, by resource type and status",
		}, []string{"resource_type", "status"}),
		Cleanups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_audit_cleanups_total",
			Help: "Audit log retention runs, by outcome",
		}, []string{"outcome"}),
		ExportedRows: f.NewCounter(prometheus.CounterOpts{
			Name: "coreid_audit_exported_rows_total",
			Help: "Audit log rows rendered into CSV exports",
		}),
	}
}

func (m *Metrics) IncrementLogged(resourceType, status string) {
	if m == nil {
		return
	}
	m.Logged.WithLabelValues(resourceType, status).Inc()
}

func (m *Metrics) IncrementCleanup(ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.Cleanups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AddExported(n int) {
	if m == nil {
		return
	}
	m.ExportedRows.Add(float64(n))
}
