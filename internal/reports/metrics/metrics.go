package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Exports     *prometheus.CounterVec
	ExportBytes prometheus.Histogram
	Generated   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Exports: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_report_exports_total",
			Help: "CSV exports, by kind and where the file went",
		}, []string{"kind", "destination"}),
		ExportBytes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "coreid_report_export_bytes",
			Help:    "Size of rendered exports",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		}),
		Generated: f.NewCounter(prometheus.CounterOpts{
			Name: "coreid_reports_generated_total",
			Help: "Reports queued from templates",
		}),
	}
}

func (m *Metrics) ObserveExport(kind, destination string, size int) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(kind, destination).Inc()
	m.ExportBytes.Observe(float64(size))
}

func (m *Metrics) IncrementGenerated() {
	if m == nil {
		return
	}
	m.Generated.Inc()
}
