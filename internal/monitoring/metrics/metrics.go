package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Recorded   *prometheus.CounterVec
	QueueDepth prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Recorded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_monitoring_requests_recorded_total",
			Help: "Admin API requests handed to the api_metrics recorder, by result",
		}, []string{"result"}),
		QueueDepth: f.NewGauge(prometheus.GaugeOpts{
			Name: "coreid_monitoring_recorder_queue_depth",
			Help: "Request metrics waiting to be written",
		}),
	}
}

func (m *Metrics) IncrementRecorded(result string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.Recorded.WithLabelValues(result).Add(float64(n))
}

func (m *Metrics) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(n))
}
