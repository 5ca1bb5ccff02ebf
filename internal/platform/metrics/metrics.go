package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the process-wide HTTP metrics. Module metrics live with
// their module.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	InFlight        prometheus.Gauge
	BackendErrors   *prometheus.CounterVec
}

// New creates and registers the HTTP metrics with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "coreid_http_request_duration_seconds",
			Help:    "Duration of admin API requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),
		InFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "coreid_http_requests_in_flight",
			Help: "Admin API requests currently being served",
		}),
		BackendErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coreid_backend_errors_total",
			Help: "Errors returned to callers, by error code",
		}, []string{"code"}),
	}
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

// IncrementBackendError counts an error response by code.
func (m *Metrics) IncrementBackendError(code string) {
	m.BackendErrors.WithLabelValues(code).Inc()
}
