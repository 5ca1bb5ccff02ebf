// Package recorder samples admin API requests into api_metrics. The
// middleware never blocks a request: metrics are queued and written in
// batches by Run.
package recorder

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"coreid/internal/monitoring/metrics"
	"coreid/internal/monitoring/models"
	"coreid/pkg/requestcontext"
)

const (
	defaultBufferSize = 1024
	defaultBatchSize  = 100
	defaultFlushEvery = 5 * time.Second
	writeTimeout      = 5 * time.Second
)

// Sink persists a batch of metrics.
type Sink interface {
	Record(ctx context.Context, batch []models.APIMetric) error
}

type Recorder struct {
	sink       Sink
	queue      chan models.APIMetric
	batchSize  int
	flushEvery time.Duration
	now        func() time.Time
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

type Option func(*Recorder)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) { r.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Recorder) { r.metrics = m }
}

// WithBuffer sets how many metrics may wait for Run before new ones are
// dropped.
func WithBuffer(size int) Option {
	return func(r *Recorder) {
		if size > 0 {
			r.queue = make(chan models.APIMetric, size)
		}
	}
}

// WithBatch sets the largest insert and the longest a partial batch waits.
func WithBatch(size int, every time.Duration) Option {
	return func(r *Recorder) {
		if size > 0 {
			r.batchSize = size
		}
		if every > 0 {
			r.flushEvery = every
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

func New(sink Sink, opts ...Option) *Recorder {
	r := &Recorder{
		sink:       sink,
		batchSize:  defaultBatchSize,
		flushEvery: defaultFlushEvery,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.queue == nil {
		r.queue = make(chan models.APIMetric, defaultBufferSize)
	}
	return r
}

// Middleware times each request and queues its route pattern, status and
// caller. Machine callers are recorded without a user.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := r.now()
		ww := chimw.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		route := req.URL.Path
		if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m := models.APIMetric{
			Endpoint:       route,
			Method:         req.Method,
			ResponseTimeMS: int(r.now().Sub(start).Milliseconds()),
			StatusCode:     status,
			CreatedAt:      start,
		}
		if id := requestcontext.AdminID(req.Context()); id != uuid.Nil {
			m.UserID = &id
		}
		r.enqueue(req.Context(), m)
	})
}

func (r *Recorder) enqueue(ctx context.Context, m models.APIMetric) {
	select {
	case r.queue <- m:
		r.metrics.SetQueueDepth(len(r.queue))
	default:
		r.metrics.IncrementRecorded("dropped", 1)
		r.logger.DebugContext(ctx, "api metrics buffer full, dropping sample", "endpoint", m.Endpoint)
	}
}

// Run writes queued metrics until ctx is done, then flushes what is left.
func (r *Recorder) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.flushEvery)
	defer ticker.Stop()

	batch := make([]models.APIMetric, 0, r.batchSize)
	for {
		select {
		case <-ctx.Done():
			for drained := false; !drained; {
				select {
				case m := <-r.queue:
					batch = append(batch, m)
				default:
					drained = true
				}
			}
			r.flush(context.Background(), batch)
			return ctx.Err()
		case m := <-r.queue:
			batch = append(batch, m)
			if len(batch) >= r.batchSize {
				batch = r.flush(ctx, batch)
			}
		case <-ticker.C:
			batch = r.flush(ctx, batch)
		}
	}
}

// flush writes batch and returns it emptied. A failed batch is dropped.
func (r *Recorder) flush(ctx context.Context, batch []models.APIMetric) []models.APIMetric {
	if len(batch) == 0 {
		return batch
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()
	if err := r.sink.Record(ctx, batch); err != nil {
		r.metrics.IncrementRecorded("failed", len(batch))
		r.logger.WarnContext(ctx, "failed to write api metrics", "count", len(batch), "error", err)
	} else {
		r.metrics.IncrementRecorded("stored", len(batch))
	}
	r.metrics.SetQueueDepth(len(r.queue))
	return batch[:0]
}
