// Package middleware limits anonymous traffic per client IP.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"coreid/internal/ratelimit/metrics"
	"coreid/internal/ratelimit/models"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/httputil"
	"coreid/pkg/requestcontext"
)

// Limiter is implemented by the in-memory and Redis stores.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error)
}

type Middleware struct {
	limiter Limiter
	limit   int
	window  time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Middleware)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Middleware) {
		m.logger = logger
	}
}

func WithMetrics(metrics *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = metrics
	}
}

// New allows limit requests per window for each client IP. A limit below one
// disables the check.
func New(limiter Limiter, limit int, window time.Duration, opts ...Option) *Middleware {
	m := &Middleware{
		limiter: limiter,
		limit:   limit,
		window:  window,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handler fails open: a store error lets the request through.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	if m.limit < 1 || m.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)
		if ip == "" {
			ip = "unknown"
		}

		result, err := m.limiter.Allow(ctx, models.Key(ip), m.limit, m.window)
		if err != nil {
			m.metrics.IncrementCheckFailure()
			m.logger.WarnContext(ctx, "rate limit check failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
			next.ServeHTTP(w, r)
			return
		}

		addHeaders(w, result)
		if !result.Allowed {
			m.metrics.IncrementRejected()
			writeExceeded(w, result)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func addHeaders(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeExceeded(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.ExceededResponse{
		Error:      string(dErrors.CodeRateLimit),
		Message:    "Too many requests. Please wait a moment and try again.",
		RetryAfter: result.RetryAfter,
	})
}
