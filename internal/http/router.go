// Package httpapi assembles the console API: shared middleware, the admin,
// session and public route groups, and the operational endpoints.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"coreid/internal/platform/metrics"
	"coreid/internal/platform/middleware"
	"coreid/pkg/platform/httputil"
	"coreid/pkg/platform/middleware/admin"
	"coreid/pkg/platform/middleware/requesttime"
)

const defaultRequestTimeout = 60 * time.Second

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// RegistrarFunc adapts a method such as RegisterPublic to Registrar.
type RegistrarFunc func(r chi.Router)

func (f RegistrarFunc) Register(r chi.Router) { f(r) }

// Auth verifies callers for the protected groups.
type Auth struct {
	Sessions middleware.SessionValidator
	Admins   middleware.AdminDirectory
	Machine  *admin.TokenVerifier
}

// Routes groups handlers by who may call them.
type Routes struct {
	// Admin routes require an active admin or the machine token.
	Admin []Registrar
	// Session routes require any valid session, admin or not.
	Session []Registrar
	Public  []Registrar
}

// Options configures NewRouter.
type Options struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
	// PublicMiddleware wraps only the public group, typically a rate limiter.
	PublicMiddleware []func(http.Handler) http.Handler
	// AdminMiddleware runs after admin authentication, so it sees the caller.
	AdminMiddleware []func(http.Handler) http.Handler
	// Health answers GET /health; it defaults to a static 200.
	Health http.HandlerFunc
}

func NewRouter(auth Auth, routes Routes, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(logger, opts.Metrics))

	health := opts.Health
	if health == nil {
		health = func(w http.ResponseWriter, _ *http.Request) {
			httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		}
	}
	r.Get("/health", health)
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))
		r.Use(opts.PublicMiddleware...)
		for _, reg := range routes.Public {
			reg.Register(r)
		}
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))
		r.Use(middleware.RequireSession(auth.Sessions, logger))
		for _, reg := range routes.Session {
			reg.Register(r)
		}
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))
		r.Use(middleware.RequireAdmin(auth.Sessions, auth.Admins, auth.Machine, logger))
		r.Use(opts.AdminMiddleware...)
		for _, reg := range routes.Admin {
			reg.Register(r)
		}
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	})
	return r
}
