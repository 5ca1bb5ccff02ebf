package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coreid/internal/dashboard/models"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	Stats(ctx context.Context) (*models.Stats, error)
	RecentActivity(ctx context.Context) ([]models.Activity, error)
	Health(ctx context.Context) *models.Health
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", h.handleStats)
		r.Get("/activity", h.handleActivity)
		r.Get("/health", h.handleHealth)
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st, err := h.service.Stats(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load dashboard stats", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	feed, err := h.service.RecentActivity(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load recent activity", err)
		return
	}
	if feed == nil {
		feed = []models.Activity{}
	}
	httputil.WriteJSON(w, http.StatusOK, feed)
}

// handleHealth answers 503 when the database is unreachable.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health(r.Context())
	status := http.StatusOK
	if health.DBStatus != models.DBHealthy {
		status = http.StatusServiceUnavailable
	}
	httputil.WriteJSON(w, status, health)
}
