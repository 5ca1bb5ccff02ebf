package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coreid/internal/admin/models"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	Me(ctx context.Context) (*models.Me, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/me", h.handleMe)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	me, err := h.service.Me(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to describe caller", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, me)
}
