package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coreid/internal/projects/models"
	"coreid/pkg/backend"
	"coreid/pkg/listing"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	List(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.Project], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active pending completed archived"`
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{id}", h.handleGet)
		r.Patch("/{id}/status", h.handleUpdateStatus)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filters := models.Filters{
		Search:   r.URL.Query().Get("search"),
		Category: backend.ActiveValues(httputil.QueryList(r, "category")),
	}
	for _, st := range backend.ActiveValues(httputil.QueryList(r, "status")) {
		filters.Status = append(filters.Status, models.Status(st))
	}
	page, err := h.service.List(ctx, filters, httputil.PaginationFromQuery(r))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list projects", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing.View(page))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.Get(ctx, id)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to get project", err, "project_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[updateStatusRequest](w, r, h.logger)
	if !ok {
		return
	}
	p, err := h.service.UpdateStatus(ctx, id, models.Status(req.Status))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to update project status", err, "project_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.Delete(ctx, id); err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to delete project", err, "project_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
