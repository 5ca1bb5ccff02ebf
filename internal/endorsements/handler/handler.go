package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coreid/internal/endorsements/models"
	"coreid/pkg/backend"
	"coreid/pkg/listing"
	"coreid/pkg/platform/httputil"
)

// Service defines the endorsement operations exposed over HTTP.
type Service interface {
	List(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.Endorsement], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Endorsement, error)
	Approve(ctx context.Context, id uuid.UUID) (*models.Endorsement, error)
	Reject(ctx context.Context, id uuid.UUID) (*models.Endorsement, error)
	Flag(ctx context.Context, id uuid.UUID) (*models.Endorsement, error)
	StatusCounts(ctx context.Context) (models.StatusCounts, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the endorsement routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/endorsements", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/stats", h.handleStats)
		r.Get("/{id}", h.handleGet)
		r.Post("/{id}/approve", h.moderate(h.service.Approve, "approve"))
		r.Post("/{id}/reject", h.moderate(h.service.Reject, "reject"))
		r.Post("/{id}/flag", h.moderate(h.service.Flag, "flag"))
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filters := models.Filters{Search: r.URL.Query().Get("search")}
	for _, st := range backend.ActiveValues(httputil.QueryList(r, "status")) {
		filters.Status = append(filters.Status, models.Status(st))
	}

	page, err := h.service.List(ctx, filters, httputil.PaginationFromQuery(r))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list endorsements", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing.View(page))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	counts, err := h.service.StatusCounts(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to count endorsements", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"total":    counts.Total(),
		"byStatus": counts,
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	e, err := h.service.Get(ctx, id)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to get endorsement", err, "endorsement_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) moderate(fn func(context.Context, uuid.UUID) (*models.Endorsement, error), verb string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := httputil.URLParamUUID(r, "id")
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		e, err := fn(ctx, id)
		if err != nil {
			httputil.LogAndWriteError(ctx, w, h.logger, "failed to "+verb+" endorsement", err, "endorsement_id", id)
			return
		}
		h.logger.InfoContext(ctx, "endorsement moderated",
			"endorsement_id", id,
			"status", string(e.VerificationStatus),
		)
		httputil.WriteJSON(w, http.StatusOK, e)
	}
}
