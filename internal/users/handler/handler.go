package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coreid/internal/users/models"
	"coreid/pkg/backend"
	"coreid/pkg/listing"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	List(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.Profile], error)
	Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	SetSuspended(ctx context.Context, userID uuid.UUID, suspended bool) (*models.Profile, error)
	ResetPIN(ctx context.Context, userID uuid.UUID) error
	Update(ctx context.Context, userID uuid.UUID, patch models.Patch) (*models.Profile, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	Search(ctx context.Context, filters models.SearchFilters, sort models.Sort, page, pageSize int) (backend.Page[*models.ManagedUser], error)
	Details(ctx context.Context, userID uuid.UUID) (*models.ManagedUser, error)
	Statistics(ctx context.Context) (*models.Statistics, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
	BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, active bool) (*models.BulkResult, error)
	BulkUpdateVerification(ctx context.Context, ids []uuid.UUID, status string) (*models.BulkResult, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*models.BulkResult, error)
	ExportCSV(ctx context.Context, filters models.SearchFilters) ([]byte, string, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type bulkStatusRequest struct {
	UserIDs  []uuid.UUID `json:"user_ids" validate:"required,min=1,max=1000"`
	IsActive *bool       `json:"is_active" validate:"required"`
}

type bulkVerificationRequest struct {
	UserIDs            []uuid.UUID `json:"user_ids" validate:"required,min=1,max=1000"`
	VerificationStatus string      `json:"verification_status" validate:"required,oneof=pending verified rejected"`
}

type bulkDeleteRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1,max=1000"`
}

// Register mounts the user management routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/search", h.handleSearch)
		r.Get("/statistics", h.handleStatistics)
		r.Get("/filter-options", h.handleFilterOptions)
		r.Get("/export", h.handleExport)
		r.Post("/bulk/status", h.handleBulkStatus)
		r.Post("/bulk/verification", h.handleBulkVerification)
		r.Post("/bulk/delete", h.handleBulkDelete)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Get("/details", h.handleDetails)
			r.Patch("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
			r.Post("/suspend", h.handleSuspend(true))
			r.Post("/reactivate", h.handleSuspend(false))
			r.Post("/reset-pin", h.handleResetPIN)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	from, err := httputil.QueryTime(r, "from")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	to, err := httputil.QueryTime(r, "to")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	filters := models.Filters{
		Search:        q.Get("search"),
		UserType:      q.Get("userType"),
		Status:        backend.ActiveValues(httputil.QueryList(r, "status")),
		Verified:      q.Get("verified"),
		From:          from,
		To:            to,
		IdentityTypes: backend.ActiveValues(httputil.QueryList(r, "identityType")),
	}

	page, err := h.service.List(ctx, filters, httputil.PaginationFromQuery(r))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list users", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing.View(page))
}

func searchFilters(r *http.Request) models.SearchFilters {
	q := r.URL.Query()
	return models.SearchFilters{
		Search:             q.Get("search"),
		UserType:           q.Get("user_type"),
		VerificationStatus: q.Get("verification_status"),
		Country:            q.Get("country"),
		Status:             q.Get("status"),
	}
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sort := models.Sort{
		By:    r.URL.Query().Get("sortBy"),
		Order: strings.ToUpper(r.URL.Query().Get("sortOrder")),
	}
	page, err := h.service.Search(ctx, searchFilters(r), sort,
		httputil.QueryInt(r, "page", 1), httputil.QueryInt(r, "pageSize", 0))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to search users", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing.View(page))
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st, err := h.service.Statistics(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load user statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opts, err := h.service.FilterOptions(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load user filter options", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, opts)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	body, filename, err := h.service.ExportCSV(ctx, searchFilters(r))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to export users", err)
		return
	}
	httputil.WriteCSV(w, filename, body)
}

func (h *Handler) handleBulkStatus(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[bulkStatusRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.service.BulkUpdateStatus(r.Context(), req.UserIDs, *req.IsActive)
	h.writeBulk(w, r, res, err)
}

func (h *Handler) handleBulkVerification(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[bulkVerificationRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.service.BulkUpdateVerification(r.Context(), req.UserIDs, req.VerificationStatus)
	h.writeBulk(w, r, res, err)
}

func (h *Handler) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[bulkDeleteRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.service.BulkDelete(r.Context(), req.UserIDs)
	h.writeBulk(w, r, res, err)
}

func (h *Handler) writeBulk(w http.ResponseWriter, r *http.Request, res *models.BulkResult, err error) {
	if err != nil {
		httputil.LogAndWriteError(r.Context(), w, h.logger, "bulk user operation failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "failed to get user", func(ctx context.Context, id uuid.UUID) (any, error) {
		return h.service.Get(ctx, id)
	})
}

func (h *Handler) handleDetails(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "failed to get user details", func(ctx context.Context, id uuid.UUID) (any, error) {
		return h.service.Details(ctx, id)
	})
}

func (h *Handler) handleSuspend(suspend bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withUser(w, r, "failed to change user suspension", func(ctx context.Context, id uuid.UUID) (any, error) {
			return h.service.SetSuspended(ctx, id, suspend)
		})
	}
}

func (h *Handler) handleResetPIN(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "failed to reset user PIN", func(ctx context.Context, id uuid.UUID) (any, error) {
		if err := h.service.ResetPIN(ctx, id); err != nil {
			return nil, err
		}
		return map[string]bool{"success": true}, nil
	})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	patch, ok := httputil.DecodeAndPrepare[models.Patch](w, r, h.logger)
	if !ok {
		return
	}
	p, err := h.service.Update(r.Context(), id, *patch)
	if err != nil {
		httputil.LogAndWriteError(r.Context(), w, h.logger, "failed to update user", err, "user_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.LogAndWriteError(r.Context(), w, h.logger, "failed to delete user", err, "user_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) withUser(w http.ResponseWriter, r *http.Request, msg string, fn func(context.Context, uuid.UUID) (any, error)) {
	ctx := r.Context()
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	out, err := fn(ctx, id)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, msg, err, "user_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}
