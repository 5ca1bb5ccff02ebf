package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coreid/internal/email/models"
	"coreid/pkg/backend"
	"coreid/pkg/listing"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	Queue(ctx context.Context, f models.QueueFilters, p backend.Pagination) (backend.Page[*models.QueuedEmail], error)
	Logs(ctx context.Context, f models.LogFilters, p backend.Pagination) (backend.Page[*models.Log], error)
	Statistics(ctx context.Context, from, to *time.Time) (*models.Statistics, error)
	Enqueue(ctx context.Context, in models.QueueInput) (uuid.UUID, error)
	SendTest(ctx context.Context, in models.TestEmailInput) (uuid.UUID, error)
	Cancel(ctx context.Context, id uuid.UUID) (*models.QueuedEmail, error)
	Retry(ctx context.Context, id uuid.UUID) (*models.QueuedEmail, error)
	Preferences(ctx context.Context, userID uuid.UUID) (*models.Preferences, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, u models.PreferencesUpdate) (*models.Preferences, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type queuedResponse struct {
	ID uuid.UUID `json:"id"`
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/email", func(r chi.Router) {
		r.Get("/queue", h.handleQueue)
		r.Post("/queue", h.handleEnqueue)
		r.Post("/queue/{id}/cancel", httputil.ByID(h.logger, "email", h.service.Cancel))
		r.Post("/queue/{id}/retry", httputil.ByID(h.logger, "email", h.service.Retry))
		r.Get("/logs", h.handleLogs)
		r.Get("/statistics", h.handleStatistics)
		r.Post("/test", h.handleSendTest)
		r.Get("/preferences/{userID}", h.handlePreferences)
		r.Put("/preferences/{userID}", h.handleUpdatePreferences)
	})
}

func page(r *http.Request) backend.Pagination {
	return backend.Pagination{
		Page:     httputil.QueryInt(r, "page", 1),
		PageSize: httputil.QueryInt(r, "limit", 0),
	}
}

func (h *Handler) handleQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	f := models.QueueFilters{Status: models.Status(q.Get("status")), TemplateID: q.Get("template_id")}
	p, err := h.service.Queue(ctx, f, page(r))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list email queue", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing.View(p))
}

func (h *Handler) handleLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := httputil.QueryUUID(r, "user_id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	q := r.URL.Query()
	f := models.LogFilters{UserID: userID, TemplateID: q.Get("template_id"), Status: q.Get("status")}
	p, err := h.service.Logs(ctx, f, page(r))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list email logs", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing.View(p))
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	from, err := httputil.QueryTime(r, "start_date")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	to, err := httputil.QueryTime(r, "end_date")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	st, err := h.service.Statistics(ctx, from, to)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load email statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleEnqueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.QueueInput](w, r, h.logger)
	if !ok {
		return
	}
	id, err := h.service.Enqueue(ctx, *req)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to queue email", err, "template_id", req.TemplateID)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, queuedResponse{ID: id})
}

func (h *Handler) handleSendTest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.TestEmailInput](w, r, h.logger)
	if !ok {
		return
	}
	id, err := h.service.SendTest(ctx, *req)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to send test email", err, "template", req.Template)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, queuedResponse{ID: id})
}

func (h *Handler) handlePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := httputil.URLParamUUID(r, "userID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.Preferences(ctx, userID)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load email preferences", err, "user_id", userID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := httputil.URLParamUUID(r, "userID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.PreferencesUpdate](w, r, h.logger)
	if !ok {
		return
	}
	p, err := h.service.UpdatePreferences(ctx, userID, *req)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to update email preferences", err, "user_id", userID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}
