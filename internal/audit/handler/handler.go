package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coreid/internal/audit/models"
	"coreid/pkg/backend"
	"coreid/pkg/listing"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	LogAdminAction(ctx context.Context, action, target, status string, details map[string]any) error
	RecentAdminActions(ctx context.Context) ([]*models.AdminAction, error)
	Log(ctx context.Context, e models.Event) (uuid.UUID, error)
	List(ctx context.Context, filters models.Filters, page, pageSize int) (backend.Page[*models.LogEntry], error)
	UserActivity(ctx context.Context, filters models.ActivityFilters, page, pageSize int) (backend.Page[*models.Activity], error)
	Statistics(ctx context.Context, from, to *time.Time) (*models.Statistics, error)
	Cleanup(ctx context.Context, retentionDays int) (*models.CleanupResult, error)
	ExportCSV(ctx context.Context, filters models.Filters) ([]byte, string, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

var adminActionColumns = []listing.Column[*models.AdminAction]{
	{Key: "action", Sortable: true, Value: func(a *models.AdminAction) any { return a.Action }},
	{Key: "actor", Sortable: true, Value: func(a *models.AdminAction) any { return a.Actor }},
	{Key: "target", Sortable: true, Value: func(a *models.AdminAction) any { return a.Target }},
	{Key: "status", Sortable: true, Value: func(a *models.AdminAction) any { return a.Status }},
	{Key: "timestamp", Sortable: true, Value: func(a *models.AdminAction) any { return a.Timestamp }},
	{Key: "details"},
}

type adminActionRequest struct {
	Action  string         `json:"action" validate:"required,max=100"`
	Target  string         `json:"target" validate:"max=255"`
	Status  string         `json:"status" validate:"omitempty,oneof=success failure"`
	Details map[string]any `json:"details"`
}

type logRequest struct {
	Action       string     `json:"action" validate:"required,max=100"`
	ResourceType string     `json:"resource_type" validate:"required,max=100"`
	ResourceID   string     `json:"resource_id"`
	OldValues    any        `json:"old_values"`
	NewValues    any        `json:"new_values"`
	Metadata     any        `json:"metadata"`
	Status       string     `json:"status" validate:"omitempty,oneof=success failure"`
	ErrorMessage string     `json:"error_message"`
	UserID       *uuid.UUID `json:"user_id"`
	UserEmail    string     `json:"user_email" validate:"omitempty,email"`
	ActorType    string     `json:"actor_type" validate:"omitempty,oneof=admin system user"`
}

type cleanupRequest struct {
	RetentionDays int `json:"retention_days" validate:"gte=0,lte=3650"`
}

// Register mounts the audit routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/audit", func(r chi.Router) {
		r.Get("/admin-actions", h.handleRecentAdminActions)
		r.Post("/admin-actions", h.handleLogAdminAction)
		r.Get("/logs", h.handleList)
		r.Post("/logs", h.handleLog)
		r.Get("/logs/export", h.handleExport)
		r.Get("/activity", h.handleUserActivity)
		r.Get("/statistics", h.handleStatistics)
		r.Post("/cleanup", h.handleCleanup)
	})
}

func (h *Handler) handleRecentAdminActions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actions, err := h.service.RecentAdminActions(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load admin actions", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.TableFromQuery(r, adminActionColumns).Render(actions))
}

func (h *Handler) handleLogAdminAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[adminActionRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := h.service.LogAdminAction(ctx, req.Action, req.Target, req.Status, req.Details); err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to log admin action", err, "action", req.Action)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[logRequest](w, r, h.logger)
	if !ok {
		return
	}
	id, err := h.service.Log(ctx, models.Event{
		UserID:       req.UserID,
		UserEmail:    req.UserEmail,
		ActorType:    req.ActorType,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		OldValues:    req.OldValues,
		NewValues:    req.NewValues,
		Metadata:     req.Metadata,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
	})
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to log audit event", err, "action", req.Action)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filters, err := logFilters(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.List(ctx, filters, httputil.QueryInt(r, "page", 1), httputil.QueryInt(r, "limit", 0))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list audit logs", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing.View(page))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filters, err := logFilters(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	body, filename, err := h.service.ExportCSV(ctx, filters)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to export audit logs", err)
		return
	}
	httputil.WriteCSV(w, filename, body)
}

func (h *Handler) handleUserActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		filters models.ActivityFilters
		err     error
	)
	if filters.UserID, err = httputil.QueryUUID(r, "user_id"); err != nil {
		httputil.WriteError(w, err)
		return
	}
	filters.ActivityType = r.URL.Query().Get("activity_type")
	if filters.From, filters.To, err = dateRange(r); err != nil {
		httputil.WriteError(w, err)
		return
	}

	page, err := h.service.UserActivity(ctx, filters, httputil.QueryInt(r, "page", 1), httputil.QueryInt(r, "limit", 0))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load user activity", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing.View(page))
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	from, to, err := dateRange(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	st, err := h.service.Statistics(ctx, from, to)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load audit statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleCleanup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[cleanupRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.service.Cleanup(ctx, req.RetentionDays)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to clean up audit logs", err, "retention_days", req.RetentionDays)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func logFilters(r *http.Request) (models.Filters, error) {
	q := r.URL.Query()
	f := models.Filters{
		Action:       q.Get("action"),
		ResourceType: q.Get("resource_type"),
		ActorType:    q.Get("actor_type"),
		Status:       q.Get("status"),
	}
	var err error
	if f.UserID, err = httputil.QueryUUID(r, "user_id"); err != nil {
		return models.Filters{}, err
	}
	if f.From, f.To, err = dateRange(r); err != nil {
		return models.Filters{}, err
	}
	return f, nil
}

func dateRange(r *http.Request) (*time.Time, *time.Time, error) {
	from, err := httputil.QueryTime(r, "start_date")
	if err != nil {
		return nil, nil, err
	}
	to, err := httputil.QueryTime(r, "end_date")
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
