package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coreid/internal/notifications/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/listing"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	ActiveAnnouncements(ctx context.Context, userType string) ([]*models.Announcement, error)
	ListAnnouncements(ctx context.Context, active *bool, p backend.Pagination) (backend.Page[*models.Announcement], error)
	CreateAnnouncement(ctx context.Context, in models.AnnouncementInput) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id uuid.UUID, in models.AnnouncementUpdate) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error
	UserNotifications(ctx context.Context, userID uuid.UUID, read *bool, p backend.Pagination) (backend.Page[*models.Notification], error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	SendNotification(ctx context.Context, in models.NotificationInput) (uuid.UUID, error)
	Statistics(ctx context.Context) (*models.Statistics, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/announcements", func(r chi.Router) {
		r.Get("/", h.handleListAnnouncements)
		r.Get("/active", h.handleActiveAnnouncements)
		r.Post("/", httputil.Create(h.logger, "announcement", h.service.CreateAnnouncement))
		r.Put("/{id}", httputil.PatchByID(h.logger, "announcement", h.service.UpdateAnnouncement))
		r.Delete("/{id}", httputil.DeleteByID(h.logger, "announcement", h.service.DeleteAnnouncement))
	})
	r.Route("/notifications", func(r chi.Router) {
		r.Post("/", h.handleSend)
		r.Get("/statistics", h.handleStatistics)
		r.Post("/{id}/read", h.handleMarkRead)
		r.Get("/users/{userID}", h.handleUserNotifications)
		r.Post("/users/{userID}/read-all", h.handleMarkAllRead)
	})
}

// page reads page and limit; a missing limit leaves the page size to the
// service.
func page(r *http.Request) backend.Pagination {
	return backend.Pagination{
		Page:     httputil.QueryInt(r, "page", 1),
		PageSize: httputil.QueryInt(r, "limit", 0),
	}
}

func queryBool(r *http.Request, key string) (*bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, dErrors.NewValidation("invalid "+key, map[string]string{key: "boolean"})
	}
	return &b, nil
}

func (h *Handler) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	active, err := queryBool(r, "is_active")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.ListAnnouncements(ctx, active, page(r))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list announcements", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing.View(p))
}

func (h *Handler) handleActiveAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rows, err := h.service.ActiveAnnouncements(ctx, r.URL.Query().Get("user_type"))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load active announcements", err)
		return
	}
	httputil.WriteList(w, rows)
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.NotificationInput](w, r, h.logger)
	if !ok {
		return
	}
	id, err := h.service.SendNotification(ctx, *req)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to send notification", err, "user_id", req.UserID)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st, err := h.service.Statistics(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load notification statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.MarkRead(ctx, id); err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to mark notification read", err, "id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUserNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := httputil.URLParamUUID(r, "userID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	read, err := queryBool(r, "is_read")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.UserNotifications(ctx, userID, read, page(r))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list notifications", err, "user_id", userID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing.View(p))
}

func (h *Handler) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := httputil.URLParamUUID(r, "userID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	n, err := h.service.MarkAllRead(ctx, userID)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to mark notifications read", err, "user_id", userID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int{"updated": n})
}
