package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"coreid/internal/settings/models"
	"coreid/pkg/listing"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	List(ctx context.Context, category string) ([]*models.Setting, error)
	ByCategory(ctx context.Context) (models.ByCategory, error)
	Value(ctx context.Context, category, key string) (any, error)
	IsFeatureEnabled(ctx context.Context, key string) (bool, error)
	Update(ctx context.Context, change models.Change) error
	UpdateMany(ctx context.Context, changes []models.Change) (int, error)
	History(ctx context.Context, category string, limit int) ([]*models.HistoryEntry, error)
	Security(ctx context.Context) (*models.SecuritySettings, error)
	UpdateSecurity(ctx context.Context, s models.SecuritySettings) (*models.SecuritySettings, error)
	AdminUsers(ctx context.Context) ([]*models.AdminUser, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

var adminColumns = []listing.Column[*models.AdminUser]{
	{Key: "email", Sortable: true, Value: func(a *models.AdminUser) any { return strings.ToLower(a.Email) }},
	{Key: "full_name", Sortable: true, Value: func(a *models.AdminUser) any {
		if a.FullName == nil {
			return nil
		}
		return strings.ToLower(*a.FullName)
	}},
	{Key: "role", Sortable: true, Value: func(a *models.AdminUser) any { return a.Role }},
	{Key: "status", Sortable: true, Value: func(a *models.AdminUser) any { return a.Status }},
	{Key: "lastLogin", Sortable: true, Value: func(a *models.AdminUser) any { return a.LastLogin }},
}

type updateRequest struct {
	Value any `json:"value"`
}

type updateManyRequest struct {
	Settings []models.Change `json:"settings" validate:"required,min=1,max=100,dive"`
}

// Register mounts the settings routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Put("/", h.handleUpdateMany)
		r.Get("/by-category", h.handleByCategory)
		r.Get("/history", h.handleHistory)
		r.Get("/security", h.handleSecurity)
		r.Put("/security", h.handleUpdateSecurity)
		r.Get("/admins", h.handleAdminUsers)
		r.Get("/features/{key}", h.handleFeature)
		r.Get("/{category}/{key}", h.handleValue)
		r.Put("/{category}/{key}", h.handleUpdate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings, err := h.service.List(ctx, r.URL.Query().Get("category"))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list settings", err)
		return
	}
	if settings == nil {
		settings = []*models.Setting{}
	}
	httputil.WriteJSON(w, http.StatusOK, settings)
}

func (h *Handler) handleByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	grouped, err := h.service.ByCategory(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to group settings", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, grouped)
}

func (h *Handler) handleValue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, key := chi.URLParam(r, "category"), chi.URLParam(r, "key")
	v, err := h.service.Value(ctx, category, key)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to read setting", err, "category", category, "key", key)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"category": category, "key": key, "value": v})
}

func (h *Handler) handleFeature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := chi.URLParam(r, "key")
	enabled, err := h.service.IsFeatureEnabled(ctx, key)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to read feature flag", err, "key", key)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"key": key, "enabled": enabled})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[updateRequest](w, r, h.logger)
	if !ok {
		return
	}
	change := models.Change{Category: chi.URLParam(r, "category"), Key: chi.URLParam(r, "key"), Value: req.Value}
	if err := h.service.Update(ctx, change); err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to update setting", err, "category", change.Category, "key", change.Key)
		return
	}
	h.logger.InfoContext(ctx, "setting updated", "category", change.Category, "key", change.Key)
	httputil.WriteJSON(w, http.StatusOK, models.UpdateResult{Success: true, Message: "Setting updated successfully"})
}

func (h *Handler) handleUpdateMany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[updateManyRequest](w, r, h.logger)
	if !ok {
		return
	}
	n, err := h.service.UpdateMany(ctx, req.Settings)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to update settings", err, "applied", n)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "All settings updated successfully",
		"updated": n,
	})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entries, err := h.service.History(ctx, r.URL.Query().Get("category"), httputil.QueryInt(r, "limit", 0))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load settings history", err)
		return
	}
	if entries == nil {
		entries = []*models.HistoryEntry{}
	}
	httputil.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleSecurity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st, err := h.service.Security(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load security settings", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleUpdateSecurity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.SecuritySettings](w, r, h.logger)
	if !ok {
		return
	}
	st, err := h.service.UpdateSecurity(ctx, *req)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to update security settings", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	admins, err := h.service.AdminUsers(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list admin users", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.TableFromQuery(r, adminColumns).Render(admins))
}
