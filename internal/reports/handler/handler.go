package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coreid/internal/reports/models"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	Templates(ctx context.Context, reportType models.ReportType) ([]*models.Template, error)
	CreateTemplate(ctx context.Context, in models.TemplateInput) (*models.Template, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, p models.TemplatePatch) (*models.Template, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	Schedules(ctx context.Context) ([]*models.ScheduledReport, error)
	CreateSchedule(ctx context.Context, in models.ScheduleInput) (*models.ScheduledReport, error)
	UpdateSchedule(ctx context.Context, id uuid.UUID, p models.SchedulePatch) (*models.ScheduledReport, error)
	ToggleSchedule(ctx context.Context, id uuid.UUID, active bool) error
	DeleteSchedule(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, limit int, templateID *uuid.UUID) ([]*models.History, error)
	Generate(ctx context.Context, templateID uuid.UUID, params json.RawMessage) (uuid.UUID, error)
	Export(ctx context.Context, kind models.ExportKind) (*models.Export, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type generateRequest struct {
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

type toggleRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/templates", h.handleTemplates)
		r.Post("/templates", httputil.Create(h.logger, "report template", h.service.CreateTemplate))
		r.Patch("/templates/{id}", httputil.PatchByID(h.logger, "report template", h.service.UpdateTemplate))
		r.Delete("/templates/{id}", httputil.DeleteByID(h.logger, "report template", h.service.DeleteTemplate))
		r.Post("/templates/{id}/generate", h.handleGenerate)

		r.Get("/schedules", h.handleSchedules)
		r.Post("/schedules", httputil.Create(h.logger, "scheduled report", h.service.CreateSchedule))
		r.Patch("/schedules/{id}", httputil.PatchByID(h.logger, "scheduled report", h.service.UpdateSchedule))
		r.Put("/schedules/{id}/active", h.handleToggle)
		r.Delete("/schedules/{id}", httputil.DeleteByID(h.logger, "scheduled report", h.service.DeleteSchedule))

		r.Get("/history", h.handleHistory)
		r.Post("/exports/{kind}", h.handleExport)
	})
}

func (h *Handler) handleTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.service.Templates(ctx, models.ReportType(r.URL.Query().Get("type")))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list report templates", err)
		return
	}
	httputil.WriteList(w, out)
}

// handleGenerate answers 202: the report is produced by the database job.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[generateRequest](w, r, h.logger)
	if !ok {
		return
	}
	reportID, err := h.service.Generate(ctx, id, req.Parameters)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to generate report", err, "template_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, map[string]any{"report_id": reportID})
}

func (h *Handler) handleSchedules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.service.Schedules(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list scheduled reports", err)
		return
	}
	httputil.WriteList(w, out)
}

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[toggleRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := h.service.ToggleSchedule(ctx, id, *req.IsActive); err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to toggle scheduled report", err, "id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "is_active": *req.IsActive})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templateID, err := httputil.QueryUUID(r, "template_id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	out, err := h.service.History(ctx, httputil.QueryInt(r, "limit", 0), templateID)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load report history", err)
		return
	}
	httputil.WriteList(w, out)
}

// handleExport streams the CSV when it was not uploaded, and otherwise
// returns the download link.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind := models.ExportKind(chi.URLParam(r, "kind"))
	out, err := h.service.Export(ctx, kind)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to export", err, "kind", string(kind))
		return
	}
	if out.URL == "" {
		httputil.WriteCSV(w, out.Filename, out.Data)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, out)
}
