package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coreid/internal/monitoring/models"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	Log(ctx context.Context, m models.APIMetric) error
	Summary(ctx context.Context, period models.Period) (*models.Summary, error)
	Trends(ctx context.Context, period models.Period) ([]models.TrendPoint, error)
	Endpoints(ctx context.Context, limit int) ([]models.EndpointStat, error)
	SlowEndpoints(ctx context.Context, thresholdMS int) ([]models.SlowEndpoint, error)
	Database(ctx context.Context) (*models.DatabaseStats, error)
	Errors(ctx context.Context) ([]models.ErrorBucket, error)
	Health(ctx context.Context) (*models.HealthReport, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type logMetricRequest struct {
	Endpoint     string     `json:"endpoint" validate:"required,max=500"`
	Method       string     `json:"method" validate:"required,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS get post put patch delete head options"`
	ResponseTime int        `json:"response_time" validate:"gte=0"`
	StatusCode   int        `json:"status_code" validate:"required,gte=100,lte=599"`
	UserID       *uuid.UUID `json:"user_id"`
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/monitoring", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/summary", h.handleSummary)
		r.Get("/trends", h.handleTrends)
		r.Get("/endpoints", h.handleEndpoints)
		r.Get("/slow-endpoints", h.handleSlowEndpoints)
		r.Get("/database", h.handleDatabase)
		r.Get("/errors", h.handleErrors)
		r.Post("/metrics", h.handleLog)
	})
}

func period(r *http.Request, def models.Period) models.Period {
	if p := r.URL.Query().Get("period"); p != "" {
		return models.Period(p)
	}
	return def
}

func respond[T any](h *Handler, w http.ResponseWriter, r *http.Request, msg string, v T, err error) {
	if err != nil {
		httputil.LogAndWriteError(r.Context(), w, h.logger, msg, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Health(r.Context())
	respond(h, w, r, "failed to score api health", report, err)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context(), period(r, models.DefaultPeriod))
	respond(h, w, r, "failed to load api summary", sum, err)
}

func (h *Handler) handleTrends(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Trends(r.Context(), period(r, models.PeriodDay))
	respond(h, w, r, "failed to load response time trends", rows, err)
}

func (h *Handler) handleEndpoints(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Endpoints(r.Context(), httputil.QueryInt(r, "limit", 0))
	respond(h, w, r, "failed to load endpoint performance", rows, err)
}

func (h *Handler) handleSlowEndpoints(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.SlowEndpoints(r.Context(), httputil.QueryInt(r, "threshold", 0))
	respond(h, w, r, "failed to load slow endpoints", rows, err)
}

func (h *Handler) handleDatabase(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Database(r.Context())
	respond(h, w, r, "failed to load database performance", st, err)
}

func (h *Handler) handleErrors(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Errors(r.Context())
	respond(h, w, r, "failed to load error distribution", rows, err)
}

func (h *Handler) handleLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[logMetricRequest](w, r, h.logger)
	if !ok {
		return
	}
	err := h.service.Log(ctx, models.APIMetric{
		Endpoint:       req.Endpoint,
		Method:         req.Method,
		ResponseTimeMS: req.ResponseTime,
		StatusCode:     req.StatusCode,
		UserID:         req.UserID,
	})
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to log api metric", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
