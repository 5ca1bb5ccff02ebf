package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coreid/internal/revenue/models"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	Dashboard(ctx context.Context, period models.Period) (*models.Dashboard, error)
	Overview(ctx context.Context, period models.Period) (*models.Overview, error)
	Trends(ctx context.Context, period models.Period) ([]models.Trend, error)
	Subscriptions(ctx context.Context) (*models.SubscriptionMetrics, error)
	Plans(ctx context.Context) ([]models.PlanRevenue, error)
	PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	LTV(ctx context.Context) (*models.CustomerLTV, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/revenue", func(r chi.Router) {
		r.Get("/", h.handleDashboard)
		r.Get("/overview", h.handleOverview)
		r.Get("/trends", h.handleTrends)
		r.Get("/subscriptions", h.handleSubscriptions)
		r.Get("/plans", h.handlePlans)
		r.Get("/payment-methods", h.handlePaymentMethods)
		r.Get("/ltv", h.handleLTV)
	})
}

func period(r *http.Request) models.Period {
	if p := r.URL.Query().Get("period"); p != "" {
		return models.Period(p)
	}
	return models.DefaultPeriod
}

func respond[T any](h *Handler, w http.ResponseWriter, r *http.Request, msg string, v T, err error) {
	if err != nil {
		httputil.LogAndWriteError(r.Context(), w, h.logger, msg, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.Dashboard(r.Context(), period(r))
	respond(h, w, r, "failed to load revenue dashboard", d, err)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Overview(r.Context(), period(r))
	respond(h, w, r, "failed to load revenue overview", o, err)
}

func (h *Handler) handleTrends(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Trends(r.Context(), period(r))
	respond(h, w, r, "failed to load revenue trends", rows, err)
}

func (h *Handler) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Subscriptions(r.Context())
	respond(h, w, r, "failed to load subscription metrics", m, err)
}

func (h *Handler) handlePlans(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Plans(r.Context())
	respond(h, w, r, "failed to load revenue by plan", rows, err)
}

func (h *Handler) handlePaymentMethods(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.PaymentMethods(r.Context())
	respond(h, w, r, "failed to load payment methods", rows, err)
}

func (h *Handler) handleLTV(w http.ResponseWriter, r *http.Request) {
	l, err := h.service.LTV(r.Context())
	respond(h, w, r, "failed to load customer lifetime value", l, err)
}
