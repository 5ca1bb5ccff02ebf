package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coreid/internal/analytics/models"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	UserGrowth(ctx context.Context, period models.Period) ([]models.GrowthPoint, error)
	UserTypes(ctx context.Context) ([]models.TypeShare, error)
	Funnel(ctx context.Context) ([]models.FunnelStage, error)
	Overview(ctx context.Context, period models.Period) (*models.Overview, error)
	TopCountries(ctx context.Context, limit int) ([]models.CountryStat, error)
	Regions(ctx context.Context, country string) ([]models.RegionStat, error)
	Cities(ctx context.Context, limit int) ([]models.CityStat, error)
	Demographics(ctx context.Context) (map[string][]models.Demographic, error)
	CountryGrowth(ctx context.Context, period models.Period) ([]models.CountryGrowth, error)
	Summary(ctx context.Context) (*models.GeoSummary, error)
	CountryMap(ctx context.Context) (map[string]int, error)
	GeoOverview(ctx context.Context, period models.Period) (*models.GeoOverview, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/overview", h.handleOverview)
		r.Get("/growth", h.handleGrowth)
		r.Get("/user-types", h.handleUserTypes)
		r.Get("/funnel", h.handleFunnel)
	})
	r.Route("/geographic", func(r chi.Router) {
		r.Get("/overview", h.handleGeoOverview)
		r.Get("/summary", h.handleSummary)
		r.Get("/countries", h.handleCountries)
		r.Get("/regions", h.handleRegions)
		r.Get("/cities", h.handleCities)
		r.Get("/demographics", h.handleDemographics)
		r.Get("/growth", h.handleCountryGrowth)
		r.Get("/map", h.handleMap)
	})
}

func period(r *http.Request) models.Period {
	if p := r.URL.Query().Get("period"); p != "" {
		return models.Period(p)
	}
	return models.Period30Days
}

// respond writes v, or logs and writes err.
func respond[T any](h *Handler, w http.ResponseWriter, r *http.Request, msg string, v T, err error) {
	if err != nil {
		httputil.LogAndWriteError(r.Context(), w, h.logger, msg, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Overview(r.Context(), period(r))
	respond(h, w, r, "failed to load analytics overview", o, err)
}

func (h *Handler) handleGrowth(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.UserGrowth(r.Context(), period(r))
	respond(h, w, r, "failed to load user growth", rows, err)
}

func (h *Handler) handleUserTypes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.UserTypes(r.Context())
	respond(h, w, r, "failed to load user types", rows, err)
}

func (h *Handler) handleFunnel(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Funnel(r.Context())
	respond(h, w, r, "failed to load activation funnel", rows, err)
}

func (h *Handler) handleGeoOverview(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GeoOverview(r.Context(), period(r))
	respond(h, w, r, "failed to load geographic overview", o, err)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context())
	respond(h, w, r, "failed to load geographic summary", sum, err)
}

func (h *Handler) handleCountries(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.TopCountries(r.Context(), httputil.QueryInt(r, "limit", 0))
	respond(h, w, r, "failed to load countries", rows, err)
}

func (h *Handler) handleRegions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Regions(r.Context(), r.URL.Query().Get("country"))
	respond(h, w, r, "failed to load regions", rows, err)
}

func (h *Handler) handleCities(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Cities(r.Context(), httputil.QueryInt(r, "limit", 0))
	respond(h, w, r, "failed to load cities", rows, err)
}

func (h *Handler) handleDemographics(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.service.Demographics(r.Context())
	respond(h, w, r, "failed to load demographics", grouped, err)
}

func (h *Handler) handleCountryGrowth(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.CountryGrowth(r.Context(), period(r))
	respond(h, w, r, "failed to load geographic growth", rows, err)
}

func (h *Handler) handleMap(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.CountryMap(r.Context())
	respond(h, w, r, "failed to load country map", m, err)
}
