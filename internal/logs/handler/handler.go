package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coreid/internal/logs/models"
	"coreid/pkg/backend"
	"coreid/pkg/listing"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	AuthLogs(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.AuthLog], error)
	PINLoginLogs(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.PINLoginLog], error)
	EmailVerificationLogs(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.EmailVerificationLog], error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/logs", func(r chi.Router) {
		r.Get("/auth", serve(h, "auth", h.service.AuthLogs))
		r.Get("/pin", serve(h, "pin login", h.service.PINLoginLogs))
		r.Get("/email-verification", serve(h, "email verification", h.service.EmailVerificationLogs))
	})
}

func serve[T any](h *Handler, kind string, list func(context.Context, models.Filters, backend.Pagination) (backend.Page[T], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()
		filters := models.Filters{
			Search:    q.Get("search"),
			Status:    q.Get("status"),
			EventType: q.Get("eventType"),
		}
		page, err := list(ctx, filters, httputil.PaginationFromQuery(r))
		if err != nil {
			httputil.LogAndWriteError(ctx, w, h.logger, "failed to list "+kind+" logs", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, listing.View(page))
	}
}
