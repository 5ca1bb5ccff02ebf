package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coreid/internal/invitations/models"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	Invite(ctx context.Context, email, role string) (*models.InviteResult, error)
	Lookup(ctx context.Context, token string) (*models.Invitation, error)
	Accept(ctx context.Context, token string) (*models.Invitation, error)
	Pending(ctx context.Context) ([]*models.Invitation, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=super_admin admin moderator"`
}

// Register mounts the admin-only invitation routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/invitations", h.handleInvite)
	r.Get("/invitations", h.handlePending)
}

// RegisterSession mounts the routes an invitee reaches with a plain user
// session.
func (h *Handler) RegisterSession(r chi.Router) {
	r.Get("/invitations/{token}", h.handleLookup)
	r.Post("/invitations/{token}/accept", h.handleAccept)
}

func (h *Handler) handleInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[inviteRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.service.Invite(ctx, req.Email, req.Role)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to invite admin", err, "role", req.Role)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) handlePending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	invs, err := h.service.Pending(ctx)
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list invitations", err)
		return
	}
	if invs == nil {
		invs = []*models.Invitation{}
	}
	httputil.WriteJSON(w, http.StatusOK, invs)
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	inv, err := h.service.Lookup(ctx, chi.URLParam(r, "token"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	inv, err := h.service.Accept(ctx, chi.URLParam(r, "token"))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to accept invitation", err)
		return
	}
	h.logger.InfoContext(ctx, "admin invitation accepted", "invitation_id", inv.ID, "role", inv.Role)
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Welcome to the admin team",
		"invitation": inv,
	})
}
