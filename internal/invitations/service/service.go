package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Mailer,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"coreid/internal/invitations/metrics"
	"coreid/internal/invitations/models"
	"coreid/internal/platform/tracing"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

const (
	// DefaultTTL is how long an invitation stays open.
	DefaultTTL = 7 * 24 * time.Hour

	emailFunction = "send-admin-invitation"
)

var validate = validator.New()

type Store interface {
	Invite(ctx context.Context, email, role string, invitedBy *uuid.UUID, expiresAt time.Time) (*models.InviteOutcome, error)
	Accept(ctx context.Context, token string, userID uuid.UUID) (*models.InviteOutcome, error)
	FindByToken(ctx context.Context, token string) (*models.Invitation, error)
	Pending(ctx context.Context, now time.Time) ([]*models.Invitation, error)
}

// Mailer invokes an edge function.
type Mailer interface {
	Invoke(ctx context.Context, name string, body, out any) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service invites console admins and lets invitees accept.
type Service struct {
	store   Store
	mailer  Mailer
	auditor AuditPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	ttl     time.Duration
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.auditor = p }
}

// WithMailer sends invitation emails; without one no email goes out.
func WithMailer(m Mailer) Option {
	return func(s *Service) { s.mailer = m }
}

func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default(), ttl: DefaultTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Invite grants an existing user admin access or records an invitation
// and emails its link. A failed email is logged and reported through
// EmailSent, never returned.
func (s *Service) Invite(ctx context.Context, email, role string) (*models.InviteResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, dErrors.NewValidation("a valid email is required", map[string]string{"email": "email"})
	}
	if !slices.Contains(models.Roles, role) {
		return nil, dErrors.NewValidation("unknown role: "+role, map[string]string{"role": "oneof"})
	}

	now := requestcontext.Now(ctx)
	ctx, span := tracing.Start(ctx, "invitations", "invite")
	out, err := s.store.Invite(ctx, email, role, inviterID(ctx), now.Add(s.ttl))
	tracing.End(span, err)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "Failed to invite admin"
		}
		s.metrics.IncrementInvite("declined")
		return nil, dErrors.NewValidation(msg, nil)
	}

	res := &models.InviteResult{Success: true, Message: out.Message, ExistingUser: out.InvitationToken == ""}
	if !res.ExistingUser {
		res.EmailSent = s.sendEmail(ctx, models.EmailRequest{Email: email, Role: role, InvitationToken: out.InvitationToken})
	}
	if res.Message == "" {
		res.Message = "Invitation sent to " + email
	}

	s.metrics.IncrementInvite("created")
	s.emit(ctx, audit.Event{
		Action:  audit.ActionAdminInvited,
		Target:  email,
		Details: map[string]any{"role": role, "existing_user": res.ExistingUser, "email_sent": res.EmailSent},
	})
	return res, nil
}

// Lookup returns an open invitation for its token.
func (s *Service) Lookup(ctx context.Context, token string) (*models.Invitation, error) {
	inv, err := s.store.FindByToken(ctx, token)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "Invitation not found")
	}
	if err != nil {
		return nil, backend.HandleError(err)
	}
	if inv.Expired(requestcontext.Now(ctx)) {
		return nil, dErrors.New(dErrors.CodeConflict, "This invitation has expired")
	}
	if inv.Status != models.StatusPending {
		return nil, dErrors.New(dErrors.CodeConflict, "This invitation has already been used")
	}
	return inv, nil
}

// Accept makes the session user an admin. The invitation must be open and
// addressed to the session's email.
func (s *Service) Accept(ctx context.Context, token string) (*models.Invitation, error) {
	user := requestcontext.Session(ctx)
	if user.ID == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "Please log in to accept this invitation")
	}
	inv, err := s.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(inv.Email, user.Email) {
		return nil, dErrors.New(dErrors.CodeForbidden, "This invitation is for a different email address")
	}

	out, err := s.store.Accept(ctx, token, user.ID)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "Failed to accept invitation"
		}
		return nil, dErrors.New(dErrors.CodeConflict, msg)
	}

	now := requestcontext.Now(ctx)
	inv.Status = models.StatusAccepted
	inv.AcceptedAt = &now
	s.metrics.IncrementInvite("accepted")
	s.emit(ctx, audit.Event{
		Action:     audit.ActionAdminInvitationAccepted,
		Target:     inv.Email,
		ActorID:    user.ID.String(),
		ActorEmail: user.Email,
		Details:    map[string]any{"role": inv.Role},
	})
	return inv, nil
}

func (s *Service) Pending(ctx context.Context) ([]*models.Invitation, error) {
	invs, err := s.store.Pending(ctx, requestcontext.Now(ctx))
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return invs, nil
}

func (s *Service) sendEmail(ctx context.Context, req models.EmailRequest) bool {
	if s.mailer == nil {
		s.logger.WarnContext(ctx, "invitation email skipped, no mailer configured", "email", req.Email)
		return false
	}
	if err := s.mailer.Invoke(ctx, emailFunction, req, nil); err != nil {
		s.logger.ErrorContext(ctx, "failed to send invitation email", "email", req.Email, "error", err)
		s.metrics.IncrementInvite("email_failed")
		return false
	}
	return true
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to record admin action", "action", string(event.Action), "error", err)
	}
}

func inviterID(ctx context.Context) *uuid.UUID {
	admin := requestcontext.Admin(ctx)
	if admin.IsZero() || admin.Machine {
		return nil
	}
	return &admin.ID
}
