package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"coreid/internal/email/models"
	"coreid/internal/platform/tracing"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

type Store interface {
	Queue(ctx context.Context, f models.QueueFilters, p backend.Pagination) ([]*models.QueuedEmail, int, error)
	FindQueued(ctx context.Context, id uuid.UUID) (*models.QueuedEmail, error)
	Enqueue(ctx context.Context, in models.QueueInput) (uuid.UUID, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Retry(ctx context.Context, id uuid.UUID, at time.Time) error
	Logs(ctx context.Context, f models.LogFilters, p backend.Pagination) ([]*models.Log, int, error)
	Statistics(ctx context.Context, from, to *time.Time) (*models.Statistics, error)
	Preferences(ctx context.Context, userID uuid.UUID) (*models.Preferences, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, u models.PreferencesUpdate) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Service struct {
	store   Store
	auditor AuditPublisher
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.auditor = p }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Queue(ctx context.Context, f models.QueueFilters, p backend.Pagination) (backend.Page[*models.QueuedEmail], error) {
	if f.Status != "" && !f.Status.IsValid() {
		return backend.Page[*models.QueuedEmail]{}, dErrors.NewValidation("unknown email status: "+string(f.Status), map[string]string{"status": "oneof"})
	}
	p = pageOf(p)
	rows, total, err := s.store.Queue(ctx, f, p)
	if err != nil {
		return backend.Page[*models.QueuedEmail]{}, backend.HandleError(err)
	}
	return backend.NewPage(rows, total, p), nil
}

func (s *Service) Logs(ctx context.Context, f models.LogFilters, p backend.Pagination) (backend.Page[*models.Log], error) {
	p = pageOf(p)
	rows, total, err := s.store.Logs(ctx, f, p)
	if err != nil {
		return backend.Page[*models.Log]{}, backend.HandleError(err)
	}
	return backend.NewPage(rows, total, p), nil
}

// Statistics summarizes delivery between from and to; either bound may be
// nil.
func (s *Service) Statistics(ctx context.Context, from, to *time.Time) (*models.Statistics, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, dErrors.NewValidation("end_date must not be before start_date", map[string]string{"end_date": "gtefield"})
	}
	st, err := s.store.Statistics(ctx, from, to)
	if errors.Is(err, sentinel.ErrNotFound) {
		st, err = &models.Statistics{}, nil
	}
	if err != nil {
		return nil, backend.HandleError(err)
	}
	out := st.WithRates()
	return &out, nil
}

// Enqueue adds an email to the outbound queue. Priority defaults to normal
// and delivery to now.
func (s *Service) Enqueue(ctx context.Context, in models.QueueInput) (uuid.UUID, error) {
	if in.Priority == "" {
		in.Priority = models.PriorityNormal
	}
	if !in.Priority.IsValid() {
		return uuid.Nil, dErrors.NewValidation("unknown priority: "+string(in.Priority), map[string]string{"priority": "oneof"})
	}
	ctx, span := tracing.Start(ctx, "email", "enqueue")
	id, err := s.store.Enqueue(ctx, in)
	tracing.End(span, err)
	if err != nil {
		return uuid.Nil, backend.HandleError(err)
	}
	s.emit(ctx, audit.Event{
		Action: audit.ActionEmailQueued,
		Target: "email:" + id.String(),
		Details: map[string]any{
			"template_id": in.TemplateID,
			"priority":    string(in.Priority),
		},
	})
	return id, nil
}

// SendTest queues a high-priority copy of template for the calling admin.
func (s *Service) SendTest(ctx context.Context, in models.TestEmailInput) (uuid.UUID, error) {
	admin := requestcontext.Admin(ctx)
	if admin.IsZero() || admin.Machine {
		return uuid.Nil, dErrors.New(dErrors.CodeUnauthorized, "Not authenticated")
	}
	return s.Enqueue(ctx, models.QueueInput{
		UserID:     &admin.ID,
		ToEmail:    in.ToEmail,
		TemplateID: in.Template,
		Subject:    models.TestSubject(in.Template),
		Variables:  in.Variables,
		Priority:   models.PriorityHigh,
	})
}

func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*models.QueuedEmail, error) {
	return s.transition(ctx, id, models.Status.Cancellable, "cancel", func() error {
		return s.store.Cancel(ctx, id)
	}, audit.ActionEmailCancelled)
}

// Retry resets a failed or cancelled email and schedules it for now.
func (s *Service) Retry(ctx context.Context, id uuid.UUID) (*models.QueuedEmail, error) {
	return s.transition(ctx, id, models.Status.Retryable, "retry", func() error {
		return s.store.Retry(ctx, id, requestcontext.Now(ctx))
	}, audit.ActionEmailRetried)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, allowed func(models.Status) bool,
	verb string, apply func() error, action audit.Action,
) (*models.QueuedEmail, error) {
	e, err := s.store.FindQueued(ctx, id)
	if err != nil {
		return nil, translate(err, "email")
	}
	if !allowed(e.Status) {
		return nil, dErrors.New(dErrors.CodeConflict, "cannot "+verb+" an email that is "+string(e.Status))
	}
	if err := apply(); err != nil {
		// The row changed state between the read and the update.
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeConflict, "email changed state, reload and try again")
		}
		return nil, backend.HandleError(err)
	}
	s.emit(ctx, audit.Event{
		Action:  action,
		Target:  "email:" + id.String(),
		Details: map[string]any{"previous_status": string(e.Status), "template_id": e.TemplateID},
	})
	e, err = s.store.FindQueued(ctx, id)
	if err != nil {
		return nil, translate(err, "email")
	}
	return e, nil
}

// Preferences returns nil when the user never saved any.
func (s *Service) Preferences(ctx context.Context, userID uuid.UUID) (*models.Preferences, error) {
	p, err := s.store.Preferences(ctx, userID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return p, nil
}

func (s *Service) UpdatePreferences(ctx context.Context, userID uuid.UUID, u models.PreferencesUpdate) (*models.Preferences, error) {
	if u.IsEmpty() {
		return nil, dErrors.NewValidation("no preferences to update", map[string]string{"preferences": "required"})
	}
	if err := s.store.UpdatePreferences(ctx, userID, u); err != nil {
		return nil, backend.HandleError(err)
	}
	details := map[string]any{}
	if u.AllEmails != nil {
		details["all_emails"] = *u.AllEmails
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionEmailPreferencesUpdated,
		Target:  "user:" + userID.String(),
		Details: details,
	})
	p, err := s.store.Preferences(ctx, userID)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return p, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to record admin action", "action", string(event.Action), "error", err)
	}
}

func pageOf(p backend.Pagination) backend.Pagination {
	if p.PageSize <= 0 {
		p.PageSize = models.DefaultPageSize
	}
	return p.Normalize()
}

func translate(err error, what string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	}
	return backend.HandleError(err)
}
