package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"coreid/internal/platform/tracing"
	"coreid/internal/projects/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

type Store interface {
	List(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.Project, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status, at time.Time) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
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

func (s *Service) List(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.Project], error) {
	p = p.Normalize()
	for _, st := range filters.Status {
		if !st.IsValid() {
			return backend.Page[*models.Project]{}, dErrors.NewValidation("unknown project status: "+string(st), map[string]string{"status": "oneof"})
		}
	}
	rows, total, err := s.store.List(ctx, filters, p)
	if err != nil {
		return backend.Page[*models.Project]{}, backend.HandleError(err)
	}
	return backend.NewPage(rows, total, p), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// UpdateStatus moves a project to status and stamps updated_at.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Project, error) {
	if !status.IsValid() {
		return nil, dErrors.NewValidation("unknown project status: "+string(status), map[string]string{"status": "oneof"})
	}
	ctx, span := tracing.Start(ctx, "projects", "update_status")
	p, err := s.store.UpdateStatus(ctx, id, status, requestcontext.Now(ctx))
	tracing.End(span, err)
	if err != nil {
		return nil, translate(err)
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionProjectStatusUpdated,
		Target:  "project:" + id.String(),
		Details: map[string]any{"status": string(status)},
	})
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.emit(ctx, audit.Event{Action: audit.ActionProjectDeleted, Target: "project:" + id.String()})
	return nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to record admin action", "action", string(event.Action), "error", err)
	}
}

func translate(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "project not found")
	}
	return backend.HandleError(err)
}
