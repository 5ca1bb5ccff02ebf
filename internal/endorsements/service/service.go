package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"coreid/internal/endorsements/metrics"
	"coreid/internal/endorsements/models"
	"coreid/internal/platform/tracing"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

type Store interface {
	List(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.Endorsement, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Endorsement, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status, at time.Time) (*models.Endorsement, error)
	CountByStatus(ctx context.Context) (models.StatusCounts, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service moderates endorsements.
type Service struct {
	store   Store
	auditor AuditPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
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

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a filtered page. Total counts only rows matching the filters.
func (s *Service) List(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.Endorsement], error) {
	ctx, span := tracing.Start(ctx, "endorsements", "list", attribute.Int("page", p.Page))
	p = p.Normalize()
	for _, st := range filters.Status {
		if !st.IsValid() {
			err := dErrors.NewValidation("unknown endorsement status: "+string(st), map[string]string{"status": "oneof"})
			tracing.End(span, err)
			return backend.Page[*models.Endorsement]{}, err
		}
	}

	rows, total, err := s.store.List(ctx, filters, p)
	tracing.End(span, err)
	if err != nil {
		return backend.Page[*models.Endorsement]{}, backend.HandleError(err)
	}
	s.metrics.ObserveListed(len(rows))
	return backend.NewPage(rows, total, p), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Endorsement, error) {
	e, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*models.Endorsement, error) {
	return s.setStatus(ctx, id, models.StatusVerified, audit.ActionEndorsementApproved)
}

func (s *Service) Reject(ctx context.Context, id uuid.UUID) (*models.Endorsement, error) {
	return s.setStatus(ctx, id, models.StatusRejected, audit.ActionEndorsementRejected)
}

func (s *Service) Flag(ctx context.Context, id uuid.UUID) (*models.Endorsement, error) {
	return s.setStatus(ctx, id, models.StatusFlagged, audit.ActionEndorsementFlagged)
}

func (s *Service) setStatus(ctx context.Context, id uuid.UUID, status models.Status, action audit.Action) (*models.Endorsement, error) {
	ctx, span := tracing.Start(ctx, "endorsements", "set_status",
		attribute.String("endorsement_id", id.String()),
		attribute.String("status", string(status)))

	e, err := s.store.UpdateStatus(ctx, id, status, requestcontext.Now(ctx))
	tracing.End(span, err)
	if err != nil {
		return nil, translate(err)
	}

	s.metrics.IncrementModeration(string(status))
	s.emit(ctx, audit.Event{
		Action:  action,
		Target:  "endorsement:" + id.String(),
		Details: map[string]any{"verification_status": string(status)},
	})
	return e, nil
}

func (s *Service) StatusCounts(ctx context.Context) (models.StatusCounts, error) {
	counts, err := s.store.CountByStatus(ctx)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return counts, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to record admin action",
			"action", string(event.Action),
			"error", err,
		)
	}
}

func translate(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "endorsement not found")
	}
	return backend.HandleError(err)
}
