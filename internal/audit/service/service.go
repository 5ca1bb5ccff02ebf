package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"coreid/internal/audit/metrics"
	"coreid/internal/audit/models"
	"coreid/internal/platform/tracing"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

const (
	recentActionsLimit = 50
	defaultPageSize    = 50
	exportLimit        = 10000
)

var (
	actorTypes = []string{models.ActorAdmin, models.ActorSystem, models.ActorUser}
	logStatus  = []string{models.StatusSuccess, models.StatusFailure}
)

type Store interface {
	RecentAdminActions(ctx context.Context, limit int) ([]*models.AdminAction, error)
	Log(ctx context.Context, e models.Event) (uuid.UUID, error)
	List(ctx context.Context, filters models.Filters, limit, offset int) ([]*models.LogEntry, int, error)
	UserActivity(ctx context.Context, filters models.ActivityFilters, limit, offset int) ([]*models.Activity, int, error)
	Statistics(ctx context.Context, from, to *time.Time) (*models.Statistics, error)
	Cleanup(ctx context.Context, retentionDays int) (string, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service records and queries both audit trails: admin console actions
// (admin_audit_logs) and the general audit log (audit_logs).
type Service struct {
	store         Store
	auditor       AuditPublisher
	metrics       *metrics.Metrics
	logger        *slog.Logger
	retentionDays int
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

// WithRetentionDays sets the retention used when Cleanup is called
// without one.
func WithRetentionDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.retentionDays = days
		}
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:         store,
		logger:        slog.Default(),
		retentionDays: models.DefaultRetentionDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LogAdminAction records an admin action through the audit publisher,
// which writes it with log_admin_action. Status defaults to success.
func (s *Service) LogAdminAction(ctx context.Context, action, target, status string, details map[string]any) error {
	if action == "" {
		return dErrors.NewValidation("action is required", map[string]string{"action": "required"})
	}
	if status == "" {
		status = models.StatusSuccess
	}
	if s.auditor == nil {
		return dErrors.New(dErrors.CodeInternal, "admin action log is not configured")
	}
	err := s.auditor.Emit(ctx, audit.Event{
		Action:  audit.Action(action),
		Target:  target,
		Status:  audit.Status(status),
		Details: details,
	})
	if err != nil {
		return backend.HandleError(err)
	}
	return nil
}

// RecentAdminActions returns the 50 newest admin actions.
func (s *Service) RecentAdminActions(ctx context.Context) ([]*models.AdminAction, error) {
	actions, err := s.store.RecentAdminActions(ctx, recentActionsLimit)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return actions, nil
}

// Log writes an audit_logs row attributed to the calling admin, or to
// "system" when there is none.
func (s *Service) Log(ctx context.Context, e models.Event) (uuid.UUID, error) {
	if e.Action == "" || e.ResourceType == "" {
		return uuid.Nil, dErrors.NewValidation("action and resource type are required", map[string]string{
			"action": "required", "resource_type": "required",
		})
	}
	if e.Status == "" {
		e.Status = models.StatusSuccess
	}
	if !slices.Contains(logStatus, e.Status) {
		return uuid.Nil, dErrors.NewValidation("unknown status: "+e.Status, map[string]string{"status": "oneof"})
	}
	if e.ActorType == "" {
		e.ActorType = models.ActorAdmin
	}
	if !slices.Contains(actorTypes, e.ActorType) {
		return uuid.Nil, dErrors.NewValidation("unknown actor type: "+e.ActorType, map[string]string{"actor_type": "oneof"})
	}
	if admin := requestcontext.Admin(ctx); e.UserID == nil && !admin.IsZero() && !admin.Machine {
		id := admin.ID
		e.UserID = &id
		if e.UserEmail == "" {
			e.UserEmail = admin.Email
		}
	}
	if e.UserEmail == "" {
		e.UserEmail = models.ActorSystem
	}

	ctx, span := tracing.Start(ctx, "audit", "log", attribute.String("action", e.Action))
	id, err := s.store.Log(ctx, e)
	tracing.End(span, err)
	if err != nil {
		return uuid.Nil, backend.HandleError(err)
	}
	s.metrics.IncrementLogged(e.ResourceType, e.Status)
	return id, nil
}

// List pages through get_audit_logs. A zero page size means 50.
func (s *Service) List(ctx context.Context, filters models.Filters, page, pageSize int) (backend.Page[*models.LogEntry], error) {
	p := pagination(page, pageSize)
	if err := checkRange(filters.From, filters.To); err != nil {
		return backend.Page[*models.LogEntry]{}, err
	}
	rows, total, err := s.store.List(ctx, filters, p.Limit(), p.Offset())
	if err != nil {
		return backend.Page[*models.LogEntry]{}, backend.HandleError(err)
	}
	return backend.NewPage(rows, total, p), nil
}

func (s *Service) UserActivity(ctx context.Context, filters models.ActivityFilters, page, pageSize int) (backend.Page[*models.Activity], error) {
	p := pagination(page, pageSize)
	if err := checkRange(filters.From, filters.To); err != nil {
		return backend.Page[*models.Activity]{}, err
	}
	rows, total, err := s.store.UserActivity(ctx, filters, p.Limit(), p.Offset())
	if err != nil {
		return backend.Page[*models.Activity]{}, backend.HandleError(err)
	}
	return backend.NewPage(rows, total, p), nil
}

// Statistics returns zero counts when the function yields no row.
func (s *Service) Statistics(ctx context.Context, from, to *time.Time) (*models.Statistics, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	st, err := s.store.Statistics(ctx, from, to)
	if errors.Is(err, sentinel.ErrNotFound) {
		return &models.Statistics{
			EventsByAction:   map[string]int{},
			EventsByResource: map[string]int{},
			EventsByDay:      map[string]int{},
		}, nil
	}
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return st, nil
}

// Cleanup deletes audit_logs rows older than retentionDays. Zero or less
// uses the configured retention.
func (s *Service) Cleanup(ctx context.Context, retentionDays int) (*models.CleanupResult, error) {
	if retentionDays <= 0 {
		retentionDays = s.retentionDays
	}

	ctx, span := tracing.Start(ctx, "audit", "cleanup", attribute.Int("retention_days", retentionDays))
	msg, err := s.store.Cleanup(ctx, retentionDays)
	tracing.End(span, err)
	s.metrics.IncrementCleanup(err == nil)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	if msg == "" {
		msg = "Cleanup completed"
	}

	s.logger.InfoContext(ctx, "audit logs cleaned up", "retention_days", retentionDays, "message", msg)
	s.emit(ctx, audit.Event{
		Action:  audit.ActionAuditLogsCleaned,
		Target:  "audit_logs",
		Details: map[string]any{"retention_days": retentionDays, "message": msg},
	})
	return &models.CleanupResult{Success: true, Message: msg}, nil
}

// ExportCSV renders up to 10000 matching entries and returns the body with
// a dated file name.
func (s *Service) ExportCSV(ctx context.Context, filters models.Filters) ([]byte, string, error) {
	if err := checkRange(filters.From, filters.To); err != nil {
		return nil, "", err
	}
	ctx, span := tracing.Start(ctx, "audit", "export")
	rows, _, err := s.store.List(ctx, filters, exportLimit, 0)
	tracing.End(span, err)
	if err != nil {
		return nil, "", backend.HandleError(err)
	}

	s.metrics.AddExported(len(rows))
	s.emit(ctx, audit.Event{
		Action:  audit.ActionAuditLogsExported,
		Target:  "audit_logs",
		Details: map[string]any{"count": len(rows)},
	})
	name := "audit-logs-" + requestcontext.Now(ctx).UTC().Format(time.DateOnly) + ".csv"
	return models.LogsCSV(rows), name, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to record admin action", "action", string(event.Action), "error", err)
	}
}

func pagination(page, pageSize int) backend.Pagination {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return backend.Pagination{Page: page, PageSize: pageSize}.Normalize()
}

func checkRange(from, to *time.Time) error {
	if from != nil && to != nil && to.Before(*from) {
		return dErrors.NewValidation("end date is before start date", map[string]string{"end_date": "gtefield"})
	}
	return nil
}
