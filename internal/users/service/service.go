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

	"coreid/internal/platform/tracing"
	"coreid/internal/users/metrics"
	"coreid/internal/users/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

const (
	defaultSearchPageSize = 50
	exportBatchSize       = 1000
)

type Store interface {
	List(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.Profile, int, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	SetSuspended(ctx context.Context, userID uuid.UUID, suspended bool, at time.Time) (*models.Profile, error)
	ResetPIN(ctx context.Context, userID uuid.UUID, at time.Time) error
	Update(ctx context.Context, userID uuid.UUID, patch models.Patch, at time.Time) (*models.Profile, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	Search(ctx context.Context, filters models.SearchFilters, sort models.Sort, limit, offset int) ([]*models.ManagedUser, int, error)
	Details(ctx context.Context, userID uuid.UUID) (*models.ManagedUser, error)
	Statistics(ctx context.Context) (*models.Statistics, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
	BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, active bool) (*models.BulkResult, error)
	BulkUpdateVerification(ctx context.Context, ids []uuid.UUID, status string) (*models.BulkResult, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*models.BulkResult, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service manages user profiles on behalf of admins. Every mutation is
// recorded as an admin action.
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

func (s *Service) List(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.Profile], error) {
	p = p.Normalize()
	if filters.From != nil && filters.To != nil && filters.To.Before(*filters.From) {
		return backend.Page[*models.Profile]{}, dErrors.NewValidation("end date is before start date", map[string]string{"end": "gtefield"})
	}
	rows, total, err := s.store.List(ctx, filters, p)
	if err != nil {
		return backend.Page[*models.Profile]{}, backend.HandleError(err)
	}
	return backend.NewPage(rows, total, p), nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	p, err := s.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// SetSuspended suspends or reactivates a user.
func (s *Service) SetSuspended(ctx context.Context, userID uuid.UUID, suspended bool) (*models.Profile, error) {
	p, err := s.store.SetSuspended(ctx, userID, suspended, requestcontext.Now(ctx))
	if err != nil {
		return nil, translate(err)
	}
	action := audit.ActionUserReactivated
	if suspended {
		action = audit.ActionUserSuspended
	}
	s.metrics.IncrementMutation(string(action))
	s.emit(ctx, audit.Event{Action: action, Target: userTarget(userID)})
	return p, nil
}

func (s *Service) ResetPIN(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.ResetPIN(ctx, userID, requestcontext.Now(ctx)); err != nil {
		return translate(err)
	}
	s.metrics.IncrementMutation(string(audit.ActionUserPINReset))
	s.emit(ctx, audit.Event{Action: audit.ActionUserPINReset, Target: userTarget(userID)})
	return nil
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, patch models.Patch) (*models.Profile, error) {
	if patch.Empty() {
		return nil, dErrors.NewValidation("no fields to update", nil)
	}
	p, err := s.store.Update(ctx, userID, patch, requestcontext.Now(ctx))
	if err != nil {
		return nil, translate(err)
	}
	s.metrics.IncrementMutation(string(audit.ActionUserUpdated))
	s.emit(ctx, audit.Event{Action: audit.ActionUserUpdated, Target: userTarget(userID), Details: patchDetails(patch)})
	return p, nil
}

func (s *Service) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return translate(err)
	}
	s.metrics.IncrementMutation(string(audit.ActionUserDeleted))
	s.emit(ctx, audit.Event{Action: audit.ActionUserDeleted, Target: userTarget(userID)})
	return nil
}

// Search pages through get_users_with_filters. A zero page size means 50.
func (s *Service) Search(ctx context.Context, filters models.SearchFilters, sort models.Sort, page, pageSize int) (backend.Page[*models.ManagedUser], error) {
	if pageSize <= 0 {
		pageSize = defaultSearchPageSize
	}
	p := backend.Pagination{Page: page, PageSize: pageSize}.Normalize()

	ctx, span := tracing.Start(ctx, "users", "search", attribute.Int("page", p.Page))
	rows, total, err := s.store.Search(ctx, filters, sort.Normalize(), p.Limit(), p.Offset())
	tracing.End(span, err)
	if err != nil {
		return backend.Page[*models.ManagedUser]{}, backend.HandleError(err)
	}
	return backend.NewPage(rows, total, p), nil
}

func (s *Service) Details(ctx context.Context, userID uuid.UUID) (*models.ManagedUser, error) {
	u, err := s.store.Details(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (s *Service) Statistics(ctx context.Context) (*models.Statistics, error) {
	st, err := s.store.Statistics(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		return &models.Statistics{}, nil
	}
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return st, nil
}

func (s *Service) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	opts, err := s.store.FilterOptions(ctx)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return opts, nil
}

// BulkUpdateStatus activates or deactivates users. A result with
// Success=false is the backend declining and is not an error.
func (s *Service) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, active bool) (*models.BulkResult, error) {
	if err := requireIDs(ids); err != nil {
		return nil, err
	}
	res, err := s.store.BulkUpdateStatus(ctx, ids, active)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	s.recordBulk(ctx, audit.ActionUsersBulkStatus, ids, res, map[string]any{"is_active": active})
	return res, nil
}

func (s *Service) BulkUpdateVerification(ctx context.Context, ids []uuid.UUID, status string) (*models.BulkResult, error) {
	if err := requireIDs(ids); err != nil {
		return nil, err
	}
	if !slices.Contains(models.VerificationStatuses, status) {
		return nil, dErrors.NewValidation("unknown verification status: "+status, map[string]string{"status": "oneof"})
	}
	res, err := s.store.BulkUpdateVerification(ctx, ids, status)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	s.recordBulk(ctx, audit.ActionUsersBulkVerification, ids, res, map[string]any{"verification_status": status})
	return res, nil
}

func (s *Service) BulkDelete(ctx context.Context, ids []uuid.UUID) (*models.BulkResult, error) {
	if err := requireIDs(ids); err != nil {
		return nil, err
	}
	res, err := s.store.BulkDelete(ctx, ids)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	s.recordBulk(ctx, audit.ActionUsersBulkDeleted, ids, res, nil)
	return res, nil
}

// ExportCSV renders every user matching filters. It returns the CSV body
// and a dated file name.
func (s *Service) ExportCSV(ctx context.Context, filters models.SearchFilters) ([]byte, string, error) {
	ctx, span := tracing.Start(ctx, "users", "export")
	users, err := s.collect(ctx, filters)
	if err != nil {
		tracing.End(span, err)
		return nil, "", backend.HandleError(err)
	}
	body, err := models.UsersCSV(users)
	tracing.End(span, err)
	if err != nil {
		return nil, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to render export")
	}

	s.metrics.AddExported(len(users))
	s.emit(ctx, audit.Event{
		Action:  audit.ActionUsersExported,
		Target:  "users",
		Details: map[string]any{"count": len(users)},
	})
	return body, models.ExportFilename("users-export", requestcontext.Now(ctx)), nil
}

// collect pages through the search until it has total rows.
func (s *Service) collect(ctx context.Context, filters models.SearchFilters) ([]*models.ManagedUser, error) {
	sort := models.Sort{}.Normalize()
	var out []*models.ManagedUser
	for offset := 0; ; offset += exportBatchSize {
		rows, total, err := s.store.Search(ctx, filters, sort, exportBatchSize, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
		if len(rows) < exportBatchSize || len(out) >= total {
			return out, nil
		}
	}
}

func (s *Service) recordBulk(ctx context.Context, action audit.Action, ids []uuid.UUID, res *models.BulkResult, details map[string]any) {
	if !res.Success {
		s.logger.WarnContext(ctx, "bulk user operation declined",
			"action", string(action),
			"requested", len(ids),
			"message", res.Message,
		)
		return
	}
	n := res.UpdatedCount + res.DeletedCount
	s.metrics.AddBulk(string(action), n)
	if details == nil {
		details = map[string]any{}
	}
	details["requested"] = len(ids)
	details["affected"] = n
	s.emit(ctx, audit.Event{Action: action, Target: "users", Details: details})
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to record admin action", "action", string(event.Action), "error", err)
	}
}

func requireIDs(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return dErrors.NewValidation("no users selected", map[string]string{"user_ids": "required"})
	}
	return nil
}

func patchDetails(p models.Patch) map[string]any {
	fields := []string{}
	for name, v := range map[string]*string{
		"name": p.Name, "full_name": p.FullName, "phone_number": p.Phone,
		"avatar_url": p.AvatarURL, "user_type": p.UserType, "status": p.Status,
	} {
		if v != nil {
			fields = append(fields, name)
		}
	}
	slices.Sort(fields)
	return map[string]any{"fields": fields}
}

func userTarget(id uuid.UUID) string {
	return "user:" + id.String()
}

func translate(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	return backend.HandleError(err)
}
