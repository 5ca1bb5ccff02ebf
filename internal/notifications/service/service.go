package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"coreid/internal/notifications/models"
	"coreid/internal/platform/tracing"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

type Store interface {
	ActiveAnnouncements(ctx context.Context, userType string) ([]*models.Announcement, error)
	ListAnnouncements(ctx context.Context, active *bool, limit, offset int) ([]*models.Announcement, int, error)
	FindAnnouncement(ctx context.Context, id uuid.UUID) (*models.Announcement, error)
	CreateAnnouncement(ctx context.Context, in models.AnnouncementInput, createdBy *uuid.UUID) (uuid.UUID, error)
	UpdateAnnouncement(ctx context.Context, id uuid.UUID, in models.AnnouncementUpdate) error
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error
	UserNotifications(ctx context.Context, userID uuid.UUID, read *bool, limit, offset int) ([]*models.Notification, int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	CreateNotification(ctx context.Context, in models.NotificationInput) (uuid.UUID, error)
	Statistics(ctx context.Context) (*models.Statistics, error)
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

// ActiveAnnouncements lists the announcements shown to userType now, most
// urgent first. An empty userType means individual.
func (s *Service) ActiveAnnouncements(ctx context.Context, userType string) ([]*models.Announcement, error) {
	if userType == "" {
		userType = string(models.AudienceIndividual)
	}
	if a := models.Audience(userType); !a.IsValid() || a == models.AudienceAll {
		return nil, dErrors.NewValidation("unknown user type: "+userType, map[string]string{"user_type": "oneof"})
	}
	rows, err := s.store.ActiveAnnouncements(ctx, userType)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return orEmpty(rows), nil
}

func (s *Service) ListAnnouncements(ctx context.Context, active *bool, p backend.Pagination) (backend.Page[*models.Announcement], error) {
	p = pageOf(p)
	rows, total, err := s.store.ListAnnouncements(ctx, active, p.Limit(), p.Offset())
	if err != nil {
		return backend.Page[*models.Announcement]{}, backend.HandleError(err)
	}
	now := requestcontext.Now(ctx)
	for _, a := range rows {
		a.Live = a.IsLive(now)
	}
	return backend.NewPage(rows, total, p), nil
}

// CreateAnnouncement records the calling admin as the author. Machine
// callers create unattributed announcements.
func (s *Service) CreateAnnouncement(ctx context.Context, in models.AnnouncementInput) (*models.Announcement, error) {
	if in.Priority == "" {
		in.Priority = models.PriorityNormal
	}
	if err := checkAnnouncement(in.Type, in.TargetAudience, in.Priority); err != nil {
		return nil, err
	}
	if in.StartsAt != nil && in.EndsAt != nil && !in.EndsAt.After(*in.StartsAt) {
		return nil, dErrors.NewValidation("ends_at must be after starts_at", map[string]string{"ends_at": "gtfield"})
	}
	var author *uuid.UUID
	if id := requestcontext.AdminID(ctx); id != uuid.Nil {
		author = &id
	}

	ctx, span := tracing.Start(ctx, "notifications", "create_announcement")
	id, err := s.store.CreateAnnouncement(ctx, in, author)
	tracing.End(span, err)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	a, err := s.store.FindAnnouncement(ctx, id)
	if err != nil {
		return nil, translate(err, "announcement")
	}
	s.emit(ctx, audit.Event{
		Action: audit.ActionAnnouncementCreated,
		Target: "announcement:" + id.String(),
		Details: map[string]any{
			"title":           a.Title,
			"type":            string(a.Type),
			"target_audience": string(a.TargetAudience),
			"priority":        string(a.Priority),
		},
	})
	return a, nil
}

func (s *Service) UpdateAnnouncement(ctx context.Context, id uuid.UUID, in models.AnnouncementUpdate) (*models.Announcement, error) {
	if err := checkAnnouncement(in.Type, in.TargetAudience, in.Priority); err != nil {
		return nil, err
	}
	ctx, span := tracing.Start(ctx, "notifications", "update_announcement")
	err := s.store.UpdateAnnouncement(ctx, id, in)
	tracing.End(span, err)
	if err != nil {
		return nil, translate(err, "announcement")
	}
	a, err := s.store.FindAnnouncement(ctx, id)
	if err != nil {
		return nil, translate(err, "announcement")
	}
	a.Live = a.IsLive(requestcontext.Now(ctx))
	s.emit(ctx, audit.Event{
		Action:  audit.ActionAnnouncementUpdated,
		Target:  "announcement:" + id.String(),
		Details: map[string]any{"is_active": a.IsActive, "priority": string(a.Priority)},
	})
	return a, nil
}

func (s *Service) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteAnnouncement(ctx, id); err != nil {
		return translate(err, "announcement")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionAnnouncementDeleted, Target: "announcement:" + id.String()})
	return nil
}

func (s *Service) UserNotifications(ctx context.Context, userID uuid.UUID, read *bool, p backend.Pagination) (backend.Page[*models.Notification], error) {
	p = pageOf(p)
	rows, total, err := s.store.UserNotifications(ctx, userID, read, p.Limit(), p.Offset())
	if err != nil {
		return backend.Page[*models.Notification]{}, backend.HandleError(err)
	}
	return backend.NewPage(rows, total, p), nil
}

func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.store.MarkRead(ctx, id); err != nil {
		return translate(err, "notification")
	}
	return nil
}

// MarkAllRead returns how many unread notifications were marked.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.store.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, backend.HandleError(err)
	}
	return n, nil
}

// SendNotification delivers an in-app notification to one user.
func (s *Service) SendNotification(ctx context.Context, in models.NotificationInput) (uuid.UUID, error) {
	if in.UserID == uuid.Nil {
		return uuid.Nil, dErrors.NewValidation("user_id is required", map[string]string{"user_id": "required"})
	}
	if in.Type == "" {
		in.Type = models.TypeInfo
	}
	if !in.Type.IsValid() {
		return uuid.Nil, dErrors.NewValidation("unknown notification type: "+string(in.Type), map[string]string{"type": "oneof"})
	}
	id, err := s.store.CreateNotification(ctx, in)
	if err != nil {
		return uuid.Nil, backend.HandleError(err)
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionNotificationSent,
		Target:  "user:" + in.UserID.String(),
		Details: map[string]any{"notification_id": id.String(), "title": in.Title},
	})
	return id, nil
}

func (s *Service) Statistics(ctx context.Context) (*models.Statistics, error) {
	st, err := s.store.Statistics(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		st, err = &models.Statistics{}, nil
	}
	if err != nil {
		return nil, backend.HandleError(err)
	}
	if st.AnnouncementsByType == nil {
		st.AnnouncementsByType = map[string]int{}
	}
	if st.NotificationsByCategory == nil {
		st.NotificationsByCategory = map[string]int{}
	}
	st.ReadRate = models.ReadRate(st.TotalNotifications, st.UnreadNotifications)
	return st, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to record admin action", "action", string(event.Action), "error", err)
	}
}

func checkAnnouncement(t models.Type, audience models.Audience, priority models.Priority) error {
	switch {
	case !t.IsValid():
		return dErrors.NewValidation("unknown announcement type: "+string(t), map[string]string{"type": "oneof"})
	case !audience.IsValid():
		return dErrors.NewValidation("unknown target audience: "+string(audience), map[string]string{"target_audience": "oneof"})
	case !priority.IsValid():
		return dErrors.NewValidation("unknown priority: "+string(priority), map[string]string{"priority": "oneof"})
	}
	return nil
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

func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
