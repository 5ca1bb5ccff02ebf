package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"coreid/internal/notifications/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/platform/sentinel"
)

// PostgresStore keeps announcements and per-user notifications.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const announcementColumns = `id, title, message, type, target_audience, priority, is_active,
	starts_at, ends_at, created_by, created_at, updated_at`

func scanAnnouncement(row interface{ Scan(...any) error }, extra ...any) (*models.Announcement, error) {
	var a models.Announcement
	dest := append([]any{&a.ID, &a.Title, &a.Message, &a.Type, &a.TargetAudience, &a.Priority, &a.IsActive,
		&a.StartsAt, &a.EndsAt, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &a, nil
}

// ActiveAnnouncements lists what a user of userType sees now.
func (s *PostgresStore) ActiveAnnouncements(ctx context.Context, userType string) ([]*models.Announcement, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx,
		`SELECT `+announcementColumns+` FROM get_active_announcements(p_user_type => $1)`, userType)
	if err != nil {
		return nil, fmt.Errorf("get_active_announcements: %w", err)
	}
	defer rows.Close()
	var out []*models.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListAnnouncements pages through every announcement, newest first. A nil
// active matches both states.
func (s *PostgresStore) ListAnnouncements(ctx context.Context, active *bool, limit, offset int) ([]*models.Announcement, int, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT `+announcementColumns+`, total_count
		FROM get_all_announcements(p_is_active => $1, p_limit => $2, p_offset => $3)`,
		nullBool(active), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get_all_announcements: %w", err)
	}
	defer rows.Close()

	var (
		out   []*models.Announcement
		total int
	)
	for rows.Next() {
		var rowTotal int
		a, err := scanAnnouncement(rows, &rowTotal)
		if err != nil {
			return nil, 0, err
		}
		if len(out) == 0 {
			total = rowTotal
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (s *PostgresStore) FindAnnouncement(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	a, err := scanAnnouncement(postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find announcement: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) CreateAnnouncement(ctx context.Context, in models.AnnouncementInput, createdBy *uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT create_announcement(
			p_title => $1, p_message => $2, p_type => $3, p_target_audience => $4,
			p_priority => $5, p_starts_at => $6, p_ends_at => $7, p_created_by => $8)`,
		in.Title, in.Message, string(in.Type), string(in.TargetAudience), string(in.Priority),
		in.StartsAt, in.EndsAt, nullUUID(createdBy),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create_announcement: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) UpdateAnnouncement(ctx context.Context, id uuid.UUID, in models.AnnouncementUpdate) error {
	var found bool
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT update_announcement(
			p_id => $1, p_title => $2, p_message => $3, p_type => $4, p_target_audience => $5,
			p_priority => $6, p_is_active => $7, p_ends_at => $8)`,
		id, in.Title, in.Message, string(in.Type), string(in.TargetAudience),
		string(in.Priority), in.IsActive, in.EndsAt,
	).Scan(&found)
	if err != nil {
		return fmt.Errorf("update_announcement: %w", err)
	}
	if !found {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	var found bool
	if err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT delete_announcement(p_id => $1)`, id).Scan(&found); err != nil {
		return fmt.Errorf("delete_announcement: %w", err)
	}
	if !found {
		return sentinel.ErrNotFound
	}
	return nil
}

// UserNotifications pages through a user's notifications, newest first. A
// nil read matches both states.
func (s *PostgresStore) UserNotifications(ctx context.Context, userID uuid.UUID, read *bool, limit, offset int) ([]*models.Notification, int, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT id, user_id, title, message, type, category, link, is_read, read_at, created_at, total_count
		FROM get_user_notifications(p_user_id => $1, p_is_read => $2, p_limit => $3, p_offset => $4)`,
		userID, nullBool(read), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get_user_notifications: %w", err)
	}
	defer rows.Close()

	var (
		out   []*models.Notification
		total int
	)
	for rows.Next() {
		var (
			n        models.Notification
			rowTotal int
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Category, &n.Link,
			&n.IsRead, &n.ReadAt, &n.CreatedAt, &rowTotal); err != nil {
			return nil, 0, err
		}
		if len(out) == 0 {
			total = rowTotal
		}
		out = append(out, &n)
	}
	return out, total, rows.Err()
}

func (s *PostgresStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	var found bool
	if err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT mark_notification_read(p_id => $1)`, id).Scan(&found); err != nil {
		return fmt.Errorf("mark_notification_read: %w", err)
	}
	if !found {
		return sentinel.ErrNotFound
	}
	return nil
}

// MarkAllRead returns how many notifications changed.
func (s *PostgresStore) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	if err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT mark_all_notifications_read(p_user_id => $1)`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("mark_all_notifications_read: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) CreateNotification(ctx context.Context, in models.NotificationInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT create_notification(
			p_user_id => $1, p_title => $2, p_message => $3, p_type => $4,
			p_category => $5, p_link => $6)`,
		in.UserID, in.Title, in.Message, string(in.Type), in.Category, in.Link,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create_notification: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) Statistics(ctx context.Context) (*models.Statistics, error) {
	var (
		st                 models.Statistics
		byType, byCategory []byte
	)
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT total_announcements, active_announcements, total_notifications,
		       unread_notifications, announcements_by_type, notifications_by_category
		FROM get_notification_statistics()`,
	).Scan(&st.TotalAnnouncements, &st.ActiveAnnouncements, &st.TotalNotifications,
		&st.UnreadNotifications, &byType, &byCategory)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get_notification_statistics: %w", err)
	}
	if err := errors.Join(
		json.Unmarshal(byType, &st.AnnouncementsByType),
		json.Unmarshal(byCategory, &st.NotificationsByCategory),
	); err != nil {
		return nil, fmt.Errorf("decode notification statistics: %w", err)
	}
	return &st, nil
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
