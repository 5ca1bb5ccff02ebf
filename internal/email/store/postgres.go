package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coreid/internal/email/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/backend"
	"coreid/pkg/platform/sentinel"
)

// PostgresStore keeps the outbound email queue, delivery logs and per-user
// email preferences.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const queueColumns = `id, user_id, to_email, template_id, subject, variables, priority, status,
	attempts, scheduled_for, sent_at, error_message, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanQueued(row scanner) (*models.QueuedEmail, error) {
	var (
		e    models.QueuedEmail
		vars []byte
	)
	if err := row.Scan(&e.ID, &e.UserID, &e.ToEmail, &e.TemplateID, &e.Subject, &vars, &e.Priority, &e.Status,
		&e.Attempts, &e.ScheduledFor, &e.SentAt, &e.ErrorMessage, &e.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(vars, &e.Variables); err != nil {
		return nil, fmt.Errorf("decode email variables: %w", err)
	}
	return &e, nil
}

func queueFilter(f models.QueueFilters) *backend.Filter {
	q := &backend.Filter{}
	if f.Status != "" {
		q.Where("status = " + q.Arg(string(f.Status)))
	}
	if f.TemplateID != "" {
		q.Where("template_id = " + q.Arg(f.TemplateID))
	}
	return q
}

// Queue lists queued emails, newest first.
func (s *PostgresStore) Queue(ctx context.Context, f models.QueueFilters, p backend.Pagination) ([]*models.QueuedEmail, int, error) {
	db := postgres.ExecerFor(ctx, s.db)

	count := queueFilter(f)
	var total int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM email_queue"+count.SQL(), count.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count email queue: %w", err)
	}

	q := queueFilter(f)
	rows, err := db.QueryContext(ctx,
		"SELECT "+queueColumns+" FROM email_queue"+q.SQL()+" ORDER BY created_at DESC"+q.Page(p), q.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("list email queue: %w", err)
	}
	defer rows.Close()

	var out []*models.QueuedEmail
	for rows.Next() {
		e, err := scanQueued(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func (s *PostgresStore) FindQueued(ctx context.Context, id uuid.UUID) (*models.QueuedEmail, error) {
	e, err := scanQueued(postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		"SELECT "+queueColumns+" FROM email_queue WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find queued email: %w", err)
	}
	return e, nil
}

func (s *PostgresStore) Enqueue(ctx context.Context, in models.QueueInput) (uuid.UUID, error) {
	vars, err := json.Marshal(in.Variables)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode email variables: %w", err)
	}
	if in.Variables == nil {
		vars = []byte("{}")
	}
	var id uuid.UUID
	err = postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT queue_email(
			p_user_id => $1, p_to_email => $2, p_template_id => $3, p_subject => $4,
			p_variables => $5::jsonb, p_priority => $6, p_scheduled_for => $7)`,
		nullUUID(in.UserID), in.ToEmail, in.TemplateID, in.Subject, string(vars), string(in.Priority), in.ScheduledFor,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("queue_email: %w", err)
	}
	return id, nil
}

// Cancel stops a pending or failed email.
func (s *PostgresStore) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, `
		UPDATE email_queue SET status = 'cancelled'
		WHERE id = $1 AND status IN ('pending', 'failed')`, id)
}

// Retry puts a failed or cancelled email back on the queue for immediate
// delivery with a fresh attempt count.
func (s *PostgresStore) Retry(ctx context.Context, id uuid.UUID, at time.Time) error {
	return s.transition(ctx, `
		UPDATE email_queue
		SET status = 'pending', attempts = 0, error_message = NULL, scheduled_for = $2
		WHERE id = $1 AND status IN ('failed', 'cancelled')`, id, at)
}

func (s *PostgresStore) transition(ctx context.Context, query string, args ...any) error {
	res, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update email queue: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// Logs lists delivery logs, newest first.
func (s *PostgresStore) Logs(ctx context.Context, f models.LogFilters, p backend.Pagination) ([]*models.Log, int, error) {
	db := postgres.ExecerFor(ctx, s.db)
	build := func() *backend.Filter {
		q := &backend.Filter{}
		if f.UserID != nil {
			q.Where("user_id = " + q.Arg(*f.UserID))
		}
		if f.TemplateID != "" {
			q.Where("template_id = " + q.Arg(f.TemplateID))
		}
		if f.Status != "" {
			q.Where("status = " + q.Arg(f.Status))
		}
		return q
	}

	count := build()
	var total int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM email_logs"+count.SQL(), count.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count email logs: %w", err)
	}

	q := build()
	rows, err := db.QueryContext(ctx, `
		SELECT id, queue_id, user_id, email_type, to_email, template_id, status,
		       opened_at, clicked_at, open_count, click_count, created_at
		FROM email_logs`+q.SQL()+" ORDER BY created_at DESC"+q.Page(p), q.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("list email logs: %w", err)
	}
	defer rows.Close()

	var out []*models.Log
	for rows.Next() {
		var l models.Log
		if err := rows.Scan(&l.ID, &l.QueueID, &l.UserID, &l.EmailType, &l.ToEmail, &l.TemplateID, &l.Status,
			&l.OpenedAt, &l.ClickedAt, &l.OpenCount, &l.ClickCount, &l.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, &l)
	}
	return out, total, rows.Err()
}

func (s *PostgresStore) Statistics(ctx context.Context, from, to *time.Time) (*models.Statistics, error) {
	var st models.Statistics
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT total_sent, total_delivered, total_opened, total_clicked,
		       total_bounced, total_failed, pending_count
		FROM get_email_statistics(p_start_date => $1, p_end_date => $2)`,
		nullTime(from), nullTime(to),
	).Scan(&st.TotalSent, &st.TotalDelivered, &st.TotalOpened, &st.TotalClicked,
		&st.TotalBounced, &st.TotalFailed, &st.PendingCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get_email_statistics: %w", err)
	}
	return &st, nil
}

func (s *PostgresStore) Preferences(ctx context.Context, userID uuid.UUID) (*models.Preferences, error) {
	var p models.Preferences
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, user_id, marketing_emails, product_updates, announcements, weekly_digest,
		       account_alerts, all_emails, unsubscribed_at, created_at, updated_at
		FROM email_preferences WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &p.MarketingEmails, &p.ProductUpdates, &p.Announcements, &p.WeeklyDigest,
		&p.AccountAlerts, &p.AllEmails, &p.UnsubscribedAt, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find email preferences: %w", err)
	}
	return &p, nil
}

func (s *PostgresStore) UpdatePreferences(ctx context.Context, userID uuid.UUID, u models.PreferencesUpdate) error {
	_, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx, `
		SELECT update_email_preferences(
			p_user_id => $1, p_marketing_emails => $2, p_product_updates => $3,
			p_announcements => $4, p_weekly_digest => $5, p_account_alerts => $6, p_all_emails => $7)`,
		userID, nullBool(u.MarketingEmails), nullBool(u.ProductUpdates), nullBool(u.Announcements),
		nullBool(u.WeeklyDigest), nullBool(u.AccountAlerts), nullBool(u.AllEmails))
	if err != nil {
		return fmt.Errorf("update_email_preferences: %w", err)
	}
	return nil
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

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
