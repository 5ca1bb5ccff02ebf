package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coreid/internal/audit/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/platform/sentinel"
)

// PostgresStore reads admin_audit_logs and calls the audit log functions.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// RecentAdminActions returns the newest admin actions. Actions whose actor
// has no profile are attributed to "System".
func (s *PostgresStore) RecentAdminActions(ctx context.Context, limit int) ([]*models.AdminAction, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT l.id, l.action, coalesce(p.email, 'System'), coalesce(l.target, ''),
		       coalesce(l.status, 'success'), l.created_at, l.details
		FROM admin_audit_logs l
		LEFT JOIN profiles p ON p.user_id = l.actor_id
		ORDER BY l.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query admin actions: %w", err)
	}
	defer rows.Close()

	var out []*models.AdminAction
	for rows.Next() {
		var (
			a       models.AdminAction
			details []byte
		)
		if err := rows.Scan(&a.ID, &a.Action, &a.Actor, &a.Target, &a.Status, &a.Timestamp, &details); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &a.Details); err != nil {
				return nil, fmt.Errorf("decode details of %s: %w", a.ID, err)
			}
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Log calls log_audit_event and returns the new row id.
func (s *PostgresStore) Log(ctx context.Context, e models.Event) (uuid.UUID, error) {
	oldValues, err := jsonArg(e.OldValues)
	if err != nil {
		return uuid.Nil, err
	}
	newValues, err := jsonArg(e.NewValues)
	if err != nil {
		return uuid.Nil, err
	}
	metadata, err := jsonArg(e.Metadata)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT log_audit_event(
			p_user_id => $1, p_user_email => $2, p_actor_type => $3, p_action => $4,
			p_resource_type => $5, p_resource_id => $6, p_old_values => $7::jsonb,
			p_new_values => $8::jsonb, p_metadata => $9::jsonb, p_status => $10,
			p_error_message => $11)`,
		nullUUID(e.UserID), e.UserEmail, e.ActorType, e.Action, e.ResourceType,
		null(e.ResourceID), oldValues, newValues, metadata, e.Status, null(e.ErrorMessage),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("log_audit_event: %w", err)
	}
	return id, nil
}

// List calls get_audit_logs. The function repeats the unpaged total on
// every row.
func (s *PostgresStore) List(ctx context.Context, f models.Filters, limit, offset int) ([]*models.LogEntry, int, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT id, user_id, coalesce(user_email, ''), coalesce(actor_type, ''), action,
		       coalesce(resource_type, ''), resource_id, old_values, new_values, metadata,
		       coalesce(status, 'success'), error_message, created_at, total_count
		FROM get_audit_logs(
			p_user_id => $1, p_action => $2, p_resource_type => $3, p_actor_type => $4,
			p_status => $5, p_start_date => $6, p_end_date => $7, p_limit => $8, p_offset => $9)`,
		nullUUID(f.UserID), null(f.Action), null(f.ResourceType), null(f.ActorType),
		null(f.Status), nullTime(f.From), nullTime(f.To), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get_audit_logs: %w", err)
	}
	defer rows.Close()

	var (
		out   []*models.LogEntry
		total int
	)
	for rows.Next() {
		e, rowTotal, err := scanEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		if len(out) == 0 {
			total = rowTotal
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

// UserActivity calls get_user_activity.
func (s *PostgresStore) UserActivity(ctx context.Context, f models.ActivityFilters, limit, offset int) ([]*models.Activity, int, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT id, user_id, coalesce(user_email, ''), activity_type, details,
		       host(ip_address), created_at, total_count
		FROM get_user_activity(
			p_user_id => $1, p_activity_type => $2, p_start_date => $3,
			p_end_date => $4, p_limit => $5, p_offset => $6)`,
		nullUUID(f.UserID), null(f.ActivityType), nullTime(f.From), nullTime(f.To), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get_user_activity: %w", err)
	}
	defer rows.Close()

	var (
		out   []*models.Activity
		total int
	)
	for rows.Next() {
		var (
			a       models.Activity
			details []byte
			ip      sql.NullString
			count   sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.UserEmail, &a.ActivityType, &details, &ip, &a.CreatedAt, &count); err != nil {
			return nil, 0, err
		}
		a.Details = details
		if ip.Valid {
			a.IPAddress = &ip.String
		}
		if len(out) == 0 {
			total = int(count.Int64)
		}
		out = append(out, &a)
	}
	return out, total, rows.Err()
}

// Statistics returns sentinel.ErrNotFound when the function yields no row.
func (s *PostgresStore) Statistics(ctx context.Context, from, to *time.Time) (*models.Statistics, error) {
	var (
		st                          models.Statistics
		byAction, byResource, byDay []byte
	)
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT coalesce(total_events, 0), coalesce(successful_events, 0),
		       coalesce(failed_events, 0), coalesce(unique_users, 0),
		       coalesce(events_by_action, '{}'), coalesce(events_by_resource, '{}'),
		       coalesce(events_by_day, '{}')
		FROM get_audit_statistics(p_start_date => $1, p_end_date => $2)`,
		nullTime(from), nullTime(to),
	).Scan(&st.TotalEvents, &st.SuccessfulEvents, &st.FailedEvents, &st.UniqueUsers,
		&byAction, &byResource, &byDay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := errors.Join(
		json.Unmarshal(byAction, &st.EventsByAction),
		json.Unmarshal(byResource, &st.EventsByResource),
		json.Unmarshal(byDay, &st.EventsByDay),
	); err != nil {
		return nil, fmt.Errorf("decode audit statistics: %w", err)
	}
	return &st, nil
}

// Cleanup calls cleanup_old_audit_logs and returns its message, empty when
// the function returns no row.
func (s *PostgresStore) Cleanup(ctx context.Context, retentionDays int) (string, error) {
	var msg sql.NullString
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT message FROM cleanup_old_audit_logs(p_retention_days => $1)`, retentionDays,
	).Scan(&msg)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cleanup_old_audit_logs: %w", err)
	}
	return msg.String, nil
}

func scanEntry(row scanner) (*models.LogEntry, int, error) {
	var (
		e                        models.LogEntry
		userID                   uuid.NullUUID
		resourceID, errMsg       sql.NullString
		oldValues, newValues, md []byte
		total                    sql.NullInt64
	)
	if err := row.Scan(&e.ID, &userID, &e.UserEmail, &e.ActorType, &e.Action, &e.ResourceType,
		&resourceID, &oldValues, &newValues, &md, &e.Status, &errMsg, &e.CreatedAt, &total); err != nil {
		return nil, 0, err
	}
	e.OldValues, e.NewValues, e.Metadata = oldValues, newValues, md
	if userID.Valid {
		e.UserID = &userID.UUID
	}
	if resourceID.Valid {
		e.ResourceID = &resourceID.String
	}
	if errMsg.Valid {
		e.ErrorMessage = &errMsg.String
	}
	return &e, int(total.Int64), nil
}

func jsonArg(v any) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode audit values: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func null(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
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
