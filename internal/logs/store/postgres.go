package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coreid/internal/logs/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/backend"
)

// PostgresStore reads the auth, PIN login and email verification logs.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type table struct {
	name      string
	columns   string
	search    []string
	eventType bool
}

var (
	authLogs = table{
		name: "auth_logs",
		columns: `id, user_id, user_email, event_type, status, host(ip_address), user_agent,
			location, device_fingerprint, error_message, created_at`,
		search:    []string{"user_email", "ip_address::text"},
		eventType: true,
	}
	pinLoginLogs = table{
		name: "pin_login_logs",
		columns: `id, user_id, user_email, phone_number, status, pin_sent, pin_verified,
			host(ip_address), user_agent, device_info, error_message, blocked_until, created_at`,
		search: []string{"user_email", "ip_address::text"},
	}
	emailLogs = table{
		name: "email_verification_logs",
		columns: `id, user_id, email, status, type, link_sent_at, link_clicked_at, verified_at,
			expires_at, host(ip_address), error_message, created_at, updated_at`,
		search: []string{"email"},
	}
)

// list runs the count and page queries for t and hands each row to scan.
func (s *PostgresStore) list(ctx context.Context, t table, filters models.Filters, p backend.Pagination, scan func(*sql.Rows) error) (int, error) {
	build := func() *backend.Filter {
		f := &backend.Filter{}
		f.Search(filters.Search, t.search...)
		if v := active(filters.Status); v != "" {
			f.Where("status = " + f.Arg(v))
		}
		if v := active(filters.EventType); v != "" && t.eventType {
			f.Where("event_type = " + f.Arg(v))
		}
		return f
	}
	db := postgres.ExecerFor(ctx, s.db)

	cf := build()
	var total int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM "+t.name+cf.SQL(), cf.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}

	f := build()
	rows, err := db.QueryContext(ctx,
		"SELECT "+t.columns+" FROM "+t.name+f.SQL()+" ORDER BY created_at DESC"+f.Page(p), f.Args()...)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", t.name, err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return 0, err
		}
	}
	return total, rows.Err()
}

func (s *PostgresStore) AuthLogs(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.AuthLog, int, error) {
	var out []*models.AuthLog
	total, err := s.list(ctx, authLogs, filters, p, func(rows *sql.Rows) error {
		var (
			l                                  models.AuthLog
			userID                             uuid.NullUUID
			email, ip, ua, loc, fp, errMessage sql.NullString
		)
		if err := rows.Scan(&l.ID, &userID, &email, &l.EventType, &l.Status, &ip, &ua,
			&loc, &fp, &errMessage, &l.CreatedAt); err != nil {
			return err
		}
		l.UserID = id(userID)
		l.UserEmail, l.IPAddress, l.UserAgent = str(email), str(ip), str(ua)
		l.Location, l.DeviceFingerprint, l.ErrorMessage = str(loc), str(fp), str(errMessage)
		out = append(out, &l)
		return nil
	})
	return out, total, err
}

func (s *PostgresStore) PINLoginLogs(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.PINLoginLog, int, error) {
	var out []*models.PINLoginLog
	total, err := s.list(ctx, pinLoginLogs, filters, p, func(rows *sql.Rows) error {
		var (
			l                                     models.PINLoginLog
			userID                                uuid.NullUUID
			email, phone, ip, ua, dev, errMessage sql.NullString
			sent, verified                        sql.NullBool
			blocked                               sql.NullTime
		)
		if err := rows.Scan(&l.ID, &userID, &email, &phone, &l.Status, &sent, &verified,
			&ip, &ua, &dev, &errMessage, &blocked, &l.CreatedAt); err != nil {
			return err
		}
		l.UserID = id(userID)
		l.UserEmail, l.PhoneNumber, l.IPAddress = str(email), str(phone), str(ip)
		l.UserAgent, l.DeviceInfo, l.ErrorMessage = str(ua), str(dev), str(errMessage)
		l.PINSent, l.PINVerified = sent.Bool, verified.Bool
		l.BlockedUntil = when(blocked)
		out = append(out, &l)
		return nil
	})
	return out, total, err
}

func (s *PostgresStore) EmailVerificationLogs(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.EmailVerificationLog, int, error) {
	var out []*models.EmailVerificationLog
	total, err := s.list(ctx, emailLogs, filters, p, func(rows *sql.Rows) error {
		var (
			l                                           models.EmailVerificationLog
			userID                                      uuid.NullUUID
			kind, ip, errMessage                        sql.NullString
			sentAt, clickedAt, verifiedAt, expiresAt, u sql.NullTime
		)
		if err := rows.Scan(&l.ID, &userID, &l.Email, &l.Status, &kind, &sentAt, &clickedAt, &verifiedAt,
			&expiresAt, &ip, &errMessage, &l.CreatedAt, &u); err != nil {
			return err
		}
		l.UserID = id(userID)
		l.Type, l.IPAddress, l.ErrorMessage = str(kind), str(ip), str(errMessage)
		l.LinkSentAt, l.LinkClickedAt, l.VerifiedAt = when(sentAt), when(clickedAt), when(verifiedAt)
		l.ExpiresAt, l.UpdatedAt = when(expiresAt), when(u)
		out = append(out, &l)
		return nil
	})
	return out, total, err
}

func active(v string) string {
	if v == "all" {
		return ""
	}
	return v
}

func str(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func when(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func id(u uuid.NullUUID) *uuid.UUID {
	if !u.Valid {
		return nil
	}
	return &u.UUID
}
