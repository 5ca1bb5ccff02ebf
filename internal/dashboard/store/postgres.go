package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coreid/internal/dashboard/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/backend"
)

// Tables CountRows may be asked about.
const (
	TableEndorsements     = "endorsements"
	TableAPIKeys          = "api_keys"
	TableProfessionalPINs = "professional_pins"
)

var countable = map[string]bool{
	TableEndorsements:     true,
	TableAPIKeys:          true,
	TableProfessionalPINs: true,
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CountProfiles(ctx context.Context, q models.ProfileCount) (int, error) {
	var f backend.Filter
	if len(q.IdentityTypes) > 0 {
		f.Where("identity_type = ANY(" + f.Array(q.IdentityTypes) + ")")
	}
	if q.ExcludeSuspended {
		f.Where("coalesce(is_suspended, false) = false")
	}
	if q.CreatedSince != nil {
		f.Where("created_at >= " + f.Arg(*q.CreatedSince))
	}
	var n int
	if err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, "SELECT count(*) FROM profiles"+f.SQL(), f.Args()...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}

// CountRows counts a whitelisted table, optionally from since onwards.
func (s *PostgresStore) CountRows(ctx context.Context, table string, since *time.Time) (int, error) {
	if !countable[table] {
		return 0, fmt.Errorf("count %s: table not countable", table)
	}
	var f backend.Filter
	if since != nil {
		f.Where("created_at >= " + f.Arg(*since))
	}
	var n int
	if err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, "SELECT count(*) FROM "+table+f.SQL(), f.Args()...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (s *PostgresStore) RecentAuditEvents(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT id, event_type, user_id, coalesce(meta->>'phone_hash', ''), created_at
		FROM audit_events
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent audit events: %w", err)
	}
	defer rows.Close()

	var out []models.AuditEvent
	for rows.Next() {
		var (
			e      models.AuditEvent
			userID uuid.NullUUID
		)
		if err := rows.Scan(&e.ID, &e.EventType, &userID, &e.PhoneHash, &e.CreatedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			e.UserID = &userID.UUID
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *PostgresStore) RecentEndorsements(ctx context.Context, limit int) ([]models.EndorsementEvent, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT id, coalesce(skill_name, ''), created_at
		FROM endorsements
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent endorsements: %w", err)
	}
	defer rows.Close()

	var out []models.EndorsementEvent
	for rows.Next() {
		var e models.EndorsementEvent
		if err := rows.Scan(&e.ID, &e.SkillName, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Ping measures a round trip to the database.
func (s *PostgresStore) Ping(ctx context.Context) (time.Duration, error) {
	return postgres.Ping(ctx, s.db)
}
