package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"coreid/internal/platform/postgres"
	"coreid/internal/settings/models"
	"coreid/pkg/platform/sentinel"
)

// PostgresStore calls the settings functions.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// List returns the settings of category, or all settings when it is empty.
func (s *PostgresStore) List(ctx context.Context, category string) ([]*models.Setting, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT id, category, key, value, coalesce(description, ''), data_type,
		       coalesce(is_sensitive, false), updated_at, updated_by
		FROM get_system_settings(p_category => $1)`, null(category))
	if err != nil {
		return nil, fmt.Errorf("get_system_settings: %w", err)
	}
	defer rows.Close()

	var out []*models.Setting
	for rows.Next() {
		var (
			st        models.Setting
			value     []byte
			updatedBy uuid.NullUUID
		)
		if err := rows.Scan(&st.ID, &st.Category, &st.Key, &value, &st.Description, &st.DataType,
			&st.IsSensitive, &st.UpdatedAt, &updatedBy); err != nil {
			return nil, err
		}
		st.Value = value
		if updatedBy.Valid {
			st.UpdatedBy = &updatedBy.UUID
		}
		out = append(out, &st)
	}
	return out, rows.Err()
}

// Update writes one value. A missing result row reads as an unknown failure.
func (s *PostgresStore) Update(ctx context.Context, category, key string, value []byte, userID *uuid.UUID) (*models.UpdateResult, error) {
	by := uuid.NullUUID{}
	if userID != nil {
		by = uuid.NullUUID{UUID: *userID, Valid: true}
	}
	var (
		res models.UpdateResult
		msg sql.NullString
	)
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT success, message FROM update_system_setting(
			p_category => $1, p_key => $2, p_value => $3::jsonb, p_user_id => $4)`,
		category, key, string(value), by,
	).Scan(&res.Success, &msg)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.UpdateResult{Message: "Unknown error"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update_system_setting: %w", err)
	}
	res.Message = msg.String
	return &res, nil
}

func (s *PostgresStore) History(ctx context.Context, category string, limit int) ([]*models.HistoryEntry, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT id, category, key, old_value, new_value, changed_by, changed_at
		FROM get_settings_history(p_category => $1, p_limit => $2)`, null(category), limit)
	if err != nil {
		return nil, fmt.Errorf("get_settings_history: %w", err)
	}
	defer rows.Close()

	var out []*models.HistoryEntry
	for rows.Next() {
		var (
			h                  models.HistoryEntry
			oldValue, newValue []byte
			changedBy          uuid.NullUUID
		)
		if err := rows.Scan(&h.ID, &h.Category, &h.Key, &oldValue, &newValue, &changedBy, &h.ChangedAt); err != nil {
			return nil, err
		}
		h.OldValue, h.NewValue = oldValue, newValue
		if changedBy.Valid {
			h.ChangedBy = &changedBy.UUID
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

// Security returns sentinel.ErrNotFound when no row exists.
func (s *PostgresStore) Security(ctx context.Context) (*models.SecuritySettings, error) {
	var (
		st models.SecuritySettings
		id uuid.NullUUID
	)
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, site_name, support_email, maintenance_mode, password_min_length,
		       require_special_char, require_numbers, enforce_2fa, session_timeout
		FROM get_security_settings()
		LIMIT 1`).Scan(&id, &st.SiteName, &st.SupportEmail, &st.MaintenanceMode, &st.PasswordMinLength,
		&st.RequireSpecialChar, &st.RequireNumbers, &st.Enforce2FA, &st.SessionTimeout)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if id.Valid {
		st.ID = &id.UUID
	}
	return &st, nil
}

func (s *PostgresStore) UpdateSecurity(ctx context.Context, st models.SecuritySettings) error {
	_, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx, `
		SELECT update_system_settings(
			p_site_name => $1, p_support_email => $2, p_maintenance_mode => $3,
			p_password_min_length => $4, p_require_special_char => $5, p_require_numbers => $6,
			p_enforce_2fa => $7, p_session_timeout => $8)`,
		st.SiteName, st.SupportEmail, st.MaintenanceMode, st.PasswordMinLength,
		st.RequireSpecialChar, st.RequireNumbers, st.Enforce2FA, st.SessionTimeout)
	if err != nil {
		return fmt.Errorf("update_system_settings: %w", err)
	}
	return nil
}

func (s *PostgresStore) AdminUsers(ctx context.Context) ([]*models.AdminUser, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT id, coalesce(email, 'Unknown'), full_name, role, coalesce(status, 'active'), last_login
		FROM get_admin_users()`)
	if err != nil {
		return nil, fmt.Errorf("get_admin_users: %w", err)
	}
	defer rows.Close()

	var out []*models.AdminUser
	for rows.Next() {
		var (
			a         models.AdminUser
			fullName  sql.NullString
			lastLogin sql.NullTime
		)
		if err := rows.Scan(&a.ID, &a.Email, &fullName, &a.Role, &a.Status, &lastLogin); err != nil {
			return nil, err
		}
		if fullName.Valid {
			a.FullName = &fullName.String
		}
		if lastLogin.Valid {
			a.LastLogin = &lastLogin.Time
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func null(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
