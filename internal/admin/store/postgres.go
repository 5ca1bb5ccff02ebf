package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"coreid/internal/admin/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/platform/sentinel"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindActive returns the admin_users row for userID unless it is missing or
// deactivated.
func (s *PostgresStore) FindActive(ctx context.Context, userID uuid.UUID) (*models.Admin, error) {
	var (
		a        models.Admin
		email    sql.NullString
		fullName sql.NullString
	)
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT a.user_id, p.email, p.full_name, a.role, a.created_at
		FROM admin_users a
		LEFT JOIN profiles p ON p.user_id = a.user_id
		WHERE a.user_id = $1 AND coalesce(a.is_active, true)`, userID,
	).Scan(&a.UserID, &email, &fullName, &a.Role, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	a.Email, a.FullName = email.String, fullName.String
	return &a, nil
}
