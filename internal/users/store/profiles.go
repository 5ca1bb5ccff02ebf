package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"coreid/internal/platform/postgres"
	"coreid/internal/users/models"
	"coreid/pkg/backend"
	"coreid/pkg/platform/sentinel"
)

const profileColumns = `user_id, email, name, full_name, avatar_url, phone, user_type, status,
	pin_number, is_pin_verified, email_verified, is_suspended, created_at, updated_at`

// PostgresStore reads and edits profiles and calls the user management
// functions.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func profileFilter(filters models.Filters) *backend.Filter {
	f := &backend.Filter{}
	f.Search(strings.ToLower(filters.Search), "email", "name", "full_name", "phone")
	if filters.UserType != "" && filters.UserType != "all" {
		f.Where("user_type = " + f.Arg(filters.UserType))
	}

	switch {
	case slices.Contains(filters.Status, "active"):
		f.Where("(status IS NULL OR status = 'active')")
	case slices.Contains(filters.Status, "inactive"):
		f.Where("status = 'inactive'")
	case slices.Contains(filters.Status, "suspended"):
		f.Where("status = 'suspended'")
	}

	switch filters.Verified {
	case models.VerifiedEmail:
		f.Where("email_verified = true")
	case models.UnverifiedEmail:
		f.Where("email_verified = false")
	case models.HasPIN:
		f.Where("pin_number IS NOT NULL")
	case models.NoPIN:
		f.Where("pin_number IS NULL")
	}

	if filters.From != nil {
		f.Where("created_at >= " + f.Arg(*filters.From))
	}
	if filters.To != nil {
		f.Where("created_at < " + f.Arg(filters.To.AddDate(0, 0, 1)))
	}
	if len(filters.IdentityTypes) > 0 {
		f.Where("user_type = ANY(" + f.Array(filters.IdentityTypes) + ")")
	}
	return f
}

func (s *PostgresStore) List(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.Profile, int, error) {
	db := postgres.ExecerFor(ctx, s.db)

	cf := profileFilter(filters)
	var total int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM profiles"+cf.SQL(), cf.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count profiles: %w", err)
	}

	f := profileFilter(filters)
	rows, err := db.QueryContext(ctx,
		"SELECT "+profileColumns+" FROM profiles"+f.SQL()+" ORDER BY created_at DESC"+f.Page(p), f.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []*models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, profile)
	}
	return out, total, rows.Err()
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	row := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE user_id = $1", userID)
	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return profile, err
}

func (s *PostgresStore) SetSuspended(ctx context.Context, userID uuid.UUID, suspended bool, at time.Time) (*models.Profile, error) {
	if err := s.exec(ctx, `UPDATE profiles SET is_suspended = $2, updated_at = $3 WHERE user_id = $1`,
		userID, suspended, at); err != nil {
		return nil, err
	}
	return s.FindByUserID(ctx, userID)
}

// ResetPIN clears the PIN and its verification flag.
func (s *PostgresStore) ResetPIN(ctx context.Context, userID uuid.UUID, at time.Time) error {
	return s.exec(ctx, `UPDATE profiles SET pin_number = NULL, is_pin_verified = false, updated_at = $2 WHERE user_id = $1`,
		userID, at)
}

func (s *PostgresStore) Update(ctx context.Context, userID uuid.UUID, patch models.Patch, at time.Time) (*models.Profile, error) {
	var sets []string
	args := []any{userID}
	set := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	set("name", patch.Name)
	set("full_name", patch.FullName)
	set("phone", patch.Phone)
	set("avatar_url", patch.AvatarURL)
	set("user_type", patch.UserType)
	set("status", patch.Status)
	args = append(args, at)
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	if err := s.exec(ctx, "UPDATE profiles SET "+strings.Join(sets, ", ")+" WHERE user_id = $1", args...); err != nil {
		return nil, err
	}
	return s.FindByUserID(ctx, userID)
}

func (s *PostgresStore) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
}

// exec runs a single-row statement and reports ErrNotFound when no row
// matched.
func (s *PostgresStore) exec(ctx context.Context, query string, args ...any) error {
	res, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*models.Profile, error) {
	var (
		p                               models.Profile
		name, fullName, avatar, phone   sql.NullString
		userType, status, pin           sql.NullString
		pinVerified, emailOK, suspended sql.NullBool
	)
	err := row.Scan(&p.UserID, &p.Email, &name, &fullName, &avatar, &phone, &userType, &status,
		&pin, &pinVerified, &emailOK, &suspended, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Name = str(name)
	p.FullName = str(fullName)
	p.AvatarURL = str(avatar)
	p.Phone = str(phone)
	p.UserType = str(userType)
	p.Status = str(status)
	p.PinNumber = str(pin)
	p.IsPinVerified = pinVerified.Bool
	p.EmailVerified = emailOK.Bool
	p.IsSuspended = suspended.Bool
	return &p, nil
}

func str(s sql.NullString) *string {
	if s.Valid {
		return &s.String
	}
	return nil
}
